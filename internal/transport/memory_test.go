package transport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(ch *MemChannel) []Event {
	var out []Event
	for event := range ch.Events() {
		out = append(out, event)
	}
	return out
}

func TestMemChannel_Lifecycle(t *testing.T) {
	ch := NewMemChannel()

	assert.ErrorIs(t, ch.Send([]byte("early")), ErrNotOpen)

	ch.Open()
	ch.Open()
	ch.Deliver([]byte(`{"type":"question"}`))
	require.NoError(t, ch.Send([]byte(`{"type":"answer","content":"x"}`)))
	require.NoError(t, ch.Close())
	require.NoError(t, ch.Close())
	ch.Deliver([]byte("after close"))

	events := drain(ch)
	require.Len(t, events, 3)
	assert.Equal(t, EventOpen, events[0].Kind)
	assert.Equal(t, EventMessage, events[1].Kind)
	assert.Equal(t, `{"type":"question"}`, string(events[1].Data))
	assert.Equal(t, EventClose, events[2].Kind)

	assert.Equal(t, [][]byte{[]byte(`{"type":"answer","content":"x"}`)}, ch.Sent())
	assert.ErrorIs(t, ch.Send([]byte("late")), ErrNotOpen)
}

func TestMemChannel_Fail(t *testing.T) {
	ch := NewMemChannel()
	ch.Open()
	boom := errors.New("connection reset")
	ch.Fail(boom)
	ch.Fail(errors.New("second"))

	events := drain(ch)
	require.Len(t, events, 2)
	assert.Equal(t, EventError, events[1].Kind)
	assert.Equal(t, boom, events[1].Err)
}

func TestMemChannel_SendError(t *testing.T) {
	ch := NewMemChannel()
	ch.Open()
	boom := errors.New("write timeout")

	ch.SetSendError(boom)
	assert.ErrorIs(t, ch.Send([]byte("a")), boom)

	ch.SetSendError(nil)
	assert.NoError(t, ch.Send([]byte("b")))
	assert.Equal(t, [][]byte{[]byte("b")}, ch.Sent())
}

func TestMemChannel_SendCopiesFrame(t *testing.T) {
	ch := NewMemChannel()
	ch.Open()

	frame := []byte("abc")
	require.NoError(t, ch.Send(frame))
	frame[0] = 'x'

	assert.Equal(t, "abc", string(ch.Sent()[0]))
}
