// Package conversation holds the ordered dialogue between the agent and the user.
package conversation

// Sender identifies who wrote a message
type Sender string

// Message senders
const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// Message is a single dialogue turn
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Log is an append-only sequence of messages. Insertion order is display order;
// entries are never reordered or deduplicated. A Log is not safe for concurrent use.
type Log struct {
	messages []Message
}

// NewLog creates an empty Log
func NewLog() *Log {
	return &Log{}
}

// Append adds a message at the end of the log.
func (l *Log) Append(sender Sender, text string) {
	l.messages = append(l.messages, Message{Sender: sender, Text: text})
}

// Len returns the number of messages.
func (l *Log) Len() int {
	return len(l.messages)
}

// Messages returns a copy of the log.
func (l *Log) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}
