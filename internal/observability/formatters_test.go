package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/resume-chat/internal/conversation"
	"github.com/jonathan/resume-chat/internal/resume"
	"github.com/jonathan/resume-chat/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleResume() *types.Resume {
	return &types.Resume{
		PersonalInfo: &types.PersonalInfo{
			Name:  "Jane Roe",
			Email: "jane@example.com",
			Phone: "555-0100",
			Title: "Staff Engineer",
		},
		Summary: "Builds reliable systems.",
		Experience: []types.Experience{
			{Title: "Engineer", Company: "Acme", Period: "2019-2024", Achievements: []string{"Shipped v2"}},
		},
		Education: []types.Education{
			{Degree: "BSc", School: "State University", Period: "2015-2019"},
		},
		Skills:         []string{"Go", "Postgres"},
		Certifications: []string{"CKA"},
	}
}

func TestPrintResume(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(sampleResume(), nil)
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "Jane Roe")
	assert.Contains(t, output, "Staff Engineer")
	assert.Contains(t, output, "jane@example.com | 555-0100")
	assert.Contains(t, output, "Builds reliable systems.")
	assert.Contains(t, output, "Engineer, Acme (2019-2024)")
	assert.Contains(t, output, "• Shipped v2")
	assert.Contains(t, output, "BSc, State University")
	assert.Contains(t, output, "Go, Postgres")
	assert.Contains(t, output, "CKA")
	assert.NotContains(t, output, loadingMarker)
}

func TestPrintResume_LoadingFields(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	loading := func(path resume.Path) bool {
		return path == resume.PathEmail || path == resume.PathSkills
	}
	p.PrintResume(sampleResume(), loading)
	output := buf.String()

	assert.NotContains(t, output, "jane@example.com")
	assert.Contains(t, output, loadingMarker+" | 555-0100")
	assert.NotContains(t, output, "Go, Postgres")
	assert.Contains(t, output, "Jane Roe")
}

func TestPrintResume_EmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(&types.Resume{}, nil)
	output := buf.String()

	assert.Contains(t, output, "(name)")
	assert.NotContains(t, output, "Experience:")
	assert.NotContains(t, output, "Skills:")
}

func TestPrintResume_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResume(nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintResume_BoxLinesHaveEqualWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := sampleResume()
	doc.Summary = strings.Repeat("très long résumé ", 10)
	p.PrintResume(doc, nil)

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestPrintMessage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMessage(conversation.Message{Sender: conversation.SenderBot, Text: "What's your name?"})
	p.PrintMessage(conversation.Message{Sender: conversation.SenderUser, Text: "John"})

	assert.Equal(t, "Agent: What's your name?\nYou: John\n", buf.String())
}

func TestPrintConversation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConversation([]conversation.Message{
		{Sender: conversation.SenderBot, Text: "Hi"},
		{Sender: conversation.SenderUser, Text: "Hello"},
	})
	output := buf.String()

	assert.Contains(t, output, "CONVERSATION (2 messages)")
	assert.Contains(t, output, "Agent: Hi")
	assert.Contains(t, output, "You: Hello")
}

func TestPrintConversation_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConversation(nil)

	assert.Empty(t, buf.String())
}

func TestPrintPending(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPending([]resume.Path{resume.PathEmail, resume.PathSkills})
	assert.Equal(t, "  (waiting for personalInfo.email, skills)\n", buf.String())

	buf.Reset()
	p.PrintPending(nil)
	assert.Empty(t, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééééééé...", truncate(strings.Repeat("é", 20), 10))
}
