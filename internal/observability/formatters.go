// Package observability provides formatted terminal output for the chat CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-chat/internal/conversation"
	"github.com/jonathan/resume-chat/internal/resume"
	"github.com/jonathan/resume-chat/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// loadingMarker stands in for a field the agent is still filling in
	loadingMarker = "…"
)

// LoadingFunc reports whether a field should be shown as loading
type LoadingFunc func(resume.Path) bool

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		line = truncate(line, boxWidth-4)
		// pad by runes, %-*s pads by bytes
		pad := boxWidth - 4 - len([]rune(line))
		fmt.Fprintf(p.out, "│ %s%s │\n", line, strings.Repeat(" ", max(pad, 0)))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintResume outputs the resume sections. Fields for which loading returns
// true are shown as a loading marker; loading may be nil.
func (p *Printer) PrintResume(doc *types.Resume, loading LoadingFunc) {
	if doc == nil {
		return
	}
	if loading == nil {
		loading = func(resume.Path) bool { return false }
	}

	info := doc.PersonalInfo
	if info == nil {
		info = &types.PersonalInfo{}
	}
	field := func(path resume.Path, value string) string {
		if loading(path) {
			return loadingMarker
		}
		return value
	}

	var sb strings.Builder

	// Header
	sb.WriteString(orPlaceholder(field(resume.PathName, info.Name), "(name)"))
	sb.WriteString("\n")
	if title := field(resume.PathTitle, info.Title); title != "" {
		sb.WriteString(title + "\n")
	}
	contact := []string{}
	if email := field(resume.PathEmail, info.Email); email != "" {
		contact = append(contact, email)
	}
	if phone := field(resume.PathPhone, info.Phone); phone != "" {
		contact = append(contact, phone)
	}
	if len(contact) > 0 {
		sb.WriteString(strings.Join(contact, " | ") + "\n")
	}

	if summary := field(resume.PathSummary, doc.Summary); summary != "" {
		sb.WriteString("\nSummary:\n")
		sb.WriteString("  " + summary + "\n")
	}

	if loading(resume.PathExperience) {
		sb.WriteString("\nExperience:\n  " + loadingMarker + "\n")
	} else if len(doc.Experience) > 0 {
		sb.WriteString("\nExperience:\n")
		for _, exp := range doc.Experience {
			sb.WriteString(fmt.Sprintf("  %s, %s", exp.Title, exp.Company))
			if exp.Period != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", exp.Period))
			}
			sb.WriteString("\n")
			for _, achievement := range exp.Achievements {
				sb.WriteString(fmt.Sprintf("    • %s\n", achievement))
			}
		}
	}

	if loading(resume.PathEducation) {
		sb.WriteString("\nEducation:\n  " + loadingMarker + "\n")
	} else if len(doc.Education) > 0 {
		sb.WriteString("\nEducation:\n")
		for _, edu := range doc.Education {
			sb.WriteString(fmt.Sprintf("  %s, %s", edu.Degree, edu.School))
			if edu.Period != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", edu.Period))
			}
			sb.WriteString("\n")
		}
	}

	p.writeList(&sb, "Skills", doc.Skills, loading(resume.PathSkills))
	p.writeList(&sb, "Certifications", doc.Certifications, loading(resume.PathCertifications))

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

func (p *Printer) writeList(sb *strings.Builder, title string, items []string, loading bool) {
	switch {
	case loading:
		sb.WriteString(fmt.Sprintf("\n%s:\n  %s\n", title, loadingMarker))
	case len(items) > 0:
		sb.WriteString(fmt.Sprintf("\n%s:\n  %s\n", title, strings.Join(items, ", ")))
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}

// PrintMessage outputs a single conversation turn as one line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMessage(msg conversation.Message) {
	fmt.Fprintf(p.out, "%s %s\n", speaker(msg.Sender), msg.Text)
}

// PrintConversation outputs the whole dialogue in a box.
func (p *Printer) PrintConversation(messages []conversation.Message) {
	if len(messages) == 0 {
		return
	}

	var sb strings.Builder
	for _, msg := range messages {
		sb.WriteString(fmt.Sprintf("%s %s\n", speaker(msg.Sender), msg.Text))
	}
	p.printBox(fmt.Sprintf("CONVERSATION (%d messages)", len(messages)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPending outputs the fields the agent has announced but not yet filled.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPending(paths []resume.Path) {
	if len(paths) == 0 {
		return
	}
	names := make([]string, len(paths))
	for i, path := range paths {
		names[i] = path.String()
	}
	fmt.Fprintf(p.out, "  (waiting for %s)\n", strings.Join(names, ", "))
}

func speaker(sender conversation.Sender) string {
	if sender == conversation.SenderUser {
		return "You:"
	}
	return "Agent:"
}
