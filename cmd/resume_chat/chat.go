package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-chat/internal/config"
	"github.com/jonathan/resume-chat/internal/db"
	"github.com/jonathan/resume-chat/internal/engine"
	"github.com/jonathan/resume-chat/internal/observability"
	"github.com/jonathan/resume-chat/internal/transport"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a conversation with the resume agent",
	Long:  "Connects to the agent, reads one answer per line from stdin and prints the conversation and the resume as it is filled in.",
	RunE:  runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return chat(ctx, cfg, os.Stdin, os.Stdout)
}

// chat runs one session against the configured agent and prints the final resume.
func chat(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	printer := observability.NewPrinter(out)

	ch, err := transport.Dial(ctx, cfg.AgentURL, cfg.TransportSettings())
	if err != nil {
		return err
	}
	defer ch.Close()

	opts := []engine.Option{engine.WithObserver(newConsole(printer, cfg.Verbose).observe)}

	var session *journalSession
	if cfg.DatabaseURL != "" {
		session, err = openJournal(ctx, cfg.DatabaseURL, cfg.AgentURL)
		if err != nil {
			// the conversation does not depend on the journal
			log.Printf("[chat] journal disabled: %v", err)
		} else {
			defer session.database.Close()
			_, _ = fmt.Fprintf(out, "Session %s\n", session.journal.SessionID())
			opts = append(opts, engine.WithJournal(session.journal))
		}
	}

	eng := engine.New(ch, opts...)
	answers := make(chan string)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return eng.Run(runCtx, ch, answers)
	})
	g.Go(func() error {
		return readAnswers(runCtx, in, answers)
	})
	runErr := g.Wait()
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	if session != nil {
		session.end(runErr)
	}

	printer.PrintResume(eng.CurrentDocument(), nil)
	return runErr
}

// console prints conversation turns as they arrive
type console struct {
	printer *observability.Printer
	verbose bool

	printed int
	version int
	state   engine.State
}

func newConsole(printer *observability.Printer, verbose bool) *console {
	return &console{printer: printer, verbose: verbose, version: -1}
}

func (c *console) observe(v engine.View) {
	for _, msg := range v.Messages[c.printed:] {
		c.printer.PrintMessage(msg)
	}
	c.printed = len(v.Messages)

	if c.verbose && v.Version != c.version {
		c.printer.PrintResume(v.Document, v.IsLoading)
	}
	c.version = v.Version
	if c.verbose {
		c.printer.PrintPending(v.Pending)
	}

	if v.State != c.state && v.State == engine.StateClosed {
		log.Printf("[chat] conversation closed")
	}
	c.state = v.State
}

type journalSession struct {
	database *db.DB
	journal  *db.SessionJournal
}

func openJournal(ctx context.Context, databaseURL, agentURL string) (*journalSession, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	database, err := db.Connect(connectCtx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(connectCtx); err != nil {
		database.Close()
		return nil, err
	}
	sessionID, err := database.CreateSession(connectCtx, agentURL)
	if err != nil {
		database.Close()
		return nil, err
	}

	// frames are still written while the session shuts down after a signal
	journalCtx := context.WithoutCancel(ctx)
	return &journalSession{
		database: database,
		journal:  db.NewSessionJournal(journalCtx, database, sessionID),
	}, nil
}

func (s *journalSession) end(runErr error) {
	state := db.SessionStateClosed
	if runErr != nil {
		state = db.SessionStateFailed
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.database.EndSession(ctx, s.journal.SessionID(), state); err != nil {
		log.Printf("[journal] %v", err)
	}
}
