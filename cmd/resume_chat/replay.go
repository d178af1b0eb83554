package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jonathan/resume-chat/internal/db"
	"github.com/jonathan/resume-chat/internal/engine"
	"github.com/jonathan/resume-chat/internal/observability"
	"github.com/jonathan/resume-chat/internal/protocol"
	"github.com/jonathan/resume-chat/internal/transport"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Rebuild a journaled session",
	Long:  "Feeds the frames journaled for a session through a fresh engine and prints the resulting conversation and resume.",
	RunE:  runReplay,
}

var replaySession string

func init() {
	replayCmd.Flags().StringVarP(&replaySession, "session", "s", "", "Session ID to replay (required)")

	if err := replayCmd.MarkFlagRequired("session"); err != nil {
		panic(fmt.Sprintf("failed to mark session flag as required: %v", err))
	}

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, _ []string) error {
	sessionID, err := uuid.Parse(replaySession)
	if err != nil {
		return fmt.Errorf("invalid session ID %q: %w", replaySession, err)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("replay needs a database: set --database-url or DATABASE_URL")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	session, err := database.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return fmt.Errorf("session not found: %s", sessionID)
	}

	frames, err := database.ListFrames(ctx, sessionID)
	if err != nil {
		return err
	}

	return printReplay(os.Stdout, session, frames)
}

func printReplay(out io.Writer, session *db.Session, frames []db.Frame) error {
	result := replayFrames(frames)

	_, _ = fmt.Fprintf(out, "Session %s (%s, %d frames)\n", session.ID, session.State, len(frames))
	printer := observability.NewPrinter(out)
	printer.PrintConversation(result.engine.ConversationLog())
	printer.PrintResume(result.engine.CurrentDocument(), nil)

	if result.skipped > 0 {
		return fmt.Errorf("replay skipped %d of %d frames", result.skipped, len(frames))
	}
	return nil
}

type replayResult struct {
	engine  *engine.Engine
	skipped int
}

// replayFrames applies journaled frames to a fresh engine in journal order.
// Outbound frames are resubmitted as answers so the conversation log matches
// the original session.
func replayFrames(frames []db.Frame) replayResult {
	ch := transport.NewMemChannel()
	ch.Open()
	eng := engine.New(ch)
	eng.HandleOpen()

	result := replayResult{engine: eng}
	for _, frame := range frames {
		switch frame.Direction {
		case db.DirectionInbound:
			eng.HandleMessage(frame.Payload)
		case db.DirectionOutbound:
			text, err := protocol.DecodeAnswer(frame.Payload)
			if err != nil {
				log.Printf("[chat] skipping frame %d: %v", frame.Seq, err)
				result.skipped++
				continue
			}
			if err := eng.SubmitAnswer(text); err != nil {
				log.Printf("[chat] skipping frame %d: %v", frame.Seq, err)
				result.skipped++
			}
		default:
			log.Printf("[chat] skipping frame %d with direction %q", frame.Seq, frame.Direction)
			result.skipped++
		}
	}

	eng.HandleClose()
	return result
}
