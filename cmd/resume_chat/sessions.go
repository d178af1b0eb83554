package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonathan/resume-chat/internal/db"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List journaled sessions",
	Long:  "Lists the most recent journaled sessions, newest first. Use an ID from the list with replay --session.",
	RunE:  runSessions,
}

var sessionsLimit int

func init() {
	sessionsCmd.Flags().IntVarP(&sessionsLimit, "limit", "n", 20, "Maximum sessions to list")

	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("sessions needs a database: set --database-url or DATABASE_URL")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	sessions, err := database.ListSessions(ctx, sessionsLimit)
	if err != nil {
		return err
	}

	printSessions(os.Stdout, sessions)
	return nil
}

func printSessions(out io.Writer, sessions []db.Session) {
	if len(sessions) == 0 {
		_, _ = fmt.Fprintln(out, "No sessions journaled yet")
		return
	}
	for _, s := range sessions {
		_, _ = fmt.Fprintf(out, "%s  %-8s  %s  %s\n", s.ID, s.State, s.StartedAt.UTC().Format(time.RFC3339), s.AgentURL)
	}
}
