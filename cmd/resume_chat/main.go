// Package main provides the entry point for the resume chat client.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-chat/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_chat",
	Short: "Conversational resume builder client",
	Long:  "resume_chat connects to a conversational agent that asks questions and fills in a structured resume as you answer.",
}

var (
	configPath  string
	agentURL    string
	databaseURL string
	verbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to JSON config file (optional)")
	rootCmd.PersistentFlags().StringVar(&agentURL, "agent-url", "", "Websocket URL of the agent (env AGENT_URL)")
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL URL for the session journal (env DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print the resume after every change")
}

// resolveConfig merges flags, the config file, the environment and defaults,
// in that order of precedence.
func resolveConfig() (*config.Config, error) {
	fileCfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		fileCfg = loaded
	}

	flagCfg := config.Config{
		AgentURL:    agentURL,
		DatabaseURL: databaseURL,
		Verbose:     verbose || fileCfg.Verbose,
	}
	merged := flagCfg.MergeWithDefaults(*fileCfg)
	merged.ApplyEnv()
	merged = merged.MergeWithDefaults(config.Config{AgentURL: config.DefaultAgentURL})

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
