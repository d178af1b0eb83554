package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-chat/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <resume.json>",
	Short: "Validate a resume JSON file",
	Long:  "Validates a resume JSON file against the schema the agent's final resume must satisfy.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runValidate(os.Stdout, args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(out io.Writer, path string) error {
	err := schemas.ValidateResumeFile(path)
	if err == nil {
		_, _ = fmt.Fprintf(out, "Validation passed: %s\n", path)
		return nil
	}

	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	switch {
	case errors.As(err, &validationErr):
		_, _ = fmt.Fprintf(out, "Validation failed: %s\n", path)
		for _, fieldErr := range validationErr.Errors {
			_, _ = fmt.Fprintf(out, "  %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return fmt.Errorf("validation found %d error(s)", len(validationErr.Errors))
	case errors.As(err, &schemaLoadErr):
		return fmt.Errorf("file is not valid JSON: %w", err)
	}
	return err
}
