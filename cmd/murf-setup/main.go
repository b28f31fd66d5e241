// Package main is the entry point for the murf-setup CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/murfai/murf-setup/cmd/murf-setup/commands"
	"github.com/murfai/murf-setup/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}

	// Unclassified failures are treated as system errors.
	os.Exit(errors.ExitSystem)
}
