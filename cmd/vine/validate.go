package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/vine/internal/cli"
	"github.com/aretw0/vine/internal/logging"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a definition file for consistency",
	Long:  `Parses the definition file and materializes it on an in-memory runtime, reporting binding or layout errors.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Definition is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	// Materializing on the headless runtime exercises the same checks a real
	// runtime would hit: duplicate bindings, unknown placements, container balance.
	_, _, err := cli.LoadUI(context.Background(), path, logging.NewNop())
	return err
}
