package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/vine/internal/cli"
	"github.com/aretw0/vine/internal/presentation/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Describe a definition file",
	Long:  `Materializes the definition on an in-memory runtime and prints its components and layout.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plain, _ := cmd.Flags().GetBool("plain")

		cfg, err := cli.LoadConfig()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			cfg.Log.Debug = true
		}

		ui, rt, err := cli.LoadUI(context.Background(), args[0], cli.NewLogger(cfg))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		report := cli.Describe(ui, rt)
		if plain {
			fmt.Print(report)
			return
		}

		render := tui.NewRenderer()
		out, err := render(report)
		if err != nil {
			fmt.Print(report)
			return
		}
		fmt.Print(out)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("plain", false, "Print raw markdown without terminal styling")
}
