package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/vine/internal/cli"
	"github.com/aretw0/vine/internal/presentation/tui"
	httpAdapter "github.com/aretw0/vine/pkg/adapters/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Start the definition inspector server",
	Long:  `Materializes the definition on an in-memory runtime and exposes it as a JSON API over HTTP.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := cli.LoadConfig()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			cfg.Log.Debug = true
		}
		if cmd.Flags().Changed("port") {
			cfg.Serve.Port, _ = cmd.Flags().GetString("port")
		}
		logger := cli.NewLogger(cfg)

		ui, rt, err := cli.LoadUI(context.Background(), args[0], logger)
		if err != nil {
			fmt.Printf("Error initializing vine: %v\n", err)
			os.Exit(1)
		}

		handler := httpAdapter.NewHandler(ui,
			httpAdapter.WithTree(func() any { return rt.Tree() }),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    cfg.Serve.Host + ":" + cfg.Serve.Port,
			Handler: handler,
		}

		tui.PrintBanner()

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Vine Inspector on %s\n", srv.Addr)
			fmt.Printf("Serving definition from: %s\n", args[0])
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Vine Inspector stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides config)")
}
