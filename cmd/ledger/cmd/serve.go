package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-ledger/internal/server"
	"github.com/rezonia/invoice-ledger/pkg/ledgerlib"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local HTTP API",
	Long: `Start the HTTP API the browser UI talks to.

Endpoints:
  - GET/POST        /api/v1/invoices
  - PUT/DELETE      /api/v1/invoices/:id
  - GET/POST        /api/v1/clients
  - PUT/DELETE      /api/v1/clients/:id
  - GET/PUT         /api/v1/settings
  - POST            /api/v1/totals
  - GET             /api/v1/export
  - POST            /api/v1/import
  - GET             /health

Examples:
  # Start on the default local port
  ledger serve

  # Custom port, verbose request logging
  ledger serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "127.0.0.1:8417", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := ensureDataDir(); err != nil {
		return err
	}

	app, err := ledgerlib.Open(dataPath)
	if err != nil {
		if app == nil {
			return err
		}
		// hydration failed but the store is usable; the error is
		// already surfaced on the state
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer app.Close()

	srv := server.NewServer(&server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}, app.Store)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down...")
		_ = app.Close()
		os.Exit(0)
	}()

	st := app.Store.State()
	fmt.Printf("Ledger: %d invoices, %d clients\n", len(st.Invoices), len(st.Clients))
	fmt.Printf("Starting server on %s\n", serverAddr)

	return srv.Run()
}
