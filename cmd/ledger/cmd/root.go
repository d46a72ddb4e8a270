package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
	dataPath     string
)

var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Local invoicing ledger for a single business user",
	Long: `Ledger keeps invoices, clients and settings in one encrypted
local store and computes invoice totals, VAT and amount-in-words.

All data lives in a single sqlite file; exports and the at-rest blob
share the same versioned envelope format.

Examples:
  # Start the local API for the browser UI
  ledger serve

  # Export everything to an encrypted backup
  ledger export backup.json --encrypted

  # Restore from a backup (plaintext or encrypted)
  ledger import backup.json

  # Show what is in the store
  ledger list invoices`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "table", "Output format (json, table)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to the ledger database (env: LEDGER_DATA)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if dataPath == "" {
		dataPath = os.Getenv("LEDGER_DATA")
	}
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataPath = filepath.Join(home, ".invoice-ledger", "ledger.db")
	}
}

// ensureDataDir creates the parent directory of the database file.
func ensureDataDir() error {
	return os.MkdirAll(filepath.Dir(dataPath), 0o755)
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
