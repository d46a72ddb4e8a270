package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-ledger/pkg/ledgerlib"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the ledger from a backup file",
	Long: `Read a previously exported backup (plaintext or encrypted),
validate it and replace the current data with it.

Validation runs before anything is applied: a file with problems
changes nothing and every problem is listed.

Examples:
  ledger import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	blob, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	if err := ensureDataDir(); err != nil {
		return err
	}

	app, err := ledgerlib.Open(dataPath)
	if err != nil && app == nil {
		return err
	}
	defer app.Close()

	bundle, err := app.Import(blob)
	if err != nil {
		var verrs *ledgerlib.ValidationErrors
		if errors.As(err, &verrs) {
			fmt.Printf("✗ %s: INVALID\n", args[0])
			for _, p := range verrs.Problems {
				fmt.Printf("  - %s\n", p)
			}
			return fmt.Errorf("import aborted, nothing was changed")
		}
		return err
	}

	fmt.Printf("✓ Imported %d invoices and %d clients from %s\n",
		len(bundle.Invoices), len(bundle.Clients), args[0])
	return nil
}
