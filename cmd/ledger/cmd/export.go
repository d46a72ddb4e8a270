package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-ledger/pkg/ledgerlib"
)

var exportEncrypted bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the whole ledger to a backup file",
	Long: `Write every invoice, client and the settings to a versioned
JSON envelope. With --encrypted the payload is sealed with the built-in
key, matching the at-rest format.

Examples:
  ledger export backup.json
  ledger export backup.json --encrypted
  ledger export -            # plaintext to stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVarP(&exportEncrypted, "encrypted", "e", false, "Seal the exported data")
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := ensureDataDir(); err != nil {
		return err
	}

	app, err := ledgerlib.Open(dataPath)
	if err != nil && app == nil {
		return err
	}
	defer app.Close()

	blob, err := app.Export(exportEncrypted)
	if err != nil {
		return err
	}

	st := app.Store.State()
	printVerbose("Exporting %d invoices, %d clients\n", len(st.Invoices), len(st.Clients))

	if args[0] == "-" {
		_, err = os.Stdout.Write(append(blob, '\n'))
		return err
	}

	if err := os.WriteFile(args[0], blob, 0o600); err != nil {
		return err
	}
	fmt.Printf("Exported to %s (%d bytes)\n", args[0], len(blob))
	return nil
}
