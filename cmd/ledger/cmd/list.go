package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-ledger/pkg/ledgerlib"
)

var listCmd = &cobra.Command{
	Use:   "list <invoices|clients>",
	Short: "List invoices or clients",
	Long: `Print the stored invoices or clients.

Examples:
  ledger list invoices
  ledger list clients -f json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"invoices", "clients"},
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	app, err := ledgerlib.Open(dataPath)
	if err != nil && app == nil {
		return err
	}
	defer app.Close()

	st := app.Store.State()

	switch args[0] {
	case "invoices":
		return listInvoices(st.Invoices)
	case "clients":
		return listClients(st.Clients)
	default:
		return fmt.Errorf("unknown collection %q (want invoices or clients)", args[0])
	}
}

func listInvoices(invoices []ledgerlib.Invoice) error {
	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(invoices)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tDATE\tCLIENT\tSTATUS\tTOTAL")
	for _, inv := range invoices {
		totals := ledgerlib.ComputeTotals(inv.Items, inv.VATRate, inv.DiscountType, inv.DiscountValue)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			inv.Number,
			inv.IssueDate.Format("2006-01-02"),
			inv.Client.Name,
			inv.Status,
			totals.Total.StringFixed(2))
	}
	return w.Flush()
}

func listClients(clients []ledgerlib.Client) error {
	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(clients)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOMPANY\tEMAIL\tSTATUS")
	for _, c := range clients {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Name, c.Company, c.Email, c.Status)
	}
	return w.Flush()
}

func yearNow() int {
	return time.Now().UTC().Year()
}
