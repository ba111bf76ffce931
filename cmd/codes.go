package cmd

import (
	"fmt"

	"github.com/theirongolddev/carerev/internal/cli"
	"github.com/theirongolddev/carerev/internal/config"

	"github.com/spf13/cobra"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "Billing code catalogs with effective rates",
	RunE:  runCodes,
}

func init() {
	rootCmd.AddCommand(codesCmd)
}

// codeRow is the machine-readable form of a catalog entry.
type codeRow struct {
	Code        string  `json:"code" yaml:"code"`
	Program     string  `json:"program" yaml:"program"`
	Description string  `json:"description" yaml:"description"`
	Rate        float64 `json:"rate" yaml:"rate"`
	CatalogRate float64 `json:"catalog_rate" yaml:"catalog_rate"`
}

func runCodes(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	catalog := config.DefaultRates()
	rates := in.engine.Rates()
	codes := in.engine.Codes()

	out := cmd.OutOrStdout()
	if in.format != cli.FormatTable {
		rows := make([]codeRow, 0, len(codes))
		for _, c := range codes {
			rows = append(rows, codeRow{
				Code:        c.Code,
				Program:     string(c.Program),
				Description: c.Description,
				Rate:        rates.Rate(c.Code),
				CatalogRate: catalog.Rate(c.Code),
			})
		}
		return cli.Encode(out, in.format, rows)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("BILLING CODES"))
	fmt.Fprintln(out)

	rows := make([][]string, 0, len(codes)+1)
	prev := codes[0].Program
	for _, c := range codes {
		if c.Program != prev {
			rows = append(rows, []string{cli.SeparatorRow})
			prev = c.Program
		}
		rate := cli.FormatCurrency(rates.Rate(c.Code))
		if rates.Rate(c.Code) != catalog.Rate(c.Code) {
			rate += " *"
		}
		rows = append(rows, []string{c.Code, string(c.Program), c.Description, rate})
	}

	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Code", "Program", "Service", "Rate"},
		Rows:    rows,
	}))
	if len(in.cfg.Rates) > 0 {
		fmt.Fprintf(out, "  * overridden in %s\n", configPath())
	}
	fmt.Fprintln(out)
	return nil
}
