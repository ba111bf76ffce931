package cmd

import (
	"fmt"
	"io"

	"github.com/theirongolddev/carerev/internal/cli"
	"github.com/theirongolddev/carerev/internal/model"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Monthly and annual revenue projection",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	result := in.engine.ProjectAnnual(in.params)
	in.log.Debug().Float64("monthly", result.MonthlyRevenue).Msg("projection computed")

	out := cmd.OutOrStdout()
	if in.format != cli.FormatTable {
		return cli.Encode(out, in.format, result)
	}
	printSummary(out, in.params, result)
	return nil
}

func printSummary(w io.Writer, p model.Params, r model.RevenueResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle(fmt.Sprintf("REVENUE PROJECTION  %s patients", cli.FormatNumber(int64(p.PatientCount)))))
	fmt.Fprintln(w)

	rows := [][]string{
		{"CCM Patients", cli.FormatNumber(int64(r.CCMPatients))},
		{"RPM Patients", cli.FormatNumber(int64(r.RPMPatients))},
		{cli.SeparatorRow},
		{"CCM Revenue", cli.FormatMoney(r.CCMRevenue)},
		{"RPM Revenue", cli.FormatMoney(r.RPMRevenue)},
		{cli.SeparatorRow},
		{"Total Monthly", cli.FormatMoney(r.MonthlyRevenue)},
		{"Annual", cli.FormatMoney(r.AnnualRevenue)},
	}

	fmt.Fprint(w, cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
}
