package cmd

import (
	"fmt"

	"github.com/theirongolddev/carerev/internal/cli"
	"github.com/theirongolddev/carerev/internal/model"
	"github.com/theirongolddev/carerev/internal/pipeline"

	"github.com/spf13/cobra"
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Revenue by billing code for a steady-state month",
	RunE:  runBreakdown,
}

func init() {
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	ccm, rpm := pipeline.Enrollment(in.params)
	items := in.engine.Breakdown(ccm, rpm, in.params)

	out := cmd.OutOrStdout()
	if in.format != cli.FormatTable {
		return cli.Encode(out, in.format, items)
	}

	totals := pipeline.SumLineItems(items)

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("REVENUE BY BILLING CODE  Monthly"))
	fmt.Fprintln(out)

	for _, prog := range []struct {
		program  model.Program
		enrolled int
		total    float64
	}{
		{model.ProgramCCM, ccm, totals.CCMRevenue},
		{model.ProgramRPM, rpm, totals.RPMRevenue},
	} {
		rows := make([][]string, 0, len(items))
		for _, it := range items {
			if it.Program != prog.program {
				continue
			}
			rows = append(rows, []string{
				it.Code,
				it.Description,
				cli.FormatUnits(it.Patients, it.Units),
				cli.FormatCurrency(it.Rate),
				cli.FormatMoney(it.Amount),
			})
		}
		rows = append(rows, []string{cli.SeparatorRow})
		rows = append(rows, []string{"TOTAL", "", "", "", cli.FormatMoney(prog.total)})

		fmt.Fprint(out, cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("%s  (%s enrolled)", prog.program, cli.FormatNumber(int64(prog.enrolled))),
			Headers: []string{"Code", "Service", "Patients", "Rate", "Amount"},
			Rows:    rows,
		}))
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "  Total monthly: %s\n\n", cli.FormatMoney(totals.TotalRevenue))
	return nil
}
