package cmd

import (
	"fmt"

	"github.com/theirongolddev/carerev/internal/cli"
	"github.com/theirongolddev/carerev/internal/pipeline"

	"github.com/spf13/cobra"
)

var rampCmd = &cobra.Command{
	Use:   "ramp",
	Short: "12-month enrollment ramp revenue",
	RunE:  runRamp,
}

func init() {
	rootCmd.AddCommand(rampCmd)
}

func runRamp(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	points := in.engine.ProjectRamp(in.params)
	out := cmd.OutOrStdout()
	if in.format != cli.FormatTable {
		return cli.Encode(out, in.format, points)
	}

	peak := 0.0
	total := 0.0
	values := make([]float64, 0, len(points))
	for _, pt := range points {
		peak = max(peak, pt.Revenue)
		total += pt.Revenue
		values = append(values, pt.Revenue)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.RenderTitle("ENROLLMENT RAMP  First 12 months"))
	fmt.Fprintln(out)

	rows := make([][]string, 0, len(points)+2)
	for _, pt := range points {
		rows = append(rows, []string{
			pt.Month,
			cli.FormatFactor(pt.Factor),
			cli.FormatMoney(pt.Revenue),
			cli.RenderHorizontalBar(pt.Revenue, peak, 20),
		})
	}
	rows = append(rows, []string{cli.SeparatorRow})
	rows = append(rows, []string{"Year 1", "", cli.FormatMoney(total), ""})

	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Headers: []string{"Month", "Enrolled", "Revenue", ""},
		Rows:    rows,
	}))

	fmt.Fprintf(out, "  Trend  %s\n\n", cli.RenderSparkline(values))

	schedule := pipeline.RampSchedule()
	pairs := make([][2]string, 0, len(schedule))
	for _, s := range schedule {
		pairs = append(pairs, [2]string{s.Label(), cli.FormatFactor(s.Factor) + " enrolled"})
	}
	fmt.Fprint(out, cli.RenderKeyValues(pairs))
	fmt.Fprintln(out)
	return nil
}
