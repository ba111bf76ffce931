package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/carerev/internal/cli"
	"github.com/theirongolddev/carerev/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Prompt for each parameter, then print the projection",
	RunE:  runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, _ []string) error {
	in, err := loadInputs(cmd)
	if err != nil {
		return err
	}

	values, form := newParamsForm(in.params)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("prompt: %w", err)
	}

	p := in.params
	for i, f := range model.Fields {
		f.Apply(&p, values[i])
	}
	in.log.Debug().Interface("params", p).Msg("parameters entered")

	result := in.engine.ProjectAnnual(p)
	out := cmd.OutOrStdout()
	if in.format != cli.FormatTable {
		return cli.Encode(out, in.format, result)
	}
	printSummary(out, p, result)
	return nil
}

// newParamsForm builds one huh group per form section, prefilled from p.
// The returned slice holds the raw answers in model.Fields order.
func newParamsForm(p model.Params) ([]string, *huh.Form) {
	values := make([]string, len(model.Fields))
	var groups []*huh.Group
	var section string
	var inputs []huh.Field

	flush := func() {
		if len(inputs) > 0 {
			groups = append(groups, huh.NewGroup(inputs...).Title(section))
		}
		inputs = nil
	}

	for i, f := range model.Fields {
		if f.Section != section {
			flush()
			section = f.Section
		}
		values[i] = f.Format(p)
		inputs = append(inputs, huh.NewInput().
			Title(f.Label).
			Placeholder(values[i]).
			Value(&values[i]))
	}
	flush()

	return values, huh.NewForm(groups...)
}
