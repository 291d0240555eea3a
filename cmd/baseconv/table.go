package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bft-labs/baseconv/pkg/baseconv"
	"github.com/bft-labs/baseconv/pkg/log"
)

func newTableCmd(a *app) *cobra.Command {
	var from int

	cmd := &cobra.Command{
		Use:   "table NUMBER",
		Short: "Show a number in several bases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.ValidateTableBases(); err != nil {
				return err
			}
			results, err := a.converter().Table(args[0], from, a.cfg.TableBases)
			if err != nil {
				return fmt.Errorf("convert %q: %w", args[0], err)
			}
			a.logger.Debug("table", log.String("input", args[0]), log.Int("rows", len(results)))
			renderTable(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().IntVarP(&from, "from", "f", 10, "source base")
	cmd.Flags().IntSliceVarP(&a.cfg.TableBases, "bases", "b", a.cfg.TableBases, "target bases")
	return cmd
}

func renderTable(w io.Writer, results []baseconv.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Base", "Value", "Digits"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Target.Base(), r.Formatted, len(r.Target.IntegerDigits()) + len(r.Target.FractionalDigits())})
	}
	t.Render()
}
