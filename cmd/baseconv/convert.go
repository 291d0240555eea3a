package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "convert NUMBER...",
		Short: "Convert numbers once and print one result per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv := a.converter()
			for _, arg := range args {
				res, err := conv.Convert(arg, from, to)
				if err != nil {
					return fmt.Errorf("convert %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), res.Formatted)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&from, "from", "f", 10, "source base")
	cmd.Flags().IntVarP(&to, "to", "t", 10, "target base")
	return cmd
}
