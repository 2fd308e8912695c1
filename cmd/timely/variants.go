package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/timely/datetime"
)

func newVariantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "Lists supported variants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, variant := range datetime.Variants() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), variant); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
