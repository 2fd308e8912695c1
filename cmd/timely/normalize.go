package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/timely/datetime"
	"github.com/viant/timely/normalizer"
)

func newNormalizeCommand(opts *options) *cobra.Command {
	inputFormat := time.RFC3339
	cmd := &cobra.Command{
		Use:   "normalize <text>",
		Short: "Parses text with input format and prints it with configured format and timezone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := normalizer.New().Denormalize(args[0], datetime.VariantImmutable,
				normalizer.WithFormat(inputFormat), normalizer.WithPath("text"))
			if err != nil {
				return err
			}
			text, err := normalizer.New(opts.normalizerOptions()...).Normalize(value)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVar(&inputFormat, "input-format", inputFormat, "input date time pattern")
	return cmd
}
