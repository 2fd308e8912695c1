package main

import (
	"fmt"
	"time"

	"github.com/francoispqt/gojay"
	"github.com/spf13/cobra"
	"github.com/viant/timely/datetime"
	"github.com/viant/timely/normalizer"
)

type result struct {
	Variant  string
	Value    string
	Timezone string
	Unix     int64
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (r *result) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("variant", r.Variant)
	enc.StringKey("value", r.Value)
	enc.StringKey("timezone", r.Timezone)
	enc.Int64Key("unix", r.Unix)
}

// IsNil implements gojay.MarshalerJSONObject
func (r *result) IsNil() bool {
	return r == nil
}

func newDenormalizeCommand(opts *options) *cobra.Command {
	var (
		variant = string(datetime.VariantImmutable)
		asJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "denormalize <text>",
		Short: "Parses text into date time variant with configured format and timezone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := normalizer.New(opts.normalizerOptions()...).Denormalize(args[0], datetime.Variant(variant), normalizer.WithPath("text"))
			if err != nil {
				return err
			}
			if !asJSON {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), value.Format(time.RFC3339))
				return err
			}
			data, err := gojay.MarshalJSONObject(&result{
				Variant:  string(value.Variant()),
				Value:    value.Format(time.RFC3339),
				Timezone: value.Location().String(),
				Unix:     value.Time().Unix(),
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVar(&variant, "variant", variant, "target variant, see variants command")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print result as JSON")
	return cmd
}
