package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/viant/timely/normalizer"
)

const (
	configName  = "timely"
	envPrefix   = "TIMELY"
	formatKey   = "format"
	timezoneKey = "timezone"
)

type options struct {
	config *viper.Viper
	path   string
}

func newRootCommand() *cobra.Command {
	opts := &options{config: viper.New()}
	cmd := &cobra.Command{
		Use:          "timely",
		Short:        "Converts date time text between formats, timezones and variants",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.path, "config", "", "config file (default ./timely.yaml)")
	flags.String(formatKey, "", "date time pattern, ICU (yyyy-MM-dd) or Go layout")
	flags.String(timezoneKey, "", "timezone name or offset, i.e. Europe/Amsterdam, +02:00")
	_ = opts.config.BindPFlag(formatKey, flags.Lookup(formatKey))
	_ = opts.config.BindPFlag(timezoneKey, flags.Lookup(timezoneKey))

	cmd.AddCommand(newNormalizeCommand(opts), newDenormalizeCommand(opts), newVariantsCommand())
	return cmd
}

func (o *options) load() error {
	o.config.SetEnvPrefix(envPrefix)
	o.config.AutomaticEnv()
	if o.path != "" {
		o.config.SetConfigFile(o.path)
	} else {
		o.config.SetConfigName(configName)
		o.config.AddConfigPath(".")
	}
	if err := o.config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.path != "" || !errors.As(err, &notFound) {
			return errors.Wrapf(err, "failed to load config")
		}
	}
	return nil
}

func (o *options) normalizerOptions() []normalizer.Option {
	return []normalizer.Option{
		normalizer.WithFormat(o.config.GetString(formatKey)),
		normalizer.WithTimezone(o.config.GetString(timezoneKey)),
	}
}
