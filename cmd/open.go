package cmd

import (
	"github.com/multidriver/multidriver/driver"
	"github.com/multidriver/multidriver/format"
	"github.com/multidriver/multidriver/history"
	"github.com/multidriver/multidriver/key"
	"github.com/multidriver/multidriver/log"
	"github.com/multidriver/multidriver/registry"
	"github.com/multidriver/multidriver/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// connect opens source with the driver selected by --format or by its extension.
// The returned function closes the connection.
func connect(cmd *cobra.Command, source string) (driver.Driver, func(), error) {
	source = util.Abs(source)
	forced := lo.Must(cmd.Flags().GetString("format"))

	var (
		d   driver.Driver
		err error
	)

	if forced == "" {
		d, err = driver.Open(registry.Global(), source)
	} else {
		var f format.Format
		if f, err = format.Parse(forced); err != nil {
			return nil, nil, err
		}
		d, err = openAs(f, source)
	}
	if err != nil {
		return nil, nil, err
	}

	if viper.GetBool(key.HistorySave) && !lo.Must(cmd.Flags().GetBool("no-history")) {
		if err := history.Remember(source, d.Format().String()); err != nil {
			log.Warnf("remember %s: %s", source, err)
		}
	}

	return d, func() {
		if err := d.Close(); err != nil {
			log.Warn(err)
		}
	}, nil
}

func openAs(f format.Format, source string) (driver.Driver, error) {
	switch f {
	case format.CSV:
		return driver.OpenCSV(registry.Global(), source)
	default:
		return driver.OpenJSON(registry.Global(), source)
	}
}
