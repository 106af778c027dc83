// Config loading for the silben CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config keys. Values from the config file apply only when the matching flag
// was not set on the command line: flag > config > default.
const (
	cfgKeyMarker = "marker"
	cfgKeyStrip  = "strip"
)

// loadConfig reads the optional .silben.yaml from the working directory or
// $HOME, or the file named by path when given. A missing default config file
// is not an error; a missing explicit one is.
func loadConfig(path string, cmd *cobra.Command) error {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(".silben")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("read config: %w", err)
			}
			// Missing config file is not an error.
		}
	}

	flags := cmd.Flags()
	if !flags.Changed(cfgKeyMarker) && v.IsSet(cfgKeyMarker) {
		flagMarker = v.GetString(cfgKeyMarker)
	}
	if !flags.Changed(cfgKeyStrip) && v.IsSet(cfgKeyStrip) {
		flagStrip = v.GetBool(cfgKeyStrip)
	}
	return nil
}
