package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flags registers the command line on fs and returns a pointer to the
// config file path. Call BindFlags after fs.Parse.
func Flags(fs *pflag.FlagSet) *string {
	path := fs.StringP("config", "c", "", "path to a YAML config file")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.Bool("debug", false, "start with the shadow map overlay visible")
	fs.Uint64("seed", 1, "seed for terrain, textures and colours")
	fs.Bool("mute", false, "disable audio")
	return path
}

// BindFlags lets explicitly set flags override file and env values.
func BindFlags(fs *pflag.FlagSet) error {
	for key, name := range map[string]string{
		"logLevel":    "log-level",
		"scene.debug": "debug",
		"scene.seed":  "seed",
	} {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	if mute, _ := fs.GetBool("mute"); mute {
		viper.Set("audio.enabled", false)
	}
	return nil
}
