package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. MARSROVER_SCENE_DEBUG=true.
const EnvPrefix = "MARSROVER"

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

type SceneConfig struct {
	Debug      bool    `mapstructure:"debug"`
	SunPeriod  float64 `mapstructure:"sunPeriod"`
	LayoutFile string  `mapstructure:"layoutFile"`
	Seed       uint64  `mapstructure:"seed"`
}

type RoverConfig struct {
	LateralSpeed float64 `mapstructure:"lateralSpeed"`
	SpinSpeed    float64 `mapstructure:"spinSpeed"`
}

type CameraConfig struct {
	Smoothing float64 `mapstructure:"smoothing"`
}

type ShadowConfig struct {
	MapSize int `mapstructure:"mapSize"`
}

type AudioConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	MusicVolume float64 `mapstructure:"musicVolume"`
	SFXVolume   float64 `mapstructure:"sfxVolume"`
	FadeSeconds float64 `mapstructure:"fadeSeconds"`
}

// Config is the full runtime configuration.
type Config struct {
	LogLevel string       `mapstructure:"logLevel"`
	Window   WindowConfig `mapstructure:"window"`
	Scene    SceneConfig  `mapstructure:"scene"`
	Rover    RoverConfig  `mapstructure:"rover"`
	Camera   CameraConfig `mapstructure:"camera"`
	Shadow   ShadowConfig `mapstructure:"shadow"`
	Audio    AudioConfig  `mapstructure:"audio"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.width", 1280)
	viper.SetDefault("window.height", 720)
	viper.SetDefault("window.title", "Mars Rover")
	viper.SetDefault("window.vsync", true)

	viper.SetDefault("scene.debug", false)
	viper.SetDefault("scene.sunPeriod", 5.0)
	viper.SetDefault("scene.layoutFile", "")
	viper.SetDefault("scene.seed", 1)

	viper.SetDefault("rover.lateralSpeed", 0.15)
	viper.SetDefault("rover.spinSpeed", 1.0)

	viper.SetDefault("camera.smoothing", 0.3)

	viper.SetDefault("shadow.mapSize", 1024)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.musicVolume", 0.3)
	viper.SetDefault("audio.sfxVolume", 0.5)
	viper.SetDefault("audio.fadeSeconds", 1.5)
}

// Load reads configuration. With an empty path it looks for an optional
// marsrover.yaml in the working directory; an explicit path must exist.
// Environment variables override both.
func Load(path string) (Config, error) {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("marsrover")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the renderer or mixer cannot work with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: must be positive", c.Window.Width, c.Window.Height)
	}
	if s := c.Shadow.MapSize; s < 64 || s&(s-1) != 0 {
		return fmt.Errorf("shadow.mapSize %d: want a power of two >= 64", s)
	}
	if c.Camera.Smoothing < 0 || c.Camera.Smoothing > 1 {
		return fmt.Errorf("camera.smoothing %v: want [0, 1]", c.Camera.Smoothing)
	}
	if c.Scene.SunPeriod == 0 {
		return fmt.Errorf("scene.sunPeriod must be non-zero")
	}
	for name, v := range map[string]float64{
		"audio.musicVolume": c.Audio.MusicVolume,
		"audio.sfxVolume":   c.Audio.SFXVolume,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s %v: want [0, 1]", name, v)
		}
	}
	if c.Audio.FadeSeconds < 0 {
		return fmt.Errorf("audio.fadeSeconds %v: must not be negative", c.Audio.FadeSeconds)
	}
	return nil
}
