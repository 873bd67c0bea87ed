package game

import (
	"marsrover/internal/audio"
	"marsrover/internal/config"
	"marsrover/internal/scene"
)

// MaxFrameDelta caps the per-frame step after a stall (window drag, breakpoint).
const MaxFrameDelta = 0.1

func loadLayout(path string) (scene.Layout, error) {
	if path == "" {
		return scene.DefaultLayout()
	}
	return scene.LoadLayout(path)
}

func sceneOptions(cfg config.Config, layout scene.Layout) scene.Options {
	opts := scene.DefaultOptions(layout)
	opts.SunPeriod = cfg.Scene.SunPeriod
	opts.LateralSpeed = cfg.Rover.LateralSpeed
	opts.SpinSpeed = cfg.Rover.SpinSpeed
	opts.CameraSmoothing = cfg.Camera.Smoothing
	opts.Debug = cfg.Scene.Debug
	opts.Seed = cfg.Scene.Seed
	return opts
}

func audioOptions(cfg config.Config) audio.Options {
	return audio.Options{
		Enabled:     cfg.Audio.Enabled,
		MusicVolume: cfg.Audio.MusicVolume,
		SFXVolume:   cfg.Audio.SFXVolume,
		FadeSeconds: cfg.Audio.FadeSeconds,
		Seed:        cfg.Scene.Seed,
	}
}
