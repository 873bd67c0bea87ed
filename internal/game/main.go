//go:build !android

package game

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"marsrover/internal/audio"
	"marsrover/internal/config"
	"marsrover/internal/logging"
	"marsrover/internal/mesh"
	"marsrover/internal/scene"
	"marsrover/internal/telemetry"
)

// RunDesktop opens the window and runs the frame loop until the window is
// closed. It returns an error when setup fails or a frame cannot be rendered.
func RunDesktop(cfg config.Config, log zerolog.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info().
		Str("gl", gl.GoStr(gl.GetString(gl.VERSION))).
		Str("renderer", gl.GoStr(gl.GetString(gl.RENDERER))).
		Msg("OpenGL context ready")

	layout, err := loadLayout(cfg.Scene.LayoutFile)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	state := scene.NewState(sceneOptions(cfg, layout), logging.Component(log, "scene"))

	audioLog := logging.Component(log, "audio")
	player, err := audio.New(audioOptions(cfg), audioLog)
	if err != nil {
		log.Warn().Err(err).Msg("audio init failed (continuing without sound)")
		player = audio.Silent(audioLog)
	}
	defer player.Close()
	player.Attach(state.Events)

	metrics, err := telemetry.NewFrameMetrics(telemetry.Meter())
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	metrics.Attach(state.Events)

	rend, err := NewRenderer(mesh.Library(cfg.Scene.Seed), cfg.Scene.Seed, logging.Component(log, "renderer"))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	pipeline := scene.NewPipeline(rend, cfg.Shadow.MapSize, logging.Component(log, "pipeline"))
	input := NewInput()
	ctx := context.Background()

	title := ""
	start := glfw.GetTime()
	last := start
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		input.Poll(window, state)
		state.Advance(now-start, dt)
		player.Update(dt)

		pipeline.Resize(fbW, fbH)
		if err := pipeline.Render(state); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
		metrics.RecordFrame(ctx, dt)

		if t := cfg.Window.Title + " | " + state.Readout(); t != title {
			window.SetTitle(t)
			title = t
		}

		window.SwapBuffers()
	}

	log.Info().
		Int64("frames", metrics.Frames).
		Int64("crystals", metrics.Crystals).
		Int64("wallHits", metrics.WallHits).
		Msg("session ended")
	return nil
}
