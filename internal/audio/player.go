// Package audio plays the crystal chime and the background music through oto.
package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/rs/zerolog"

	"marsrover/internal/audio/dsp"
	"marsrover/internal/scene"
)

type Options struct {
	Enabled     bool
	MusicVolume float64
	SFXVolume   float64
	FadeSeconds float64
	Seed        uint64
}

// device is the part of *oto.Context the player uses.
type device interface {
	NewPlayer(r io.Reader) oto.Player
}

// Player owns the oto context. A Player without a context is silent but
// still tracks music state, so callers never need a nil check.
type Player struct {
	log   zerolog.Logger
	opts  Options
	ctx   device
	ready chan struct{}

	chime []byte

	music     oto.Player
	musicSrc  *dsp.Music
	musicFade dsp.Fader
	musicOn   bool
}

// Silent returns a Player that never produces sound.
func Silent(log zerolog.Logger) *Player {
	return &Player{log: log}
}

// New opens the audio device. When opts.Enabled is false it returns a
// silent player.
func New(opts Options, log zerolog.Logger) (*Player, error) {
	if !opts.Enabled {
		return Silent(log), nil
	}
	ctx, ready, err := oto.NewContext(dsp.SampleRate, dsp.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &Player{
		log:   log,
		opts:  opts,
		ctx:   ctx,
		ready: ready,
		chime: dsp.Chime(),
	}, nil
}

// Attach subscribes the player to scene events. Call it once during setup.
func (p *Player) Attach(bus *scene.EventBus) {
	bus.Subscribe(scene.EventCrystalCollected, func(scene.Event) { p.PlayChime() })
	bus.Subscribe(scene.EventMusicStarted, func(scene.Event) { p.StartMusic() })
	bus.Subscribe(scene.EventMusicStopped, func(scene.Event) { p.StopMusic() })
}

func (p *Player) isReady() bool {
	if p.ctx == nil {
		return false
	}
	select {
	case <-p.ready:
		return true
	default:
		return false
	}
}

func (p *Player) MusicPlaying() bool { return p.musicOn }

// PlayChime plays the pickup sound unless music is on.
func (p *Player) PlayChime() {
	if p.musicOn || !p.isReady() {
		return
	}
	samples := p.chime
	go func() {
		player := p.ctx.NewPlayer(dsp.NewSoundReader(samples))
		player.SetVolume(p.opts.SFXVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

// StartMusic fades the loop in, resuming from where it was paused. Before the
// device is ready it only records the request; Update starts playback later.
func (p *Player) StartMusic() {
	p.musicOn = true
	if !p.isReady() {
		return
	}
	p.beginMusic()
}

func (p *Player) beginMusic() {
	if p.music == nil {
		p.musicSrc = dsp.NewMusic(p.opts.Seed)
		p.music = p.ctx.NewPlayer(p.musicSrc)
		p.music.SetVolume(0)
	}
	p.musicFade.Start(p.opts.MusicVolume, p.opts.FadeSeconds)
	p.music.SetVolume(p.musicFade.Volume())
	p.music.Play()
	p.log.Info().Msg("music started")
}

// StopMusic fades the loop out; Update pauses it once silent.
func (p *Player) StopMusic() {
	p.musicOn = false
	if p.music == nil {
		return
	}
	p.musicFade.Start(0, p.opts.FadeSeconds)
	if !p.musicFade.Active() {
		p.music.SetVolume(0)
		p.music.Pause()
	}
	p.log.Info().Msg("music stopped")
}

// Update advances volume fades. Call it once per frame.
func (p *Player) Update(dt float64) {
	if p.music == nil {
		if p.musicOn && p.isReady() {
			p.beginMusic()
		}
		return
	}
	done := p.musicFade.Update(dt)
	p.music.SetVolume(p.musicFade.Volume())
	if done && !p.musicOn {
		p.music.Pause()
	}
}

func (p *Player) Close() {
	if p.music != nil {
		if err := p.music.Close(); err != nil {
			p.log.Warn().Err(err).Msg("close music player")
		}
		p.music = nil
	}
}
