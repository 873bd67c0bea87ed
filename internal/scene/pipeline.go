package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

// ErrDepthTextureUnsupported is returned when the backend cannot render into
// a depth texture. There is no fallback; callers should abort.
var ErrDepthTextureUnsupported = errors.New("depth texture rendering unsupported")

// DepthTarget is an off-screen depth buffer owned by the backend.
type DepthTarget interface {
	Size() int
}

// PassUniforms carries everything a pass needs besides per-draw state.
type PassUniforms struct {
	Pass       Pass
	View       Transform
	Projection Transform
	Eye        mgl64.Vec3

	LightView       Transform
	LightProjection Transform
	LightPosition   mgl64.Vec3
	LightColor      Color

	// ShadowMap is nil during the depth pass.
	ShadowMap DepthTarget
}

// Backend is the graphics collaborator the pipeline drives.
type Backend interface {
	SupportsDepthTexture() bool
	CreateDepthTarget(size int) (DepthTarget, error)
	// BindTarget switches rendering to t, or to the window when t is nil.
	BindTarget(t DepthTarget)
	SetViewport(x, y, w, h int)
	Clear()
	SetPass(u PassUniforms)
	Draw(dc DrawCall)
}

// Pipeline renders one frame as a light-space depth pass followed by the
// colour pass that samples it.
type Pipeline struct {
	backend Backend
	log     zerolog.Logger

	size   int
	width  int
	height int

	initialized bool
	initErr     error
	target      DepthTarget
}

func NewPipeline(b Backend, shadowMapSize int, log zerolog.Logger) *Pipeline {
	if shadowMapSize <= 0 {
		shadowMapSize = DefaultShadowMapSize
	}
	return &Pipeline{
		backend: b,
		log:     log,
		size:    shadowMapSize,
		width:   1,
		height:  1,
	}
}

// Resize records the window framebuffer size used by the colour pass.
func (p *Pipeline) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	p.width, p.height = w, h
}

func (p *Pipeline) Aspect() float64 { return float64(p.width) / float64(p.height) }

// init runs on the first frame only. A failure is remembered and returned
// on every later frame.
func (p *Pipeline) init() error {
	if p.initialized {
		return p.initErr
	}
	p.initialized = true

	if !p.backend.SupportsDepthTexture() {
		p.initErr = fmt.Errorf("init shadow map: %w", ErrDepthTextureUnsupported)
		return p.initErr
	}
	t, err := p.backend.CreateDepthTarget(p.size)
	if err != nil {
		p.initErr = fmt.Errorf("create depth target %dx%d: %w", p.size, p.size, err)
		return p.initErr
	}
	p.target = t
	p.log.Info().Int("size", p.size).Msg("shadow map ready")
	return nil
}

// LightMatrices returns the light view and projection for the depth pass.
func LightMatrices(l Light) (view, proj Transform) {
	view = LookAt(l.Position, l.ViewTarget, mgl64.Vec3{0, -1, 0})
	proj = Perspective(l.FieldOfView, 1, LightNear, LightFar)
	return view, proj
}

// Render draws s. No draw call is issued if initialization failed.
func (p *Pipeline) Render(s *State) error {
	if err := p.init(); err != nil {
		return err
	}
	b := p.backend

	lightView, lightProj := LightMatrices(s.Light)
	base := PassUniforms{
		LightView:       lightView,
		LightProjection: lightProj,
		LightPosition:   s.Light.Position,
		LightColor:      s.Light.Color,
	}

	// Depth pass.
	b.BindTarget(p.target)
	b.SetViewport(0, 0, p.size, p.size)
	b.Clear()
	depth := base
	depth.Pass = PassDepth
	depth.View = lightView
	depth.Projection = lightProj
	depth.Eye = s.Light.Position
	b.SetPass(depth)
	DrawScene(s, PassDepth, b.Draw)
	b.BindTarget(nil)

	// Colour pass.
	b.SetViewport(0, 0, p.width, p.height)
	b.Clear()
	color := base
	color.Pass = PassColor
	color.View = s.Camera.Current
	color.Projection = Perspective(CameraFieldOfView, p.Aspect(), CameraNear, CameraFar)
	color.Eye = s.Camera.Current.Inverse().Origin()
	color.ShadowMap = p.target
	b.SetPass(color)
	DrawScene(s, PassColor, b.Draw)
	if s.Debug {
		b.Draw(DepthOverlay(p.Aspect()))
	}
	return nil
}
