//go:build !android

package game

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/rs/zerolog"

	"marsrover/internal/mesh"
	"marsrover/internal/scene"
)

const (
	SoilTextureSize     = 512
	NightSkyTextureSize = 1024
)

// Texture units. Material textures use unit 0, the shadow map unit 1.
const (
	materialTextureUnit = 0
	shadowTextureUnit   = 1
)

var errIncompleteFramebuffer = errors.New("framebuffer incomplete")

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

func uniformLoc(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}

// program holds one linked shader and its uniform locations. Locations the
// shader does not declare are -1, which GL ignores on upload.
type program struct {
	id uint32

	uModel     int32
	uNormalMat int32
	uView      int32
	uProj      int32
	uLightView int32
	uLightProj int32
	uLightPos  int32
	uLightCol  int32
	uEye       int32

	uColor       int32
	uAmbient     int32
	uDiffusivity int32
	uSpecularity int32
	uSmoothness  int32
	uUseTexture  int32
	uTex         int32
	uShadowMap   int32
}

func newProgram(vertSrc, fragSrc string) (*program, error) {
	id, err := linkProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, err
	}
	p := &program{
		id:           id,
		uModel:       uniformLoc(id, "uModel"),
		uNormalMat:   uniformLoc(id, "uNormalMat"),
		uView:        uniformLoc(id, "uView"),
		uProj:        uniformLoc(id, "uProj"),
		uLightView:   uniformLoc(id, "uLightView"),
		uLightProj:   uniformLoc(id, "uLightProj"),
		uLightPos:    uniformLoc(id, "uLightPos"),
		uLightCol:    uniformLoc(id, "uLightColor"),
		uEye:         uniformLoc(id, "uEye"),
		uColor:       uniformLoc(id, "uColor"),
		uAmbient:     uniformLoc(id, "uAmbient"),
		uDiffusivity: uniformLoc(id, "uDiffusivity"),
		uSpecularity: uniformLoc(id, "uSpecularity"),
		uSmoothness:  uniformLoc(id, "uSmoothness"),
		uUseTexture:  uniformLoc(id, "uUseTexture"),
		uTex:         uniformLoc(id, "uTex"),
		uShadowMap:   uniformLoc(id, "uShadowMap"),
	}
	gl.UseProgram(id)
	gl.Uniform1i(p.uTex, materialTextureUnit)
	gl.Uniform1i(p.uShadowMap, shadowTextureUnit)
	return p, nil
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

type depthTarget struct {
	fbo, tex uint32
	size     int
}

func (t *depthTarget) Size() int { return t.size }

// Renderer is the OpenGL implementation of scene.Backend.
type Renderer struct {
	log zerolog.Logger

	programs [4]*program // indexed by scene.ShaderKind
	meshes   [scene.MeshCount]gpuMesh

	soilTex     uint32
	nightSkyTex uint32
	shadowTex   uint32
	targets     []*depthTarget
}

var programSources = [...]struct {
	kind       scene.ShaderKind
	name       string
	vert, frag string
}{
	{scene.ShaderDepth, "depth", depthVertSrc, depthFragSrc},
	{scene.ShaderShadowPhong, "shadow phong", phongVertSrc, phongFragSrc},
	{scene.ShaderUnlit, "unlit", unlitVertSrc, unlitFragSrc},
	{scene.ShaderDepthOverlay, "depth overlay", overlayVertSrc, overlayFragSrc},
}

// NewRenderer links the shader programs and uploads every mesh in lib along
// with the procedural textures.
func NewRenderer(lib [scene.MeshCount]*mesh.Mesh, seed uint64, log zerolog.Logger) (*Renderer, error) {
	r := &Renderer{log: log}
	for _, src := range programSources {
		p, err := newProgram(src.vert, src.frag)
		if err != nil {
			r.Destroy()
			return nil, fmt.Errorf("%s program: %w", src.name, err)
		}
		r.programs[src.kind] = p
	}

	for id, m := range lib {
		if m == nil {
			continue
		}
		r.meshes[id] = uploadMesh(m)
	}
	gl.BindVertexArray(0)

	r.soilTex = uploadTexture(mesh.Soil(SoilTextureSize, seed), gl.REPEAT)
	r.nightSkyTex = uploadTexture(mesh.NightSky(NightSkyTextureSize, seed), gl.REPEAT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)

	log.Info().Int("meshes", len(lib)).Msg("renderer ready")
	return r, nil
}

func uploadMesh(m *mesh.Mesh) gpuMesh {
	var g gpuMesh
	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)
	gl.GenBuffers(1, &g.ebo)
	gl.BindVertexArray(g.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	stride := int32(mesh.Stride * 4)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aNormal
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(2) // aUV
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, glOffset(6*4))

	g.count = int32(len(m.Indices))
	return g
}

func uploadTexture(img *image.RGBA, wrap int32) uint32 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// SupportsDepthTexture reports whether depth textures can be attached to a
// framebuffer, which core GL guarantees from 3.0.
func (r *Renderer) SupportsDepthTexture() bool {
	var major int32
	gl.GetIntegerv(gl.MAJOR_VERSION, &major)
	return major >= 3
}

func (r *Renderer) CreateDepthTarget(size int) (scene.DepthTarget, error) {
	var maxSize int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxSize)
	if size > int(maxSize) {
		return nil, fmt.Errorf("depth target %d exceeds GL_MAX_TEXTURE_SIZE %d", size, maxSize)
	}

	t := &depthTarget{size: size}
	gl.GenTextures(1, &t.tex)
	gl.BindTexture(gl.TEXTURE_2D, t.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT32F, int32(size), int32(size), 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, t.tex, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteFramebuffers(1, &t.fbo)
		gl.DeleteTextures(1, &t.tex)
		return nil, fmt.Errorf("%w: status 0x%x", errIncompleteFramebuffer, status)
	}
	r.targets = append(r.targets, t)
	return t, nil
}

func (r *Renderer) BindTarget(t scene.DepthTarget) {
	if dt, ok := t.(*depthTarget); ok && dt != nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, dt.fbo)
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (r *Renderer) SetViewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetPass uploads the per-pass uniforms to every program. The shadow map is
// only bound for sampling while its framebuffer is not the render target.
func (r *Renderer) SetPass(u scene.PassUniforms) {
	r.shadowTex = 0
	if dt, ok := u.ShadowMap.(*depthTarget); ok && dt != nil {
		r.shadowTex = dt.tex
	}
	gl.ActiveTexture(gl.TEXTURE0 + shadowTextureUnit)
	gl.BindTexture(gl.TEXTURE_2D, r.shadowTex)
	gl.ActiveTexture(gl.TEXTURE0 + materialTextureUnit)

	view := u.View.Float32()
	proj := u.Projection.Float32()
	lightView := u.LightView.Float32()
	lightProj := u.LightProjection.Float32()
	lc := u.LightColor.Float32()

	for _, p := range r.programs {
		if p == nil {
			continue
		}
		gl.UseProgram(p.id)
		gl.UniformMatrix4fv(p.uView, 1, false, &view[0])
		gl.UniformMatrix4fv(p.uProj, 1, false, &proj[0])
		gl.UniformMatrix4fv(p.uLightView, 1, false, &lightView[0])
		gl.UniformMatrix4fv(p.uLightProj, 1, false, &lightProj[0])
		gl.Uniform3f(p.uLightPos, float32(u.LightPosition.X()), float32(u.LightPosition.Y()), float32(u.LightPosition.Z()))
		gl.Uniform4fv(p.uLightCol, 1, &lc[0])
		gl.Uniform3f(p.uEye, float32(u.Eye.X()), float32(u.Eye.Y()), float32(u.Eye.Z()))
	}
}

func (r *Renderer) texture(id scene.TextureID) uint32 {
	switch id {
	case scene.TextureSoil:
		return r.soilTex
	case scene.TextureNightSky:
		return r.nightSkyTex
	case scene.TextureShadowMap:
		return r.shadowTex
	}
	return 0
}

func (r *Renderer) Draw(dc scene.DrawCall) {
	g := r.meshes[dc.Mesh]
	if g.count == 0 {
		return
	}
	mat := dc.Material
	kind := mat.Shader
	if dc.DepthOnly {
		kind = scene.ShaderDepth
	}
	p := r.programs[kind]
	gl.UseProgram(p.id)

	model := dc.Model.Float32()
	gl.UniformMatrix4fv(p.uModel, 1, false, &model[0])
	if p.uNormalMat >= 0 {
		nm := model.Mat3().Inv().Transpose()
		gl.UniformMatrix3fv(p.uNormalMat, 1, false, &nm[0])
	}

	c := mat.Color.Float32()
	gl.Uniform4fv(p.uColor, 1, &c[0])
	gl.Uniform1f(p.uAmbient, float32(mat.Ambient))
	gl.Uniform1f(p.uDiffusivity, float32(mat.Diffusivity))
	gl.Uniform1f(p.uSpecularity, float32(mat.Specularity))
	gl.Uniform1f(p.uSmoothness, float32(mat.Smoothness))

	tex := r.texture(mat.Texture)
	if tex != 0 {
		gl.Uniform1i(p.uUseTexture, 1)
		gl.BindTexture(gl.TEXTURE_2D, tex)
	} else {
		gl.Uniform1i(p.uUseTexture, 0)
	}

	gl.BindVertexArray(g.vao)
	gl.DrawElements(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, glOffset(0))
	gl.BindVertexArray(0)
}

func (r *Renderer) Destroy() {
	for i := range r.meshes {
		g := &r.meshes[i]
		for _, id := range []uint32{g.vbo, g.ebo} {
			if id != 0 {
				gl.DeleteBuffers(1, &id)
			}
		}
		if g.vao != 0 {
			gl.DeleteVertexArrays(1, &g.vao)
		}
		*g = gpuMesh{}
	}
	for _, t := range r.targets {
		gl.DeleteFramebuffers(1, &t.fbo)
		gl.DeleteTextures(1, &t.tex)
	}
	r.targets = nil
	for _, id := range []uint32{r.soilTex, r.nightSkyTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
	r.soilTex, r.nightSkyTex = 0, 0
	for i, p := range r.programs {
		if p != nil {
			gl.DeleteProgram(p.id)
			r.programs[i] = nil
		}
	}
}
