package scene

// ShaderKind picks the GPU program a draw call uses.
type ShaderKind int

const (
	// ShaderDepth writes depth only; every object uses it in the light pass.
	ShaderDepth ShaderKind = iota
	// ShaderShadowPhong is lit Phong that samples the shadow map.
	ShaderShadowPhong
	// ShaderUnlit is flat colour, optionally textured (light gizmo, sky).
	ShaderUnlit
	// ShaderDepthOverlay shows the shadow map as a screen-space quad.
	ShaderDepthOverlay
)

// TextureID names a texture the backend owns.
type TextureID int

const (
	TextureNone TextureID = iota
	TextureSoil
	TextureNightSky
	TextureShadowMap
)

// Material is an immutable set of shading parameters. Use the With methods to
// derive per-draw variants.
type Material struct {
	Shader      ShaderKind
	Color       Color
	Ambient     float64
	Diffusivity float64
	Specularity float64
	Smoothness  float64
	Texture     TextureID
}

func (m Material) WithColor(c Color) Material {
	m.Color = c
	return m
}

func (m Material) WithTexture(t TextureID) Material {
	m.Texture = t
	return m
}

func (m Material) WithAmbient(a float64) Material {
	m.Ambient = a
	return m
}

// Materials is the fixed material set of the scene.
var Materials = struct {
	Floor        Material
	Rover        Material
	Mars         Material
	Crystal      Material
	Sky          Material
	LightSource  Material
	Pure         Material
	DepthOverlay Material
}{
	Floor: Material{
		Shader: ShaderShadowPhong, Color: Palette.White,
		Ambient: 0.3, Diffusivity: 0.6, Specularity: 0.9, Smoothness: 64,
	},
	Rover: Material{
		Shader: ShaderShadowPhong, Color: Palette.Mars,
		Ambient: 0.5, Diffusivity: 0.6, Specularity: 0.9, Smoothness: 64,
	},
	Mars: Material{
		Shader: ShaderShadowPhong, Color: Palette.Mars,
		Ambient: 0.3, Diffusivity: 0.6, Specularity: 0.3, Smoothness: 64,
		Texture: TextureSoil,
	},
	Crystal: Material{
		Shader: ShaderShadowPhong, Color: Color{1, 0.43, 0.91, 0.7},
		Ambient: 0.3, Diffusivity: 0.8, Specularity: 1.0, Smoothness: 64,
	},
	Sky: Material{
		Shader: ShaderUnlit, Color: Palette.Black,
		Ambient: 1.0, Diffusivity: 0.1, Specularity: 0.1,
		Texture: TextureNightSky,
	},
	LightSource: Material{
		Shader: ShaderUnlit, Color: Palette.White, Ambient: 1,
	},
	Pure: Material{Shader: ShaderDepth},
	DepthOverlay: Material{
		Shader: ShaderDepthOverlay, Color: Color{0, 0, 0, 1}, Ambient: 1,
		Texture: TextureShadowMap,
	},
}
