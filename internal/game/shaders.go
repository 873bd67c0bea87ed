//go:build !android

package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex layout shared by every mesh: location 0 position, 1 normal, 2 uv.

// Depth pass: position only, no colour output.
const depthVertSrc = `#version 410 core
layout(location = 0) in vec3 aPos;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

void main() {
    gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}
` + "\x00"

const depthFragSrc = `#version 410 core
void main() {
}
` + "\x00"

// Lit Phong with a single point light and a shadow lookup. Ambient is never
// shadowed.
const phongVertSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec2 aUV;

uniform mat4 uModel;
uniform mat3 uNormalMat;
uniform mat4 uView;
uniform mat4 uProj;
uniform mat4 uLightView;
uniform mat4 uLightProj;

out vec3 vWorldPos;
out vec3 vNormal;
out vec2 vUV;
out vec4 vLightClip;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vWorldPos = world.xyz;
    vNormal = normalize(uNormalMat * aNormal);
    vUV = aUV;
    vLightClip = uLightProj * uLightView * world;
    gl_Position = uProj * uView * world;
}
` + "\x00"

const phongFragSrc = `#version 410 core
in vec3 vWorldPos;
in vec3 vNormal;
in vec2 vUV;
in vec4 vLightClip;

uniform vec4 uColor;
uniform float uAmbient;
uniform float uDiffusivity;
uniform float uSpecularity;
uniform float uSmoothness;
uniform vec3 uLightPos;
uniform vec4 uLightColor;
uniform vec3 uEye;
uniform int uUseTexture;
uniform sampler2D uTex;
uniform sampler2D uShadowMap;

out vec4 FragColor;

float lightVisibility(vec3 n, vec3 l) {
    vec3 p = vLightClip.xyz / vLightClip.w * 0.5 + 0.5;
    if (p.x < 0.0 || p.x > 1.0 || p.y < 0.0 || p.y > 1.0 || p.z > 1.0) {
        return 1.0;
    }
    float bias = max(0.004 * (1.0 - dot(n, l)), 0.0008);
    vec2 texel = 1.0 / vec2(textureSize(uShadowMap, 0));
    float lit = 0.0;
    for (int x = -1; x <= 1; x++) {
        for (int y = -1; y <= 1; y++) {
            float closest = texture(uShadowMap, p.xy + vec2(x, y) * texel).r;
            lit += (p.z - bias > closest) ? 0.0 : 1.0;
        }
    }
    return lit / 9.0;
}

void main() {
    vec4 base = uColor;
    if (uUseTexture == 1) {
        vec4 t = texture(uTex, vUV);
        base = vec4(base.rgb * t.rgb, base.a * t.a);
    }

    vec3 n = normalize(vNormal);
    if (!gl_FrontFacing) {
        n = -n;
    }
    vec3 l = normalize(uLightPos - vWorldPos);
    vec3 v = normalize(uEye - vWorldPos);
    vec3 h = normalize(l + v);

    float diffuse = max(dot(n, l), 0.0);
    float specular = pow(max(dot(n, h), 0.0), uSmoothness);
    vec3 direct = uLightColor.rgb * (base.rgb * uDiffusivity * diffuse + vec3(uSpecularity * specular));

    FragColor = vec4(base.rgb * uAmbient + direct * lightVisibility(n, l), base.a);
}
` + "\x00"

// Flat colour. A texture is added to the colour rather than multiplied so a
// black sky still shows its stars.
const unlitVertSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 2) in vec2 aUV;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec2 vUV;

void main() {
    vUV = aUV;
    gl_Position = uProj * uView * uModel * vec4(aPos, 1.0);
}
` + "\x00"

const unlitFragSrc = `#version 410 core
in vec2 vUV;

uniform vec4 uColor;
uniform float uAmbient;
uniform int uUseTexture;
uniform sampler2D uTex;

out vec4 FragColor;

void main() {
    vec3 rgb = uColor.rgb;
    if (uUseTexture == 1) {
        rgb += texture(uTex, vUV).rgb;
    }
    FragColor = vec4(rgb * uAmbient, uColor.a);
}
` + "\x00"

// Shadow map preview. The model matrix maps the unit square straight to
// clip space.
const overlayVertSrc = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 2) in vec2 aUV;

uniform mat4 uModel;

out vec2 vUV;

void main() {
    vUV = aUV;
    gl_Position = uModel * vec4(aPos, 1.0);
}
` + "\x00"

const overlayFragSrc = `#version 410 core
in vec2 vUV;

uniform sampler2D uShadowMap;

out vec4 FragColor;

void main() {
    float d = texture(uShadowMap, vUV).r;
    FragColor = vec4(vec3(d), 1.0);
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
