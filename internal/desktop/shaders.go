//go:build !android

package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sprite vertex shader: point sprites with per-vertex pos/size/color/rotation.
// Resolution is the size of the current viewport, not the framebuffer.
const spriteVertSrc = `#version 410 core

layout(location = 0) in vec2 aWorldPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec4 aColor;
layout(location = 3) in float aRotation;

uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

out vec4 vColor;
out float vRotation;

void main() {
    vec2 screenPos = (aWorldPos - uCamera) * uZoom + uResolution * 0.5;
    vec2 ndc = (screenPos / uResolution) * 2.0 - 1.0;
    ndc.y = -ndc.y;
    gl_Position = vec4(ndc, 0.0, 1.0);
    gl_PointSize = max(1.0, aSize * uZoom);
    vColor = aColor;
    vRotation = aRotation;
}
` + "\x00"

// Disc fragment shader: round sprite with a one-pixel-ish soft edge.
const discFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float d = length(gl_PointCoord - vec2(0.5)) * 2.0;
    float edge = fwidth(d);
    float a = 1.0 - smoothstep(1.0 - edge, 1.0, d);
    if (a <= 0.0) discard;
    FragColor = vec4(vColor.rgb, vColor.a * a);
}
` + "\x00"

// Glow fragment shader: additive radial falloff, scaled by alpha.
const glowFragSrc = `#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
    float dist = length(gl_PointCoord - vec2(0.5)) * 2.0;
    float falloff = clamp(1.0 - dist, 0.0, 1.0);
    falloff = falloff * falloff;
    FragColor = vec4(vColor.rgb * vColor.a * falloff, 1.0);
}
` + "\x00"

// Chaser fragment shader: disc with a mouth wedge cut out along vRotation
// and an eye on the upper side of the heading.
const chaserFragSrc = `#version 410 core

uniform float uMouth;
uniform vec3 uEye;

in vec4 vColor;
in float vRotation;
out vec4 FragColor;

void main() {
    vec2 uv = (gl_PointCoord - vec2(0.5)) * 2.0;
    float d = length(uv);
    if (d > 1.0) discard;

    float ang = atan(uv.y, uv.x) - vRotation;
    ang = mod(ang + 3.14159265, 6.2831853) - 3.14159265;
    if (abs(ang) < uMouth && d > 0.05) discard;

    vec2 eye = 0.35 * vec2(cos(vRotation - 1.5707963), sin(vRotation - 1.5707963));
    if (length(uv - eye) < 0.18) {
        FragColor = vec4(uEye, vColor.a);
        return;
    }
    FragColor = vColor;
}
` + "\x00"

// Arrow fragment shader: outlined chevron pointing along vRotation.
const arrowFragSrc = `#version 410 core

in vec4 vColor;
in float vRotation;
out vec4 FragColor;

float cross2(vec2 a, vec2 b) { return a.x * b.y - a.y * b.x; }

bool inTri(vec2 p, vec2 a, vec2 b, vec2 c) {
    float d1 = cross2(b - a, p - a);
    float d2 = cross2(c - b, p - b);
    float d3 = cross2(a - c, p - c);
    bool neg = (d1 < 0.0) || (d2 < 0.0) || (d3 < 0.0);
    bool pos = (d1 > 0.0) || (d2 > 0.0) || (d3 > 0.0);
    return !(neg && pos);
}

bool inArrow(vec2 p, float s) {
    p.y = abs(p.y);
    return inTri(p, vec2(s, 0.0), vec2(-0.6 * s, 0.75 * s), vec2(-0.2 * s, 0.0));
}

void main() {
    vec2 uv = (gl_PointCoord - vec2(0.5)) * 2.0;
    float c = cos(-vRotation);
    float s = sin(-vRotation);
    vec2 p = vec2(c * uv.x - s * uv.y, s * uv.x + c * uv.y);
    if (inArrow(p, 0.78)) {
        FragColor = vColor;
    } else if (inArrow(p, 0.95)) {
        FragColor = vec4(0.0, 0.0, 0.0, 0.9 * vColor.a);
    } else {
        discard;
    }
}
` + "\x00"

// Overlay vertex shader: unit quad stretched over the current viewport.
const overlayVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

out vec2 vUV;

void main() {
    vUV = aPos;
    gl_Position = vec4(aPos * 2.0 - 1.0, 0.0, 1.0);
}
` + "\x00"

// Overlay fragment shader: darkening wash plus a radial vignette.
const overlayFragSrc = `#version 410 core

uniform float uAlpha;
uniform float uVignette;
uniform vec3 uTint;

in vec2 vUV;
out vec4 FragColor;

void main() {
    float r = length(vUV - vec2(0.5)) * 2.0;
    float v = smoothstep(0.35, 1.3, r) * uVignette;
    FragColor = vec4(uTint, clamp(uAlpha + v, 0.0, 1.0));
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
