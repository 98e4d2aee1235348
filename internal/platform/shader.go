package platform

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v2.1/gl"

	"github.com/retrograde-labs/pixelforge/internal/apperr"
)

// fragmentSkeleton is the fixed GLSL 1.20 skeleton spec §4.3/§6 describe:
// the boot script's effect snippet becomes the body of `effect`, called
// with the uniforms §6 names. gl_TexCoord[0] and gl_FragCoord are filled
// in by OpenGL 2.1's fixed-function vertex stage (Present draws with
// plain glTexCoord2f/glVertex2f calls, spec's Non-goals exempting
// "GPU shader authoring by game code beyond a single fragment-effect
// hook" — there is deliberately no companion vertex shader).
const fragmentSkeleton = `#version 120
uniform sampler2D u_texture0;
uniform vec2 u_texture_size;
uniform vec2 u_screen_size;
uniform float u_screen_scale;
uniform float u_time;

vec4 effect(vec4 color, sampler2D texture, vec2 texture_coords, vec2 screen_coords) {
%s
}

void main() {
    gl_FragColor = effect(vec4(1.0), u_texture0, gl_TexCoord[0].st, gl_FragCoord.xy);
}
`

// passthroughEffect is the body used when the boot script supplies no
// effect snippet (spec §6 "if absent, a passthrough ... is used").
const passthroughEffect = "    return texture2D(texture, texture_coords) * color;"

// buildFragmentSource wraps snippet in fragmentSkeleton, or falls back
// to passthroughEffect when snippet is empty.
func buildFragmentSource(snippet string) string {
	body := strings.TrimRight(snippet, "\n")
	if strings.TrimSpace(body) == "" {
		body = passthroughEffect
	}
	return fmt.Sprintf(fragmentSkeleton, body)
}

// compileEffectProgram compiles snippet (or the passthrough default)
// into a linked GLSL 1.20 program exposing the uniforms of spec §4.3/§6.
func compileEffectProgram(snippet string) (uint32, error) {
	shader, err := compileShader(buildFragmentSource(snippet), gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, apperr.Wrap(apperr.ErrDecode, "compile fragment effect", err)
	}
	defer gl.DeleteShader(shader)

	program := gl.CreateProgram()
	gl.AttachShader(program, shader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, apperr.Wrap(apperr.ErrDecode, "link fragment effect: "+log, nil)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", log)
	}
	return shader, nil
}

// effectUniforms caches the uniform locations of spec §4.3's "Fragment
// shader uniforms" list, looked up once after linking.
type effectUniforms struct {
	texture0    int32
	textureSize int32
	screenSize  int32
	screenScale int32
	time        int32
}

func lookupEffectUniforms(program uint32) effectUniforms {
	loc := func(name string) int32 { return gl.GetUniformLocation(program, gl.Str(name+"\x00")) }
	return effectUniforms{
		texture0:    loc("u_texture0"),
		textureSize: loc("u_texture_size"),
		screenSize:  loc("u_screen_size"),
		screenScale: loc("u_screen_scale"),
		time:        loc("u_time"),
	}
}
