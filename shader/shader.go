// Package shader builds an OpenGL shader program from a vertex and a
// fragment stage source and exposes uniform lookup on the result.
package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Program is a linked two-stage shader program.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// NewProgram compiles both stages from source, links them and returns
// the ready to activate program. The GL info log is surfaced in the
// error on compile or link failure.
func NewProgram(vertexSource, fragmentSource string) (*Program, error) {
	vertex, err := compile(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex stage: %s", err)
	}
	defer gl.DeleteShader(vertex)

	fragment, err := compile(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment stage: %s", err)
	}
	defer gl.DeleteShader(fragment)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertex)
	gl.AttachShader(handle, fragment)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteProgram(handle)
		return nil, fmt.Errorf("program link failed: %s", infoLog(handle, gl.GetProgramiv, gl.GetProgramInfoLog))
	}

	return &Program{
		handle:   handle,
		uniforms: make(map[string]int32),
	}, nil
}

// Use activates the program for subsequent draw calls.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// Handle returns the underlying program object name.
func (p *Program) Handle() uint32 {
	return p.handle
}

// UniformLocation looks up a uniform by name, caching the result.
// Returns -1 when the program has no active uniform with that name,
// same as the underlying API.
func (p *Program) UniformLocation(name string) int32 {
	if location, ok := p.uniforms[name]; ok {
		return location
	}
	location := gl.GetUniformLocation(p.handle, gl.Str(safeString(name)))
	p.uniforms[name] = location
	return location
}

// Release deletes the program object.
func (p *Program) Release() {
	if p == nil || p.handle == 0 {
		return
	}
	gl.DeleteProgram(p.handle)
	p.handle = 0
}

func compile(source string, shaderType uint32) (uint32, error) {
	handle := gl.CreateShader(shaderType)
	csources, free := gl.Strs(safeString(source))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		defer gl.DeleteShader(handle)
		return 0, fmt.Errorf("compile failed: %s", infoLog(handle, gl.GetShaderiv, gl.GetShaderInfoLog))
	}
	return handle, nil
}

func infoLog(handle uint32, iv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var length int32
	iv(handle, gl.INFO_LOG_LENGTH, &length)
	if length == 0 {
		return "no info log"
	}
	log := strings.Repeat("\x00", int(length+1))
	getLog(handle, length, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

// safeString null-terminates s for handoff to the GL bindings.
func safeString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return fmt.Sprintf("%s\x00", s)
}
