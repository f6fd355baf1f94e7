// Package shader provides OpenGL shader compilation and the built-in base
// and fur shell programs.
package shader

import (
	"embed"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

//go:embed glsl/*.vert glsl/*.frag
var sources embed.FS

// Source returns the vertex and fragment source of a built-in program.
func Source(name string) (vertex, fragment string, err error) {
	v, err := sources.ReadFile("glsl/" + name + ".vert")
	if err != nil {
		return "", "", fmt.Errorf("shader %q: %w", name, err)
	}
	f, err := sources.ReadFile("glsl/" + name + ".frag")
	if err != nil {
		return "", "", fmt.Errorf("shader %q: %w", name, err)
	}
	return string(v), string(f), nil
}

// Program is a linked program with a uniform location cache.
type Program struct {
	ID       uint32
	Name     string
	uniforms map[string]int32
}

// Load compiles a built-in program by name ("base" or "fur").
func Load(name string) (*Program, error) {
	vs, fs, err := Source(name)
	if err != nil {
		return nil, err
	}
	id, err := CompileProgram(vs, fs)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	return &Program{ID: id, Name: name, uniforms: make(map[string]int32)}, nil
}

// Use binds the program.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Uniform returns the cached location of name, or -1 if the program has no
// active uniform by that name.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := GetUniform(p.ID, name)
	p.uniforms[name] = loc
	return loc
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
