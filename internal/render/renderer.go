// Package render draws a single solid triangle with a GLES2 program. It is
// the one package that touches the GL API; everything above it works with
// opaque program handles.
package render

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/bnema/nya/internal/app"
	"github.com/bnema/nya/internal/logging"
)

var triangle = []float32{
	0, 1, 0,
	-1, -1, 0,
	1, -1, 0,
}

// GLES implements app.Renderer on a current GLES2 context.
type GLES struct {
	initialized bool
}

func New() *GLES {
	return &GLES{}
}

// CompileAndLink compiles the vertex and fragment sources and links them
// into a program. Compile and link failures are distinct errors carrying
// the driver's info log. Requires a current context.
func (g *GLES) CompileAndLink(vert, frag []byte) (app.Program, error) {
	if !g.initialized {
		if err := gl.Init(); err != nil {
			return 0, fmt.Errorf("load GLES function pointers: %w", err)
		}
		g.initialized = true
		log := logging.Component("render")
		log.Debug().Msg("GLES function pointers loaded")
	}

	vs, err := compileShader(gl.VERTEX_SHADER, string(vert))
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := compileShader(gl.FRAGMENT_SHADER, string(frag))
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(program)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", infoLog)
	}
	return app.Program(program), nil
}

// Draw renders one frame at the given size.
func (g *GLES) Draw(p app.Program, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(1, 1, 1, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(uint32(p))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, gl.Ptr(triangle))
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.DisableVertexAttribArray(0)
}

// Release deletes the program.
func (g *GLES) Release(p app.Program) {
	gl.DeleteProgram(uint32(p))
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}

func programInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}
