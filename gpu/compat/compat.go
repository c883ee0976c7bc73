// Package compat holds the GL 2.x helpers used by the first tutorials,
// which run on a legacy context without DSA.
package compat

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/pkg/errors"
)

func infoLog(thing uint32, ivFunc func(uint32, uint32, *int32), logFunc func(uint32, int32, *int32, *uint8)) string {
	var bufSize int32
	ivFunc(thing, gl.INFO_LOG_LENGTH, &bufSize)
	if bufSize <= 0 {
		return "no error message"
	}
	buf := make([]byte, bufSize)
	var length int32
	logFunc(thing, bufSize, &length, &buf[0])
	return strings.TrimRight(string(buf[:length]), "\r\n\x00")
}

func compileShader(stage uint32, source string) (uint32, error) {
	shad := gl.CreateShader(stage)
	csrc, free := gl.Strs(source)
	clen := int32(len(source))
	gl.ShaderSource(shad, 1, csrc, &clen)
	gl.CompileShader(shad)
	free()

	var result int32
	gl.GetShaderiv(shad, gl.COMPILE_STATUS, &result)
	if result == 0 {
		defer gl.DeleteShader(shad)
		return 0, errors.Errorf("compile shader: %s\nsource:\n%s", infoLog(shad, gl.GetShaderiv, gl.GetShaderInfoLog), source)
	}
	return shad, nil
}

// BuildShader compiles and links a GLSL 110 vertex/fragment program.
func BuildShader(vert, frag string) (uint32, error) {
	vshad, err := compileShader(gl.VERTEX_SHADER, vert)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vshad)
	fshad, err := compileShader(gl.FRAGMENT_SHADER, frag)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fshad)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vshad)
	gl.AttachShader(prog, fshad)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vshad)
	gl.DetachShader(prog, fshad)

	var result int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &result)
	if result == 0 {
		defer gl.DeleteProgram(prog)
		return 0, errors.Errorf("link program: %s", infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog))
	}
	return prog, nil
}

// NewArrayBuffer uploads data into a new GL_ARRAY_BUFFER and leaves it
// bound.
func NewArrayBuffer[T any](data []T) uint32 {
	var zero T
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*int(unsafe.Sizeof(zero)), gl.Ptr(data), gl.STATIC_DRAW)
	return vbo
}
