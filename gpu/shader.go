package gpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/pkg/errors"
)

// Program is a linked GL shader program.
type Program uint32

// CompileError is returned when a shader stage fails to compile. It keeps
// the source so the line numbers in the log can be matched up.
type CompileError struct {
	Stage  string
	Log    string
	Source string
}

func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "compile %s shader: %s\nsource:\n", e.Stage, e.Log)
	for i, line := range strings.Split(strings.TrimRight(e.Source, "\n"), "\n") {
		fmt.Fprintf(&b, "%4d  %s\n", i+1, line)
	}
	return b.String()
}

func GetShaderError(thing uint32, ivFunc func(thing, pname uint32, params *int32), logFunc func(thing uint32, bufSize int32, length *int32, infoLog *uint8)) error {
	var bufSize int32
	ivFunc(thing, gl.INFO_LOG_LENGTH, &bufSize)
	if bufSize <= 0 {
		return errors.New("no error message")
	}

	errBuf := make([]byte, bufSize)
	var length int32
	logFunc(thing, bufSize, &length, &errBuf[0])
	return errors.New(strings.TrimRight(string(errBuf[:length]), "\r\n\x00"))
}

func stageName(stage uint32) string {
	switch stage {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	}
	return fmt.Sprintf("0x%x", stage)
}

// CompileShader creates a shader of the given stage from source. On failure
// the shader is deleted and a *CompileError returned.
func CompileShader(stage uint32, source string) (uint32, error) {
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
		err := GetShaderError(shad, gl.GetShaderiv, gl.GetShaderInfoLog)
		return 0, &CompileError{Stage: stageName(stage), Log: err.Error(), Source: source}
	}
	return shad, nil
}

// BuildShader compiles and links a vertex/fragment program.
func BuildShader(vert, frag string) (Program, error) {
	vshad, err := CompileShader(gl.VERTEX_SHADER, vert)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vshad)
	fshad, err := CompileShader(gl.FRAGMENT_SHADER, frag)
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
		return 0, errors.Wrap(GetShaderError(prog, gl.GetProgramiv, gl.GetProgramInfoLog), "link program")
	}
	return Program(prog), nil
}

func (p Program) Use() { gl.UseProgram(uint32(p)) }

// Uniform returns the location of a uniform, or -1 if the program has no
// active uniform of that name.
func (p Program) Uniform(name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

// UniformBlock returns the index of a uniform block, or gl.INVALID_INDEX.
func (p Program) UniformBlock(name string) uint32 {
	return gl.GetUniformBlockIndex(uint32(p), gl.Str(name+"\x00"))
}

func (p Program) Delete() { gl.DeleteProgram(uint32(p)) }
