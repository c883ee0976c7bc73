// Package gpu wraps the GL 4.5 direct state access calls the tutorials are
// built from.
package gpu

import (
	"log/slog"

	"github.com/go-gl/gl/v4.5-core/gl"
	"github.com/pkg/errors"
)

// Init loads the GL entry points for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "missing GL entry point")
	}
	slog.Info("GL context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return nil
}
