// Package window opens the glfw window every tutorial draws into and runs
// its render loop.
package window

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"github.com/vktec/gltut/config"
)

// TimeStep is how far the animation clock advances per frame.
const TimeStep = 0.01

type Window struct {
	*glfw.Window

	onKey  func(glfw.Key, glfw.Action)
	frames uint64
}

// Open creates a window with a current GL context and then runs loader,
// which must initialise the GL binding the caller uses.
func Open(cfg config.Window, loader func() error) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "init glfw")
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	if cfg.Core {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "create window")
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := loader(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, errors.Wrap(err, "load GL")
	}

	w := &Window{Window: win}
	win.SetKeyCallback(w.key)
	slog.Info("opened window", "title", cfg.Title, "size", [2]int{cfg.Width, cfg.Height},
		"gl", [2]int{cfg.GLMajor, cfg.GLMinor}, "glfw", glfw.GetVersionString())
	return w, nil
}

func (w *Window) key(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if w.onKey != nil {
		w.onKey(key, action)
	}
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}
}

// OnKey registers f for every key event. Escape closes the window whether
// or not f is set.
func (w *Window) OnKey(f func(key glfw.Key, action glfw.Action)) {
	w.onKey = f
}

func (w *Window) OnCursor(f func(x, y float64)) {
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		f(x, y)
	})
}

// Run calls frame until the window is closed, passing a clock that starts
// at zero and advances by TimeStep per frame.
func (w *Window) Run(frame func(t float32)) {
	var t float32
	start := time.Now()
	for !w.ShouldClose() {
		frame(t)
		w.SwapBuffers()
		glfw.PollEvents()
		t += TimeStep
		w.frames++
	}

	elapsed := time.Since(start)
	slog.Info("render loop finished",
		"frames", humanize.Comma(int64(w.frames)),
		"elapsed", elapsed.Round(time.Millisecond),
		"fps", humanize.FormatFloat("#.#", float64(w.frames)/elapsed.Seconds()))
}

func (w *Window) Destroy() {
	w.Window.Destroy()
	glfw.Terminate()
}
