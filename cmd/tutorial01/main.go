// Command tutorial01 opens a window and clears it to black every frame.
package main

import (
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/vktec/gltut/config"
	"github.com/vktec/gltut/logx"
	"github.com/vktec/gltut/window"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := config.Legacy("Tutorial01")
	config.ParseArgs(&cfg)
	logx.Setup(cfg.Window.Debug)

	win, err := window.Open(cfg.Window, gl.Init)
	if err != nil {
		logx.Fatal("tutorial01", err)
	}
	defer win.Destroy()

	gl.ClearColor(0, 0, 0, 0)
	win.Run(func(t float32) {
		gl.Clear(gl.COLOR_BUFFER_BIT)
	})
}
