package gpu

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.5-core/gl"
)

// EnableDebugOutput routes driver messages to DebugMsg. It needs a debug
// context, or a driver that reports without one.
func EnableDebugOutput() {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(DebugMsg, nil)
}

func DebugMsg(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
	var sourceStr, typeStr, severityStr string

	switch source {
	case gl.DEBUG_SOURCE_API:
		sourceStr = "API"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		sourceStr = "Window System"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		sourceStr = "Shader Compiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		sourceStr = "Third Party"
	case gl.DEBUG_SOURCE_APPLICATION:
		sourceStr = "Application"
	default:
		sourceStr = "Other"
	}

	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		typeStr = "Error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		typeStr = "Deprecated Behaviour"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		typeStr = "Undefined Behaviour"
	case gl.DEBUG_TYPE_PORTABILITY:
		typeStr = "Portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		typeStr = "Performance"
	case gl.DEBUG_TYPE_MARKER:
		typeStr = "Marker"
	default:
		typeStr = "Other"
	}

	level := slog.LevelDebug
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		severityStr = "High"
		level = slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM:
		severityStr = "Medium"
		level = slog.LevelWarn
	case gl.DEBUG_SEVERITY_LOW:
		severityStr = "Low"
		level = slog.LevelInfo
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		severityStr = "Notification"
	}
	if gltype == gl.DEBUG_TYPE_ERROR {
		level = slog.LevelError
	}

	slog.Log(context.Background(), level, message, "id", id, "source", sourceStr, "type", typeStr, "severity", severityStr)
}
