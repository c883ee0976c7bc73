//go:build release

package logx

import "log/slog"

var defaultLevel = slog.LevelWarn
