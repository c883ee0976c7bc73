//go:build !debug && !release

package logx

import "log/slog"

var defaultLevel = slog.LevelInfo
