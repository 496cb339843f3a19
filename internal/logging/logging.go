// Package logging configures the global slog logger for pasteup.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pwntr/tinter"
)

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Setup configures the global slog logger. Call once after flag/viper
// parsing. Format "auto" picks tinted output on a terminal and JSON
// otherwise; an unknown level falls back to info.
func Setup(format, level string) {
	w := os.Stderr

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	var useTint bool
	switch strings.ToLower(format) {
	case "text", "tint", "human":
		useTint = true
	case "json":
		useTint = false
	default:
		useTint = IsTTY(w)
	}

	var h slog.Handler
	if useTint {
		h = tinter.NewHandler(w, &tinter.Options{
			Level:      lvl,
			TimeFormat: "15:04:05.000",
		})
	} else {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: lvl,
		})
	}
	slog.SetDefault(slog.New(h))
}
