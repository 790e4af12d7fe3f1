// SPDX-License-Identifier: MIT

package cli

import (
	"io"
	"log/slog"
)

// NewLogger builds a structured logger writing to w in the given format.
func NewLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
