// Package debug carries zerolog hooks for human-facing command output.
package debug

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// TimeHook stamps events with a millisecond-precision timestamp.
type TimeHook struct {
	Format string
}

func (h TimeHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	format := h.Format
	if format == "" {
		format = "2006-01-02T15:04:05.000Z"
	}
	e.Str("time", time.Now().Format(format))
}

// CallerHook stamps events with a pkg:file:line caller reference.
type CallerHook struct {
	WithColor bool
}

func (h CallerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	pc, file, line, ok := runtime.Caller(4)
	if !ok {
		return
	}

	pkg := ""
	if fn := runtime.FuncForPC(pc); fn != nil {
		pkg = packageOfFunc(fn.Name())
	}

	e.Str("caller", formatCaller(pkg, file, line, h.WithColor))
}

// packageOfFunc extracts the import path from a runtime function name
// like "github.com/walteh/semhl/pkg/lsp.(*Server).didOpen".
func packageOfFunc(name string) string {
	lastSlash := strings.LastIndexByte(name, '/')
	if lastSlash < 0 {
		lastSlash = 0
	}
	firstDot := strings.IndexByte(name[lastSlash:], '.')
	if firstDot < 0 {
		return name
	}
	pkg := name[:lastSlash+firstDot]
	if idx := strings.Index(pkg, ".("); idx >= 0 {
		pkg = pkg[:idx]
	}
	return pkg
}

func formatCaller(pkg, path string, line int, colorize bool) string {
	base := path
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		base = path[idx+1:]
	}

	if colorize {
		name := color.New(color.Bold).Sprint(base)
		num := color.New(color.FgHiRed, color.Bold).Sprintf("%d", line)
		sep := color.New(color.Faint).Sprint(":")
		return fmt.Sprintf("%s%s%s%s%s", pkg, sep, name, sep, num)
	}

	return fmt.Sprintf("%s:%s:%d", pkg, base, line)
}
