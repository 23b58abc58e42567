// Package diff renders readable struct diffs for test failure messages.
package diff

import (
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/kylelemons/godebug/diff"
)

// DiffExportedOnly pretty-prints both values (exported fields only, no
// color) and returns a line diff from got to want, or "" when they
// render identically.
func DiffExportedOnly[T any](want T, got T) string {
	printer := pp.New()
	printer.SetExportedOnly(true)
	printer.SetColoringEnabled(false)

	d := diff.Diff(printer.Sprint(got), printer.Sprint(want))
	if d == "" {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n\nactual vs expected (-actual, +expected):\n\n")
	sb.WriteString(d)
	return sb.String()
}
