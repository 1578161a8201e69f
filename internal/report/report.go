// Package report prints human-readable pass results to a terminal, with ANSI
// colors when stdout supports them and raw plus gzipped size deltas in
// verbose mode.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/term"

	"csstokens/internal/tokens"
)

const (
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// Reporter formats pass results for humans.
type Reporter struct {
	out     io.Writer
	colored bool
	verbose bool
}

// New returns a Reporter writing to out. Colors are enabled only when out is a
// terminal.
func New(out io.Writer, verbose bool) *Reporter {
	colored := false
	if f, ok := out.(*os.File); ok {
		colored = term.IsTerminal(int(f.Fd()))
	}
	return &Reporter{out: out, colored: colored, verbose: verbose}
}

// AssetChanged reports one rewritten asset. In verbose mode it includes the
// raw and gzipped byte counts before and after.
func (r *Reporter) AssetChanged(id, before, after string) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, "  %s: %d → %d bytes (gzip %d → %d)\n",
		id, len(before), len(after), gzippedSize(before), gzippedSize(after))
}

// Summary prints the one-line pass summary.
func (r *Reporter) Summary(filesChanged int, stats tokens.Stats) {
	fmt.Fprintf(r.out, "%s✅ css-tokens: %s — %d %s changed%s\n",
		r.color(colorGreen), stats, filesChanged, pluralize(filesChanged, "file", "files"),
		r.color(colorReset))
}

// Unchanged prints the no-op summary.
func (r *Reporter) Unchanged() {
	fmt.Fprintf(r.out, "%s✅ css-tokens: nothing to do%s\n",
		r.color(colorGreen), r.color(colorReset))
}

// CheckFailed prints the check-mode failure line listing the assets that would
// change.
func (r *Reporter) CheckFailed(ids []string) {
	fmt.Fprintf(r.out, "%s❌ css-tokens: %d %s would change:%s\n",
		r.color(colorYellow), len(ids), pluralize(len(ids), "file", "files"),
		r.color(colorReset))
	for _, id := range ids {
		fmt.Fprintf(r.out, "  %s\n", id)
	}
}

func (r *Reporter) color(code string) string {
	if !r.colored {
		return ""
	}
	return code
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// gzippedSize returns the gzip-compressed length of s, the size that actually
// matters for shipped CSS. Compression of an in-memory string cannot fail.
func gzippedSize(s string) int {
	var c countingWriter
	zw := gzip.NewWriter(&c)
	_, _ = zw.Write([]byte(s))
	_ = zw.Close()
	return c.n
}

type countingWriter struct{ n int }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}
