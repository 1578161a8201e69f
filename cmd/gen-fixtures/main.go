// Fixture generator for css-tokens.
// Creates a fake bundled output directory full of CSS files that declare and
// reference tokens-layer custom properties, for manual runs and benchmarking.
// Run with: go run ./cmd/gen-fixtures -dir testdata/bundle
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// Target file counts per generated folder.
var targets = map[string]int{
	"small":  5,
	"medium": 50,
	"large":  500,
}

// Word lists for token and selector generation.

var tokenStems = []string{
	"color-primary", "color-secondary", "color-accent", "color-surface",
	"color-border", "color-danger", "spacing-xs", "spacing-sm", "spacing-md",
	"spacing-lg", "radius-sm", "radius-lg", "shadow-card", "font-body",
	"font-heading", "z-overlay", "z-sticky", "duration-fast", "duration-slow",
}

var colorValues = []string{
	"#ff0000", "#00ff88", "#1a73e8", "#f5f5f5", "#0f172a",
	"oklch(0.7 0.1 250)", "rgb(32 33 36 / 0.8)",
	"linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
}

var lengthValues = []string{
	"4px", "8px", "12px", "1rem", "1.5rem", "clamp(1rem, 2vw, 2rem)",
}

var selectors = []string{
	".card", ".button", ".nav", ".sidebar", ".modal", ".toast", ".badge",
	".list-item", ".header", ".footer",
}

var properties = []string{
	"color", "background", "border-color", "padding", "margin", "gap",
	"border-radius", "box-shadow", "font-family", "transition-duration",
}

func main() {
	dir := flag.String("dir", "testdata/bundle", "Directory to generate into")
	seed := flag.Int64("seed", 1, "Random seed (fixed by default for reproducible fixtures)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	for folder, count := range targets {
		if err := generateFolder(filepath.Join(*dir, folder), count, rng); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Generated %d files in %s\n", count, filepath.Join(*dir, folder))
	}
}

func generateFolder(dir string, count int, rng *rand.Rand) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i := 0; i < count; i++ {
		path := filepath.Join(dir, fmt.Sprintf("chunk-%03d.css", i))
		if err := os.WriteFile(path, []byte(generateSheet(rng)), 0644); err != nil {
			return err
		}
	}
	return nil
}

// generateSheet produces one style-sheet with a tokens layer followed by rules
// that reference a mix of declared, aliased and undeclared variables. Roughly
// a third of the declared tokens end up unused, so there is always dead code
// to eliminate.
func generateSheet(rng *rand.Rand) string {
	declared := pick(rng, tokenStems, 6+rng.Intn(8))

	var sheet strings.Builder
	sheet.WriteString("@layer tokens {\n  :root {\n")
	for i, name := range declared {
		value := colorValues[rng.Intn(len(colorValues))]
		if strings.HasPrefix(name, "spacing-") || strings.HasPrefix(name, "radius-") {
			value = lengthValues[rng.Intn(len(lengthValues))]
		}
		if i > 0 && rng.Intn(5) == 0 {
			// Pure alias of an earlier token.
			value = "var(--" + declared[rng.Intn(i)] + ")"
		}
		fmt.Fprintf(&sheet, "    --%s: %s;\n", name, value)
	}
	sheet.WriteString("  }\n}\n\n")

	used := declared[:len(declared)-len(declared)/3]
	for _, sel := range pick(rng, selectors, 3+rng.Intn(5)) {
		fmt.Fprintf(&sheet, "%s {\n", sel)
		for n := 2 + rng.Intn(3); n > 0; n-- {
			prop := properties[rng.Intn(len(properties))]
			name := used[rng.Intn(len(used))]
			if rng.Intn(8) == 0 {
				fmt.Fprintf(&sheet, "  %s: var(--%s, %s);\n",
					prop, name, lengthValues[rng.Intn(len(lengthValues))])
			} else {
				fmt.Fprintf(&sheet, "  %s: var(--%s);\n", prop, name)
			}
		}
		sheet.WriteString("}\n\n")
	}
	return sheet.String()
}

// pick returns up to n distinct entries from list in shuffled order.
func pick(rng *rand.Rand, list []string, n int) []string {
	shuffled := append([]string(nil), list...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
