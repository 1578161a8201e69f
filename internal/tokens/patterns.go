package tokens

import "regexp"

// Regex patterns for the narrow CSS grammar this tool understands.
// This is deliberately not a CSS parser: only three constructs matter
// (tokens layer blocks, custom property declarations, var() references).
var (
	// Matches custom property declarations: --name: value
	// The value runs up to the next ';', '{' or '}'.
	declRegex = regexp.MustCompile(`--([\w-]+)\s*:\s*([^;{}]*)`)

	// Matches custom property references: var(--name) or var(--name, fallback).
	// Group 2 captures the fallback clause including its leading comma.
	refRegex = regexp.MustCompile(`var\(\s*--([\w-]+)\s*(,[^)]*)?\)`)

	// Matches values that are exactly one reference and nothing else,
	// i.e. pure aliases of another variable.
	aliasRegex = regexp.MustCompile(`^\s*var\(\s*--[\w-]+\s*(,[^)]*)?\)\s*$`)

	// Matches the opening of a top-level tokens layer block.
	layerOpenRegex = regexp.MustCompile(`@layer\s+tokens\s*\{`)
)
