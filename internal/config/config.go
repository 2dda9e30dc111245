package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode selects when directory names are highlighted
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode parses a color mode string
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode: %s (must be auto, always, or never)", s)
	}
}

// Config holds the options of a single lls run
type Config struct {
	Root          string
	IncludeHidden bool
	Color         ColorMode
	// Sort is the raw --sort value, see walker.ParseSortOrder
	Sort          string
	Verbose       bool
	Quiet         bool
	Progress      bool
}

// New creates a Config with default values
func New() *Config {
	return &Config{
		Root:  ".",
		Color: ColorAuto,
		Sort:  "none",
	}
}

func (c *Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("path must not be empty")
	}
	if c.Verbose && c.Quiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}
	return nil
}

// UseColor reports whether directories should be colored given whether stdout is a terminal
func (c *Config) UseColor(stdoutTTY bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return stdoutTTY
	}
}

// ShowProgress reports whether the scan spinner should be drawn.
// It shares the terminal with the tree, so it is only drawn when the tree is redirected.
func (c *Config) ShowProgress(stdoutTTY, stderrTTY bool) bool {
	return c.Progress && !c.Quiet && stderrTTY && !stdoutTTY
}

// Isatty checks if f is a terminal
func Isatty(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
