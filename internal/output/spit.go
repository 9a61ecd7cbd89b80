// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/netcfg-grep/netcfg-grep/internal/config"
	"github.com/netcfg-grep/netcfg-grep/internal/filters"
	"github.com/netcfg-grep/netcfg-grep/internal/log"
)

// Formats lists the supported --output values.
var Formats = []string{"text", "json", "yaml"}

// Options controls how results are rendered.
type Options struct {
	Format string
	Color  bool
}

// Spit writes results to w in the requested format. Text output separates
// results with a blank line. If w is nil, os.Stdout is used.
func Spit(results []string, opts Options, w io.Writer) error {
	if w == nil {
		w = os.Stdout
	}

	switch opts.Format {
	case "json":
		jsonOutput, err := json.MarshalIndent(nonNil(results), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, err = fmt.Fprintln(w, string(jsonOutput))
		return err
	case "yaml":
		yamlOutput, err := yaml.Marshal(nonNil(results))
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, err = w.Write(yamlOutput)
		return err
	case "", "text":
		if opts.Color {
			missing, extra := markerStyles()
			results = Colorize(results, missing, extra)
		}
		_, err := fmt.Fprintln(w, strings.Join(results, "\n\n"))
		return err
	default:
		return fmt.Errorf("unsupported output format %q, must be one of %v", opts.Format, Formats)
	}
}

// Colorize renders DEBUG marker results with the given styles and returns a
// new slice. Other results are left untouched.
func Colorize(results []string, missing, extra lipgloss.Style) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r
		if marker, isMissing := filters.IsMarker(r); marker {
			if isMissing {
				out[i] = missing.Render(r)
			} else {
				out[i] = extra.Render(r)
			}
		}
	}
	return out
}

// ColorEnabled reports whether colored output should be produced on f.
// Color is only honored on a terminal.
func ColorEnabled(requested bool, f *os.File) bool {
	if !requested || f == nil {
		return false
	}
	ok := term.IsTerminal(int(f.Fd()))
	log.Debugf("color requested: terminal=%v", ok)
	return ok
}

// markerStyles returns the styles for missing and extra DEBUG markers.
func markerStyles() (missing, extra lipgloss.Style) {
	missingColor, extraColor := getColors("colors")
	missing = lipgloss.NewStyle().Foreground(missingColor).Bold(true)
	extra = lipgloss.NewStyle().Foreground(extraColor).Bold(true)
	return
}

// getColors returns configured color values for the DEBUG markers. Defaults
// are selected based on terminal background so that markers stay visible.
func getColors(key string) (missing, extra color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	// Use the explicit color if found in the config and leave it up to the user
	// to choose appropriate colors for their theme.
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	missing = resolveColor(key+".missing", "#c0392b", "#ff5f5f")
	extra = resolveColor(key+".extra", "#b08800", "#f6be00")

	return
}

// nonNil keeps empty result lists rendering as [] rather than null.
func nonNil(results []string) []string {
	if results == nil {
		return []string{}
	}
	return results
}
