package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the rofiflow banner and version.
func PrintBanner(w io.Writer, p termenv.Profile, version string) {
	lines := []struct {
		text  string
		color string
	}{
		{"            __ _    __ _", "#818cf8"},
		{"  _ __ ___ / _(_)  / _| | _____      __", "#a78bfa"},
		{" | '__/ _ \\ |_| | | |_| |/ _ \\ \\ /\\ / /", "#c084fc"},
		{" | | | (_) |  _| | |  _| | (_) \\ V  V /", "#e879f9"},
		{" |_|  \\___/|_| |_| |_| |_|\\___/ \\_/\\_/", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.String("  version "+version).Faint())
	fmt.Fprintln(w)
}
