package process

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/shlex"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/rofiflow/pkg/window"
)

// ProfileConfig is the on-disk shape of a selector profile (profile.yaml or profile.json).
//
//	command: rofi
//	args: ["-dmenu", "-i"]
//	extra_args: -theme 'Arc-Dark' -markup-rows
//	location: top-right
//	width: 640
//	xoffset: -20
type ProfileConfig struct {
	Command    string   `mapstructure:"command"`
	Args       []string `mapstructure:"args"`
	ExtraArgs  string   `mapstructure:"extra_args"`
	Location   string   `mapstructure:"location"`
	Width      int      `mapstructure:"width"`
	Height     int      `mapstructure:"height"`
	Columns    int      `mapstructure:"columns"`
	XOffset    int      `mapstructure:"xoffset"`
	YOffset    int      `mapstructure:"yoffset"`
	Fullscreen bool     `mapstructure:"fullscreen"`
	Message    string   `mapstructure:"message"`
}

// Profile is a validated selector profile. Zero fields leave the window untouched.
type Profile struct {
	Command    string
	Args       []string
	Extra      []string
	Location   *window.Location
	Padding    *window.Padding
	Width      int
	Height     int
	Columns    int
	Fullscreen bool
	Message    string
}

// DefaultProfile spawns "rofi -dmenu" and changes nothing else.
func DefaultProfile() Profile {
	return Profile{
		Command: DefaultCommand,
		Args:    append([]string(nil), DefaultArgs...),
	}
}

// Apply layers the profile onto w. Extra arguments go after the window's own,
// so a profile can override any flag a component sets.
func (p Profile) Apply(w window.Window) window.Window {
	if p.Location != nil {
		w = w.Location(*p.Location)
	}
	if p.Padding != nil {
		w = w.Padding(p.Padding.X, p.Padding.Y)
	}
	if p.Width > 0 || p.Height > 0 || p.Columns > 0 {
		d := w.GetDimensions()
		if p.Width > 0 {
			d.Width = p.Width
		}
		if p.Height > 0 {
			d.Height = p.Height
		}
		if p.Columns > 0 {
			d.Columns = p.Columns
		}
		w = w.Dimensions(d)
	}
	if p.Fullscreen {
		w = w.Fullscreen(true)
	}
	if p.Message != "" && w.GetMessage() == "" {
		w = w.Message(p.Message)
	}
	if len(p.Extra) > 0 {
		w = w.AddArgs(p.Extra...)
	}
	return w
}

// LoadProfile reads a profile file (YAML, or JSON for .json paths).
// A missing file yields DefaultProfile.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultProfile(), nil
		}
		return Profile{}, fmt.Errorf("failed to read profile: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return Profile{}, fmt.Errorf("failed to parse profile json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Profile{}, fmt.Errorf("failed to parse profile yaml: %w", err)
		}
	}

	return ParseProfile(raw)
}

// ParseProfile decodes a generic map (as produced by a YAML or JSON decoder).
// Numbers given as strings are accepted; unknown keys are rejected.
func ParseProfile(raw map[string]any) (Profile, error) {
	var cfg ProfileConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Profile{}, fmt.Errorf("failed to create profile decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Profile{}, fmt.Errorf("invalid profile: %w", err)
	}

	return cfg.Profile()
}

// Profile validates the configuration.
func (c ProfileConfig) Profile() (Profile, error) {
	p := DefaultProfile()
	if c.Command != "" {
		p.Command = c.Command
	}
	// Another binary does not inherit rofi's -dmenu unless asked to.
	if c.Args != nil || p.Command != DefaultCommand {
		p.Args = append([]string(nil), c.Args...)
	}

	if c.ExtraArgs != "" {
		extra, err := shlex.Split(c.ExtraArgs)
		if err != nil {
			return Profile{}, fmt.Errorf("invalid extra_args %q: %w", c.ExtraArgs, err)
		}
		p.Extra = extra
	}

	if c.Location != "" {
		loc, err := window.ParseLocation(c.Location)
		if err != nil {
			return Profile{}, err
		}
		p.Location = &loc
	}

	if c.XOffset != 0 || c.YOffset != 0 {
		p.Padding = &window.Padding{X: c.XOffset, Y: c.YOffset}
	}

	if c.Width < 0 || c.Height < 0 || c.Columns < 0 {
		return Profile{}, fmt.Errorf("width, height and columns must not be negative")
	}
	p.Width = c.Width
	p.Height = c.Height
	p.Columns = c.Columns
	p.Fullscreen = c.Fullscreen
	p.Message = c.Message

	return p, nil
}
