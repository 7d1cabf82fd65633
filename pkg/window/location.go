package window

import (
	"fmt"
	"strings"
)

// Location anchors the window on screen. The numeric values are the selector's
// -location codes and must not change.
type Location int

const (
	MiddleCentre Location = 0
	TopLeft      Location = 1
	TopCentre    Location = 2
	TopRight     Location = 3
	MiddleRight  Location = 4
	BottomRight  Location = 5
	BottomCentre Location = 6
	BottomLeft   Location = 7
	MiddleLeft   Location = 8
)

var locationNames = map[Location]string{
	MiddleCentre: "middle-centre",
	TopLeft:      "top-left",
	TopCentre:    "top-centre",
	TopRight:     "top-right",
	MiddleRight:  "middle-right",
	BottomRight:  "bottom-right",
	BottomCentre: "bottom-centre",
	BottomLeft:   "bottom-left",
	MiddleLeft:   "middle-left",
}

// String returns the kebab-case name of the location.
func (l Location) String() string {
	if name, ok := locationNames[l]; ok {
		return name
	}
	return fmt.Sprintf("location(%d)", int(l))
}

// Valid reports whether l is one of the nine anchors.
func (l Location) Valid() bool {
	_, ok := locationNames[l]
	return ok
}

// ParseLocation resolves a location name. Both "centre" and "center" spellings are
// accepted, and "center"/"centre" alone mean MiddleCentre.
func ParseLocation(name string) (Location, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	n = strings.ReplaceAll(n, "center", "centre")
	if n == "centre" || n == "" {
		return MiddleCentre, nil
	}
	for loc, locName := range locationNames {
		if locName == n {
			return loc, nil
		}
	}
	return MiddleCentre, fmt.Errorf("unknown location %q", name)
}
