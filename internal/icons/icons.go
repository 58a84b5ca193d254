// Package icons maps the icon names used in site content onto a closed set of icon variants.
package icons

import (
	"errors"
	"fmt"
)

// Icon identifies one renderable icon.
type Icon string

const (
	Heart       Icon = "heart"
	Sparkles    Icon = "sparkles"
	Shield      Icon = "shield"
	Calendar    Icon = "calendar"
	AlertCircle Icon = "alert-circle"
	Info        Icon = "info"
)

// Fallback is rendered for any name outside the table.
const Fallback = Info

// ErrUnknownIcon is returned when a content icon name has no mapping.
var ErrUnknownIcon = errors.New("unknown icon")

// names is the closed content-name table. Content names are matched exactly.
var names = map[string]Icon{
	"Heart":    Heart,
	"Sparkles": Sparkles,
	"Shield":   Shield,
	"Calendar": Calendar,
	"Avisos":   AlertCircle,
}

// All lists every icon variant, fallback included.
var All = []Icon{Heart, Sparkles, Shield, Calendar, AlertCircle, Info}

// Lookup maps a content icon name, reporting ErrUnknownIcon for names outside the table.
func Lookup(name string) (Icon, error) {
	icon, ok := names[name]
	if !ok {
		return Fallback, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
	}
	return icon, nil
}

// Resolve maps a content icon name, returning Fallback for unknown names.
func Resolve(name string) Icon {
	icon, _ := Lookup(name)
	return icon
}

// Known reports whether name maps to a specific icon.
func Known(name string) bool {
	_, ok := names[name]
	return ok
}

// Class returns the CSS class used to draw the icon.
func (i Icon) Class() string {
	return "icon icon-" + string(i)
}
