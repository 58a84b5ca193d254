package theme

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Token names, in publication order
const (
	TokenPrimary                  = "primary"
	TokenPrimaryForeground        = "primary-foreground"
	TokenSecondary                = "secondary"
	TokenSecondaryForeground      = "secondary-foreground"
	TokenBackground               = "background"
	TokenForeground               = "foreground"
	TokenCard                     = "card"
	TokenCardForeground           = "card-foreground"
	TokenPopover                  = "popover"
	TokenPopoverForeground        = "popover-foreground"
	TokenAccent                   = "accent"
	TokenAccentForeground         = "accent-foreground"
	TokenMuted                    = "muted"
	TokenMutedForeground          = "muted-foreground"
	TokenBorder                   = "border"
	TokenInput                    = "input"
	TokenRing                     = "ring"
	TokenSidebarBackground        = "sidebar-background"
	TokenSidebarForeground        = "sidebar-foreground"
	TokenSidebarPrimary           = "sidebar-primary"
	TokenSidebarPrimaryForeground = "sidebar-primary-foreground"
	TokenSidebarAccent            = "sidebar-accent"
	TokenSidebarAccentForeground  = "sidebar-accent-foreground"
	TokenSidebarBorder            = "sidebar-border"
	TokenSidebarRing              = "sidebar-ring"
	TokenRoseGold                 = "rose-gold"
	TokenRoseDelicate             = "rose-delicate"
	TokenChampagneSoft            = "champagne-soft"
	TokenBeigeCalm                = "beige-calm"
	TokenGlassForeground          = "glass-foreground"
	TokenGlassMutedForeground     = "glass-muted-foreground"
	TokenGlassPrimary             = "glass-primary"
)

// TokenNames lists every token a palette carries
var TokenNames = []string{
	TokenPrimary, TokenPrimaryForeground,
	TokenSecondary, TokenSecondaryForeground,
	TokenBackground, TokenForeground,
	TokenCard, TokenCardForeground,
	TokenPopover, TokenPopoverForeground,
	TokenAccent, TokenAccentForeground,
	TokenMuted, TokenMutedForeground,
	TokenBorder, TokenInput, TokenRing,
	TokenSidebarBackground, TokenSidebarForeground,
	TokenSidebarPrimary, TokenSidebarPrimaryForeground,
	TokenSidebarAccent, TokenSidebarAccentForeground,
	TokenSidebarBorder, TokenSidebarRing,
	TokenRoseGold, TokenRoseDelicate, TokenChampagneSoft, TokenBeigeCalm,
	TokenGlassForeground, TokenGlassMutedForeground, TokenGlassPrimary,
}

// Token is one named palette entry
type Token struct {
	Name  string `json:"name"`
	Value HSL    `json:"value"`
}

// Tokens is an immutable palette: every token plus the dark-mode flag.
type Tokens struct {
	entries  []Token
	index    map[string]int
	darkMode bool
}

func newTokens(entries []Token, darkMode bool) *Tokens {
	t := &Tokens{
		entries:  entries,
		index:    make(map[string]int, len(entries)),
		darkMode: darkMode,
	}
	for i, e := range entries {
		t.index[e.Name] = i
	}
	return t
}

// Get returns the named token's value
func (t *Tokens) Get(name string) (HSL, bool) {
	i, ok := t.index[name]
	if !ok {
		return HSL{}, false
	}
	return t.entries[i].Value, true
}

// Value returns the named token formatted as "H S% L%", or "" if absent
func (t *Tokens) Value(name string) string {
	v, ok := t.Get(name)
	if !ok {
		return ""
	}
	return v.String()
}

// DarkMode reports whether the dark presentation flag is set
func (t *Tokens) DarkMode() bool {
	return t.darkMode
}

// Len returns the number of tokens
func (t *Tokens) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the tokens in publication order
func (t *Tokens) Entries() []Token {
	out := make([]Token, len(t.entries))
	copy(out, t.entries)
	return out
}

// Map returns the palette as custom property values keyed by token name
func (t *Tokens) Map() map[string]string {
	m := make(map[string]string, len(t.entries))
	for _, e := range t.entries {
		m[e.Name] = e.Value.String()
	}
	return m
}

// Properties returns the palette keyed by CSS custom property name (--name)
func (t *Tokens) Properties() map[string]string {
	m := make(map[string]string, len(t.entries))
	for _, e := range t.entries {
		m["--"+e.Name] = e.Value.String()
	}
	return m
}

// CSS renders the palette as a rule block for selector
func (t *Tokens) CSS(selector string) string {
	var sb strings.Builder
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, e := range t.entries {
		sb.WriteString(fmt.Sprintf("  --%s: %s;\n", e.Name, e.Value))
	}
	sb.WriteString("}\n")
	return sb.String()
}

// Equal reports whether both palettes carry the same tokens and flag
func (t *Tokens) Equal(other *Tokens) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.darkMode != other.darkMode || len(t.entries) != len(other.entries) {
		return false
	}
	for _, e := range t.entries {
		v, ok := other.Get(e.Name)
		if !ok || v != e.Value {
			return false
		}
	}
	return true
}

type tokensJSON struct {
	DarkMode bool              `json:"darkMode"`
	Tokens   map[string]string `json:"tokens"`
}

// MarshalJSON encodes the palette as {"darkMode": bool, "tokens": {"name": "H S% L%"}}
func (t *Tokens) MarshalJSON() ([]byte, error) {
	return json.Marshal(tokensJSON{DarkMode: t.darkMode, Tokens: t.Map()})
}

// UnmarshalJSON decodes a palette written by MarshalJSON. Unknown token names are dropped.
func (t *Tokens) UnmarshalJSON(data []byte) error {
	var raw tokensJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := tokensFromProperties(raw.Tokens, "", raw.DarkMode)
	if err != nil {
		return err
	}
	*t = *parsed
	return nil
}

// tokensFromProperties rebuilds a palette from name -> value pairs, stripping prefix from
// each name. Only known token names are kept.
func tokensFromProperties(props map[string]string, prefix string, darkMode bool) (*Tokens, error) {
	entries := make([]Token, 0, len(TokenNames))
	for _, name := range TokenNames {
		value, ok := props[prefix+name]
		if !ok {
			continue
		}
		hsl, err := ParseHSL(value)
		if err != nil {
			return nil, fmt.Errorf("token %s: %w", name, err)
		}
		entries = append(entries, Token{Name: name, Value: hsl})
	}
	return newTokens(entries, darkMode), nil
}
