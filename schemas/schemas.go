// Package schemas embeds the JSON Schema documents shipped with the repository.
package schemas

import _ "embed"

// Universal is the schema for the raw, versioned site configuration document.
//
//go:embed universal.schema.json
var Universal string

// Site is the schema for the adapted site data structure.
//
//go:embed site.schema.json
var Site string
