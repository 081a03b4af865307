// Package web embeds the authored content and the static assets.
package web

import "embed"

// Content holds content/site.yaml.
//
//go:embed content
var Content embed.FS

// Static holds the public assets served from the site root.
//
//go:embed static
var Static embed.FS
