// Package config loads formatter settings from JSON or YAML. A file selects a
// style preset, overrides font, glyph and wrapping, binds a theme token or a
// pongo2 template, declares extra styles, and registers custom units.
// Default returns the embedded defaults.yaml.
package config
