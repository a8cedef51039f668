// Package template defines the engine-agnostic seam used when a font template
// is richer than a printf pattern. Engines live in sub-packages; gotemplate
// provides the pongo2-backed implementation.
package template
