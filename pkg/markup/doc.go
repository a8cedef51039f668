// Package markup renders unit descriptors as HTML fragments.
//
// A Formatter asks a CanonicalRenderer (units.FormatUnits by default) for the
// canonical text of a value, then rewrites it: `**<n>` exponents become
// `<sup>n</sup>`, every remaining `*` becomes the multiplication glyph
// (`&sdot;` by default), the result is optionally wrapped in parentheses
// unless it already denotes a compound unit, and finally the font template is
// applied:
//
//	html, err := markup.FormatUnitsHTML(units.MustParse("kg*m**2/s**2"), markup.DefaultFont, markup.DefaultMultiplication, false)
//	// kg&sdot;m<sup>2</sup>/s<sup>2</sup>
//
// HTMLUnits wraps a value and computes its markup on demand. PatchLibrary
// attaches the same computation as an "html" property on a PropertyRegistrar
// such as units.Dimensionalities.
package markup
