// Package cli implements the cobra commands of the unithtml binary: format,
// prompt, units and styles. Commands share an App that loads configuration,
// the unit registry and the style registry before any subcommand runs.
package cli
