package markup

import "fmt"

// PropertyName is the computed attribute attached by PatchLibrary.
const PropertyName = "html"

// PropertyRegistrar accepts computed properties for a type.
// units.PropertySet implements it.
type PropertyRegistrar interface {
	RegisterProperty(name string, fn func(value any) (string, error)) error
}

// PatchLibrary attaches an "html" property to target that renders its value
// with default options. The effect is global for every value served by the
// registrar and has no undo; call it once during start-up.
//
// Targets that are not registrars, or that refuse the registration, yield an
// error matching ErrPatchUnsupported.
func PatchLibrary(target any) error {
	registrar, ok := target.(PropertyRegistrar)
	if !ok {
		return fmt.Errorf("%w: %T is not a property registrar", ErrPatchUnsupported, target)
	}
	if err := registrar.RegisterProperty(PropertyName, htmlProperty); err != nil {
		return fmt.Errorf("%w: %w", ErrPatchUnsupported, err)
	}
	return nil
}

func htmlProperty(value any) (string, error) {
	return defaultFormatter.Format(value)
}
