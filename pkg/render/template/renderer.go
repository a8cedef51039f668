package template

// TemplateRenderer renders a font template around unit markup. The markup
// formatter calls RenderString for inline templates and RenderTemplate for
// named ones.
type TemplateRenderer interface {
	RenderTemplate(name string, data map[string]any) (string, error)
	RenderString(content string, data map[string]any) (string, error)
}

// HTML marks a context value as trusted markup. Engines must insert it without
// escaping.
type HTML string
