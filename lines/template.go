package lines

import (
	"fmt"
	"strings"
)

// Params holds the named values substituted into a line's template.
type Params map[string]any

// renderTemplate substitutes {name} placeholders in template with values
// from params. A placeholder may carry a format spec after a colon, passed
// through to fmt: {percent:.2f} formats params["percent"] with %.2f. Doubled
// braces are literals. A template with no params is returned verbatim.
func renderTemplate(template string, params Params) (string, error) {
	if len(params) == 0 {
		return template, nil
	}

	var b strings.Builder
	for i := 0; i < len(template); {
		switch {
		case template[i] == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case template[i] == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case template[i] == '{':
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				// Unterminated placeholder, keep the tail as-is.
				b.WriteString(template[i:])
				i = len(template)
				continue
			}
			name := template[i+1 : i+1+end]
			verb := "%v"
			if colon := strings.IndexByte(name, ':'); colon >= 0 {
				verb = "%" + name[colon+1:]
				name = name[:colon]
			}
			value, ok := params[name]
			if !ok {
				return "", fmt.Errorf("placeholder %q: %w", name, ErrMissingParam)
			}
			fmt.Fprintf(&b, verb, value)
			i += end + 2
		default:
			b.WriteByte(template[i])
			i++
		}
	}
	return b.String(), nil
}
