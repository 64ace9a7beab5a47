package template

import "strings"

// Resolver maps the body of a [token] placeholder to its value.
// Returning false leaves the placeholder in place.
type Resolver func(token string) (string, bool)

// RenderName replaces [token] placeholders in a file name template.
// Unknown tokens and unclosed brackets are kept verbatim.
func RenderName(input string, resolve Resolver) string {
	if input == "" || resolve == nil {
		return input
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.IndexByte(rest, '[')
		if start == -1 {
			out.WriteString(rest)
			return out.String()
		}

		out.WriteString(rest[:start])
		rest = rest[start:]

		end := strings.IndexByte(rest, ']')
		if end == -1 {
			out.WriteString(rest)
			return out.String()
		}

		// "[a[b]" : restart from the innermost bracket
		if inner := strings.LastIndexByte(rest[:end], '['); inner > 0 {
			out.WriteString(rest[:inner])
			rest = rest[inner:]
			end -= inner
		}

		token := rest[1:end]
		if value, ok := resolve(token); ok {
			out.WriteString(value)
		} else {
			out.WriteString(rest[:end+1])
		}
		rest = rest[end+1:]
	}
}

// Tokens lists the placeholder bodies found in input, in order.
func Tokens(input string) []string {
	var tokens []string
	RenderName(input, func(token string) (string, bool) {
		tokens = append(tokens, token)
		return "", false
	})
	return tokens
}
