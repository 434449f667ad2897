package templates

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Placeholder keys, lower case
const (
	PlaceholderName      = "name"
	PlaceholderNamespace = "namespace"
)

// Vars are the values available to a template
type Vars struct {
	Name      string
	Namespace string
}

func (v Vars) lookup(key string) (string, bool) {
	switch strings.ToLower(key) {
	case PlaceholderName:
		return v.Name, true
	case PlaceholderNamespace:
		return v.Namespace, true
	default:
		return "", false
	}
}

var bufferPool bytebufferpool.Pool

// Interpolate replaces {name} and {namespace} markers in a single pass
func Interpolate(text string, vars Vars) string {
	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	for {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(text[open+1:], '}')
		if end < 0 {
			break
		}
		end += open + 1

		if value, ok := vars.lookup(text[open+1 : end]); ok {
			_, _ = buf.WriteString(text[:open])
			_, _ = buf.WriteString(value)
			text = text[end+1:]
			continue
		}

		// Not a placeholder; keep the brace and look for the next one after it
		_, _ = buf.WriteString(text[:open+1])
		text = text[open+1:]
	}
	_, _ = buf.WriteString(text)

	return buf.String()
}
