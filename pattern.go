package pagetable

import (
	"fmt"
	"net/url"
	"strings"
)

type segment struct {
	name     string // literal text, or the parameter name when param is set
	param    bool
	optional bool
}

type pattern struct {
	raw      string
	segments []segment
}

// parsePattern splits a route pattern into its segments.
// Only the last segment may be optional.
func parsePattern(raw string) (pattern, error) {
	p := pattern{raw: raw}
	if !strings.HasPrefix(raw, "/") {
		return p, fmt.Errorf("%w %q: must start with /", ErrInvalidPattern, raw)
	}
	if raw == "/" {
		return p, nil
	}
	if strings.HasSuffix(raw, "/") {
		return p, fmt.Errorf("%w %q: trailing slash", ErrInvalidPattern, raw)
	}
	parts := strings.Split(raw[1:], "/")
	seen := make(map[string]bool, len(parts))
	for i, part := range parts {
		if part == "" {
			return p, fmt.Errorf("%w %q: empty segment", ErrInvalidPattern, raw)
		}
		if !strings.HasPrefix(part, "{") {
			if strings.ContainsAny(part, "{}") {
				return p, fmt.Errorf("%w %q: parameter must span a whole segment", ErrInvalidPattern, raw)
			}
			p.segments = append(p.segments, segment{name: part})
			continue
		}
		if !strings.HasSuffix(part, "}") {
			return p, fmt.Errorf("%w %q: unmatched {", ErrInvalidPattern, raw)
		}
		name := part[1 : len(part)-1]
		seg := segment{param: true}
		if n, ok := strings.CutSuffix(name, "?"); ok {
			if i != len(parts)-1 {
				return p, fmt.Errorf("%w %q: optional parameter %s must be last", ErrInvalidPattern, raw, n)
			}
			name, seg.optional = n, true
		}
		if !validParamName(name) {
			return p, fmt.Errorf("%w %q: bad parameter name %q", ErrInvalidPattern, raw, name)
		}
		if seen[name] {
			return p, fmt.Errorf("%w %q: duplicate parameter %s", ErrInvalidPattern, raw, name)
		}
		seen[name] = true
		seg.name = name
		p.segments = append(p.segments, seg)
	}
	return p, nil
}

// validParamName reports whether s is an ASCII identifier, the form
// http.ServeMux accepts for wildcard names.
func validParamName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func (p pattern) hasOptional() bool {
	return len(p.segments) > 0 && p.segments[len(p.segments)-1].optional
}

// match reports whether path matches the pattern and returns the decoded
// parameters. path must already be stripped of query and fragment.
func (p pattern) match(path string, strict, sensitive bool) (map[string]string, bool) {
	if !strings.HasPrefix(path, "/") {
		return nil, false
	}
	// one trailing slash is dropped, and only when it closes a non-empty segment
	if !strict && len(path) > 1 && path[len(path)-1] == '/' && path[len(path)-2] != '/' {
		path = path[:len(path)-1]
	}
	var parts []string
	if path != "/" {
		parts = strings.Split(path[1:], "/")
	}
	required := len(p.segments)
	if p.hasOptional() {
		required--
	}
	if len(parts) != len(p.segments) && len(parts) != required {
		return nil, false
	}

	var params map[string]string
	for i, part := range parts {
		seg := p.segments[i]
		if !seg.param {
			lit, err := url.PathUnescape(part)
			if err != nil {
				return nil, false
			}
			if (sensitive && lit != seg.name) || (!sensitive && !strings.EqualFold(lit, seg.name)) {
				return nil, false
			}
			continue
		}
		if part == "" {
			return nil, false
		}
		v, err := url.PathUnescape(part)
		if err != nil {
			return nil, false
		}
		if params == nil {
			params = make(map[string]string, len(p.segments))
		}
		params[seg.name] = v
	}
	return params, true
}

// expand returns the concrete router patterns covered by p: the pattern with
// its optional parameter made required, preceded by the pattern without it.
func (p pattern) expand() []string {
	if !p.hasOptional() {
		return []string{p.raw}
	}
	parts := make([]string, len(p.segments))
	for i, seg := range p.segments {
		if seg.param {
			parts[i] = "{" + seg.name + "}"
		} else {
			parts[i] = seg.name
		}
	}
	short := "/" + strings.Join(parts[:len(parts)-1], "/")
	return []string{short, "/" + strings.Join(parts, "/")}
}
