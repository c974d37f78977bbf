package pagetable

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/jackielii/ctxkey"
)

var (
	tableCtx = ctxkey.New[*Table]("pagetable.table", nil)
	matchCtx = ctxkey.New[*Match]("pagetable.match", nil)
)

// MatchFromContext returns the match of the route being served.
func MatchFromContext(ctx context.Context) (Match, bool) {
	m := matchCtx.Value(ctx)
	if m == nil {
		return Match{}, false
	}
	return *m, true
}

// URLFor returns the path of the named route using the Table stored in ctx by
// a Handler. See [Table.URLFor] for the accepted args.
func URLFor(ctx context.Context, name string, args ...any) (string, error) {
	t := tableCtx.Value(ctx)
	if t == nil {
		return "", errors.New("urlfor: route table not found in context")
	}
	return t.URLFor(name, args...)
}

// URLFor returns the path of the named route with its parameters filled in.
//
// args are either positional values, key/value pairs, or a single
// map[string]any:
//
//	t.URLFor("editor", "42")
//	t.URLFor("editor", "id", 42)
//	t.URLFor("editor", map[string]any{"id": 42})
//
// An optional parameter may be omitted, which drops its segment.
func (t *Table) URLFor(name string, args ...any) (string, error) {
	p, ok := t.pattern(name)
	if !ok {
		return "", fmt.Errorf("urlfor: %w %q", ErrUnknownRoute, name)
	}
	values, err := bindArgs(p, args)
	if err != nil {
		return "", fmt.Errorf("urlfor %s: %w", name, err)
	}

	var sb strings.Builder
	for _, seg := range p.segments {
		if !seg.param {
			sb.WriteString("/" + seg.name)
			continue
		}
		v, ok := values[seg.name]
		if !ok || v == "" {
			if seg.optional {
				break
			}
			return "", fmt.Errorf("urlfor %s: missing parameter %s", name, seg.name)
		}
		sb.WriteString("/" + url.PathEscape(v))
	}
	if sb.Len() == 0 {
		return "/", nil
	}
	return sb.String(), nil
}

func bindArgs(p pattern, args []any) (map[string]string, error) {
	var names []string
	for _, seg := range p.segments {
		if seg.param {
			names = append(names, seg.name)
		}
	}
	values := make(map[string]string, len(names))
	if len(args) == 0 {
		return values, nil
	}

	if m, ok := args[0].(map[string]any); ok && len(args) == 1 {
		for k, v := range m {
			if !slices.Contains(names, k) {
				return nil, fmt.Errorf("unknown parameter %s", k)
			}
			values[k] = fmt.Sprint(v)
		}
		return values, nil
	}

	if isPairs(names, args) {
		for i := 0; i < len(args); i += 2 {
			key := args[i].(string)
			if !slices.Contains(names, key) {
				return nil, fmt.Errorf("unknown parameter %s", key)
			}
			values[key] = fmt.Sprint(args[i+1])
		}
		return values, nil
	}

	if len(args) > len(names) {
		return nil, fmt.Errorf("too many arguments: %v", args)
	}
	for i, arg := range args {
		values[names[i]] = fmt.Sprint(arg)
	}
	return values, nil
}

// isPairs reports whether args look like key/value pairs: even length, every
// key a string and at least one key naming a parameter.
func isPairs(names []string, args []any) bool {
	if len(args)%2 != 0 {
		return false
	}
	matchKey := false
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			return false
		}
		if slices.Contains(names, key) {
			matchKey = true
		}
	}
	return matchKey
}
