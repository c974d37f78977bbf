package pagetable

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

var pageType = reflect.TypeOf((*Page)(nil)).Elem()

// Parse builds routes from the fields of a struct tagged with route.
// The tag holds the path pattern, an optional name and an optional props flag:
//
//	type routes struct {
//		home   homePage   `route:"/ home"`
//		editor editorPage `route:"/editor/{id?} editor props"`
//	}
//
// Fields without a route tag are skipped. When the name is omitted it is the
// field name in kebab case. Each tagged field is instantiated as a zero value
// of its type, which must implement Page either as a value or a pointer.
func Parse(v any) ([]Route, error) {
	st := reflect.TypeOf(v)
	if st == nil {
		return nil, fmt.Errorf("parse: nil value")
	}
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("parse: %s is not a struct", st)
	}

	var routes []Route
	for i := range st.NumField() {
		field := st.Field(i)
		tag, ok := field.Tag.Lookup("route")
		if !ok {
			continue
		}
		path, name, props, err := parseTag(tag)
		if err != nil {
			return nil, fmt.Errorf("parse field %s.%s: %w", st.Name(), field.Name, err)
		}
		if name == "" {
			name = kebabCase(field.Name)
		}
		page, err := newPage(field.Type)
		if err != nil {
			return nil, fmt.Errorf("parse field %s.%s: %w", st.Name(), field.Name, err)
		}
		routes = append(routes, Route{Path: path, Name: name, Page: page, Props: props})
	}
	return routes, nil
}

func newPage(typ reflect.Type) (Page, error) {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	pv := reflect.New(typ)
	if pv.Type().Implements(pageType) {
		return pv.Interface().(Page), nil
	}
	return nil, fmt.Errorf("%s does not implement Page", typ)
}

func parseTag(tag string) (path, name string, props bool, err error) {
	parts := strings.Fields(tag)
	switch len(parts) {
	case 0:
		return "", "", false, fmt.Errorf("empty route tag")
	case 3:
		if parts[2] != "props" {
			return "", "", false, fmt.Errorf("unknown route flag %q", parts[2])
		}
		props = true
		fallthrough
	case 2:
		name = parts[1]
		fallthrough
	case 1:
		path = parts[0]
	default:
		return "", "", false, fmt.Errorf("too many fields in route tag %q", tag)
	}
	return path, name, props, nil
}

// kebabCase turns aiAssistant into ai-assistant.
func kebabCase(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				sb.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
