// Package interp implements the {field} interpolation sublanguage shared by
// the map, filter_map, and foreach builtins (spec.md §4.4).
package interp

import (
	"regexp"
	"strings"

	"vsh/cmd/vsh/value"
)

// placeholderRe matches a single {name} or {a.b.c} placeholder.
var placeholderRe = regexp.MustCompile(`\{([\w]+(?:\.[\w]+)*)\}`)

// rawFormRe matches a template that IS exactly one placeholder with no
// surrounding characters — the only form that preserves the field's raw
// JSON type.
var rawFormRe = regexp.MustCompile(`^\{[\w]+(?:\.[\w]+)*\}$`)

// Eval resolves template against obj. When template is exactly a single
// placeholder ("{field}"), the field's raw value is returned (a missing
// field yields nil); otherwise every placeholder is stringified and
// substituted into the surrounding text (a missing field contributes "").
func Eval(template string, obj value.Object) value.Value {
	if rawFormRe.MatchString(template) {
		name := template[1 : len(template)-1]
		v, _ := resolveField(obj, name)
		return v
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		v, ok := resolveField(obj, name)
		if !ok {
			return ""
		}
		return value.Stringify(v)
	})
}

// Substitute replaces every placeholder in template with stringify(value),
// regardless of raw-form: used by `foreach`, which always needs a textual
// pipeline line rather than a possibly-typed Value. A missing field
// resolves to nil, which stringify decides how to render (foreach passes a
// shell-quoting stringify so substituted values round-trip through the
// tokenizer).
func Substitute(template string, obj value.Object, stringify func(value.Value, bool) string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		v, ok := resolveField(obj, name)
		return stringify(v, ok)
	})
}

// IsRawForm reports whether template is exactly a single placeholder with
// no surrounding characters — the form whose resolution preserves the
// field's raw JSON type (and whose absence `map` omits rather than nulls).
func IsRawForm(template string) bool {
	return rawFormRe.MatchString(template)
}

// ResolveField resolves a possibly dotted field name against obj, exported
// for callers that need to distinguish "field absent" from "field present
// with a null value" (Eval collapses both to a nil Value).
func ResolveField(obj value.Object, name string) (value.Value, bool) {
	return resolveField(obj, name)
}

// Fields returns the set of distinct placeholder names referenced by
// template, in first-occurrence order.
func Fields(template string) []string {
	matches := placeholderRe.FindAllStringSubmatch(template, -1)
	seen := make(map[string]bool, len(matches))
	var names []string
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// resolveField resolves a possibly dotted field name against obj, walking
// into nested Objects for each dot segment.
func resolveField(obj value.Object, name string) (value.Value, bool) {
	parts := strings.Split(name, ".")
	var cur value.Value = obj
	for _, part := range parts {
		o, ok := cur.(value.Object)
		if !ok {
			return nil, false
		}
		v, ok := o.Get(part)
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// Mapping is one key=template pair parsed from a map/filter_map argument.
type Mapping struct {
	Key      string
	Template string
}

// ParseMappings implements _parse_mappings: each arg of the form
// "key=template" splits on the first "="; a bare "name" is equivalent to
// "name={name}".
func ParseMappings(args []string) []Mapping {
	mappings := make([]Mapping, 0, len(args))
	for _, arg := range args {
		if i := strings.Index(arg, "="); i >= 0 {
			mappings = append(mappings, Mapping{Key: arg[:i], Template: arg[i+1:]})
		} else {
			mappings = append(mappings, Mapping{Key: arg, Template: "{" + arg + "}"})
		}
	}
	return mappings
}
