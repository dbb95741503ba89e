package mangle

import (
	"fmt"
	"strconv"

	"github.com/tafolabi009/TocinLang/src/types"
)

// basicMangle is the Itanium-shaped primitive table (spec §4.4
// "Mangled form"), grounded verbatim on
// original_source/src/type/type_system_enhanced.cpp's
// TypePrinter::toMangledName.
var basicMangle = map[types.BasicKind]string{
	types.KindVoid:    "v",
	types.KindBool:    "b",
	types.KindInt:     "i",
	types.KindInt32:   "i",
	types.KindInt64:   "l",
	types.KindUint32:  "j",
	types.KindUint64:  "m",
	types.KindFloat:   "f",
	types.KindFloat32: "f",
	types.KindFloat64: "d",
	types.KindDouble:  "d",
	types.KindString:  "Ss",
}

// Mangle renders t as a stable, unique, linkable symbol name
// compatible in shape with the Itanium C++ ABI scheme (spec §4.4
// "Mangled form"). The code generator (out of scope here) uses these
// names; this package only produces them.
func Mangle(t types.Type) string {
	switch t := t.(type) {
	case *types.Basic:
		if m, ok := basicMangle[t.Kind]; ok {
			return m
		}
		return lengthPrefixed(string(t.Kind))
	case *types.NullType:
		return "v" // no representation; treated as void for linkage purposes
	case *types.Pointer:
		return "P" + Mangle(t.Elem)
	case *types.Reference:
		return "R" + Mangle(t.Elem)
	case *types.Array:
		if t.Length > 0 {
			return "A" + strconv.Itoa(t.Length) + "_" + Mangle(t.Elem)
		}
		return "PA" + Mangle(t.Elem)
	case *types.Function:
		out := "F" + Mangle(t.Return)
		for _, p := range t.Params {
			out += Mangle(p)
		}
		return out + "E"
	case *types.Generic:
		out := lengthPrefixed(t.Constructor)
		if len(t.Args) > 0 {
			out += "I"
			for _, a := range t.Args {
				out += Mangle(a)
			}
			out += "E"
		}
		return out
	case *types.Class:
		return lengthPrefixed(t.Name)
	case *types.Trait:
		return lengthPrefixed(t.Name)
	case *types.Variable:
		return lengthPrefixed("'" + t.Name)
	default:
		return lengthPrefixed(fmt.Sprintf("%v", t))
	}
}

func lengthPrefixed(name string) string {
	return strconv.Itoa(len(name)) + name
}
