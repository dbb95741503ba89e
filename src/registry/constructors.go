package registry

import "github.com/tafolabi009/TocinLang/src/types"

// MakeArray builds the canonical Array<T> generic term (spec §4.1
// "convenience constructors").
func MakeArray(elem types.Type) types.Type {
	return &types.Generic{Constructor: types.ConstructorArray, Args: []types.Type{elem}}
}

// MakePointer builds the canonical Pointer<T> term (a *types.Pointer,
// not a Generic, so it carries the unique flag).
func MakePointer(elem types.Type, unique bool) types.Type {
	return &types.Pointer{Elem: elem, Unique: unique}
}

// MakeReference builds the canonical Reference<T> term.
func MakeReference(elem types.Type, mutable bool) types.Type {
	return &types.Reference{Elem: elem, Mutable: mutable}
}

// MakeOption builds the canonical Option<T> generic term.
func MakeOption(elem types.Type) types.Type {
	return &types.Generic{Constructor: types.ConstructorOption, Args: []types.Type{elem}}
}

// MakeResult builds the canonical Result<T, E> generic term.
func MakeResult(ok, err types.Type) types.Type {
	return &types.Generic{Constructor: types.ConstructorResult, Args: []types.Type{ok, err}}
}
