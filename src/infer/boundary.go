package infer

import (
	"github.com/tafolabi009/TocinLang/src/common"
	"github.com/tafolabi009/TocinLang/src/diag"
)

// tryDiag wraps f in the teacher's own panic-boundary helper
// (common.Try), then narrows its generic error back to a
// *diag.Diagnostic when that's what the panic actually carried. Every
// public Engine entry point panics internally with a *diag.Diagnostic
// and recovers at its own boundary; this is the one place that
// boundary is expressed, rather than a copy of the same defer/recover
// block in every file.
func tryDiag[T any](f func() T) (T, error) {
	result, err, _ := common.Try(f)
	if err == nil {
		return result, nil
	}
	if d, ok := err.(*diag.Diagnostic); ok {
		return result, d
	}
	return result, err
}
