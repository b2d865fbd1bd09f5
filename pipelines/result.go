package pipelines

import (
	"errors"

	"github.com/reusee/vana/diagnostics"
	"github.com/reusee/vana/vanalang"
)

// Result holds what one source produced. Tokens is set by TokenizeSource,
// Nodes by ParseSource. Err is nil or a vanalang.Errors.
type Result struct {
	Source *vanalang.Source
	Tokens []vanalang.Spanned
	Nodes  []vanalang.Node
	Err    error
}

func (r *Result) Errors() vanalang.Errors {
	var errs vanalang.Errors
	if errors.As(r.Err, &errs) {
		return errs
	}
	var posErr *vanalang.PosError
	if errors.As(r.Err, &posErr) {
		return vanalang.Errors{posErr}
	}
	return nil
}

func (r *Result) Diagnostics() []diagnostics.Diagnostic {
	return diagnostics.FromError(r.Err)
}
