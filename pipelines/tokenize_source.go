package pipelines

import (
	"context"

	"github.com/reusee/vana/logs"
	"github.com/reusee/vana/vanalang"
)

type TokenizeSource func(ctx context.Context, src *vanalang.Source) *Result

func (Module) TokenizeSource(
	logger logs.Logger,
) TokenizeSource {
	return func(ctx context.Context, src *vanalang.Source) *Result {
		tokens, errs := vanalang.Tokenize(src)
		logger.DebugContext(ctx, "tokenized",
			"source", src.Name,
			"tokens", len(tokens),
			"errors", len(errs),
		)
		return &Result{
			Source: src,
			Tokens: tokens,
			Err:    errs.Err(),
		}
	}
}
