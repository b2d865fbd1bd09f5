package pipelines

import (
	"context"
	"time"

	"github.com/reusee/vana/logs"
	"github.com/reusee/vana/vanaconfigs"
	"github.com/reusee/vana/vanalang"
)

type ParseSource func(ctx context.Context, src *vanalang.Source) *Result

func (Module) ParseSource(
	maxDepth vanaconfigs.MaxDepth,
	recoverErrors vanaconfigs.RecoverErrors,
	logger logs.Logger,
	newSpan logs.NewSpan,
) ParseSource {
	return func(ctx context.Context, src *vanalang.Source) *Result {
		ctx, _ = newSpan(ctx, "", "parse "+src.Name)
		t0 := time.Now()

		result := &Result{
			Source: src,
		}
		option := vanalang.WithMaxDepth(int(maxDepth))
		if recoverErrors {
			result.Nodes, result.Err = vanalang.ParseAllSource(src, option)
		} else {
			var node vanalang.Node
			node, result.Err = vanalang.ParseSource(src, option)
			if node != nil {
				result.Nodes = []vanalang.Node{node}
			}
		}

		numNodes := 0
		for _, node := range result.Nodes {
			for range vanalang.Walk(node) {
				numNodes++
			}
		}
		logger.DebugContext(ctx, "parsed",
			"source", src.Name,
			"expressions", len(result.Nodes),
			"nodes", numNodes,
			"errors", len(result.Errors()),
			"duration", time.Since(t0),
		)

		return result
	}
}
