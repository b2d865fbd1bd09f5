package vanaconfigs

import (
	"github.com/reusee/vana/cmds"
	"github.com/reusee/vana/configs"
	"github.com/reusee/vana/vanalang"
	"github.com/reusee/vana/vars"
)

// MaxDepth bounds expression nesting in the parser.
type MaxDepth int

var maxDepthFlag = cmds.Var[int]("-max-depth")

func init() {
	cmds.GlobalExecutor.Describe("-max-depth", "maximum expression nesting depth")
}

func (Module) MaxDepth(
	loader configs.Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		*maxDepthFlag,
		configs.First[int](loader, "max_depth"),
		vanalang.DefaultMaxDepth,
	))
}
