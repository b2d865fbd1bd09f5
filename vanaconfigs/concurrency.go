package vanaconfigs

import (
	"runtime"

	"github.com/reusee/vana/cmds"
	"github.com/reusee/vana/configs"
	"github.com/reusee/vana/vars"
)

// Concurrency is the number of files parsed at the same time.
type Concurrency int

var concurrencyFlag = cmds.Var[int]("-concurrency")

func init() {
	cmds.GlobalExecutor.Describe("-concurrency", "number of files parsed in parallel")
}

func (Module) Concurrency(
	loader configs.Loader,
) Concurrency {
	return Concurrency(vars.FirstNonZero(
		*concurrencyFlag,
		configs.First[int](loader, "concurrency"),
		runtime.GOMAXPROCS(0),
	))
}
