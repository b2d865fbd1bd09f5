package vanaconfigs

import (
	"github.com/reusee/vana/cmds"
	"github.com/reusee/vana/configs"
)

// RecoverErrors selects the recovering parser, which reads ";" separated
// expressions and reports every syntax error instead of the first.
type RecoverErrors bool

var recoverFlag = cmds.Switch("-recover")

func init() {
	cmds.GlobalExecutor.Describe("-recover", "parse ';' separated expressions and report every error")
}

func (Module) RecoverErrors(
	loader configs.Loader,
) RecoverErrors {
	if *recoverFlag {
		return true
	}
	return RecoverErrors(configs.First[bool](loader, "recover"))
}
