package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/vana/cmds"
)

var developmentSwitch = cmds.Switch("-dev")

func init() {
	cmds.GlobalExecutor.Describe("-dev", "run in development mode")
}

// ModuleForProduction is used by binaries. The -dev switch turns it into
// development mode without a test.
type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	if *developmentSwitch {
		return ModeDevelopment
	}
	return ModeProduction
}
