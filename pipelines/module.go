package pipelines

import (
	"github.com/reusee/dscope"
	"github.com/reusee/vana/logs"
	"github.com/reusee/vana/vanaconfigs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs vanaconfigs.Module
}
