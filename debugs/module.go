package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/vana/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
