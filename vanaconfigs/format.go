package vanaconfigs

import (
	"fmt"

	"github.com/reusee/vana/cmds"
	"github.com/reusee/vana/configs"
	"github.com/reusee/vana/vars"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatYAML OutputFormat = "yaml"
)

var formatFlag = cmds.Var[OutputFormat]("-format")

func init() {
	cmds.GlobalExecutor.Describe("-format", "output format: text or yaml")
}

func (Module) OutputFormat(
	loader configs.Loader,
) OutputFormat {
	return vars.FirstNonZero(
		*formatFlag,
		configs.First[OutputFormat](loader, "format"),
		FormatText,
	)
}

func (f OutputFormat) Validate() error {
	switch f {
	case FormatText, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format: %s", f)
}
