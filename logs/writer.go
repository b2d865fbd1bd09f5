package logs

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/vana/cmds"
)

type Writer io.Writer

var logFile = cmds.Var[string]("-log-file")

func init() {
	cmds.GlobalExecutor.Describe("-log-file", "append logs to a file instead of stderr")
}

func (Module) Writer() Writer {
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			return f
		}
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
	}
	return os.Stderr
}
