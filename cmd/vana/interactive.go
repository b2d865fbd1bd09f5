package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/vana/diagnostics"
	"github.com/reusee/vana/logs"
	"github.com/reusee/vana/pipelines"
	"github.com/reusee/vana/vanalang"
)

func runInteractive(
	parse pipelines.ParseSource,
	logger logs.Logger,
) {
	var historyFile string
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".vana_history")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "> ",
		HistoryFile: historyFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}
	defer rl.Close()

	ctx := context.Background()
	n := 0
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		n++
		result := parse(ctx, vanalang.NewSource(fmt.Sprintf("<input %d>", n), line))
		if result.Err != nil {
			if err := diagnostics.Render(os.Stderr, result.Diagnostics()); err != nil {
				logger.Error("render", "error", err)
			}
			continue
		}
		fmt.Println(formatResult(result))
	}
}

func formatResult(result *pipelines.Result) string {
	if result.Err != nil {
		return result.Err.Error()
	}
	lines := make([]string, 0, len(result.Nodes))
	for _, node := range result.Nodes {
		lines = append(lines, node.String())
	}
	return strings.Join(lines, "\n")
}
