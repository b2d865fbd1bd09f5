package main

import (
	"context"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/vana/cmds"
	"github.com/reusee/vana/debugs"
	"github.com/reusee/vana/logs"
	"github.com/reusee/vana/modes"
	"github.com/reusee/vana/pipelines"
	"github.com/reusee/vana/vanalang"
	"golang.org/x/term"
)

var jobs []job

func addJob(a action) func(string) {
	return func(path string) {
		jobs = append(jobs, job{
			action: a,
			path:   path,
		})
	}
}

var (
	replSwitch        = cmds.Switch("repl")
	interactiveSwitch = cmds.Switch("interactive")
)

func init() {
	cmds.Define("tokens", cmds.Func(addJob(actionTokens)).Desc("print the tokens of a file, - for stdin"))
	cmds.Define("parse", cmds.Func(addJob(actionParse)).Desc("print the expression tree of a file, - for stdin"))
	cmds.Define("check", cmds.Func(addJob(actionCheck)).Desc("report errors of a file, - for stdin"))
	cmds.GlobalExecutor.Describe("repl", "open a starlark repl over the results")
	cmds.GlobalExecutor.Describe("interactive", "read and parse expressions line by line")
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if !*interactiveSwitch {
		var interactive bool
		jobs, interactive = defaultJobs(jobs, term.IsTerminal(int(os.Stdin.Fd())))
		*interactiveSwitch = interactive
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if !checkSettings(scope, os.Stderr) {
		os.Exit(2)
	}

	scope.Call(func(
		logger logs.Logger,
	) {
		logger.DebugContext(ctx, "start",
			"jobs", len(jobs),
			"interactive", *interactiveSwitch,
		)
	})

	if *interactiveSwitch {
		scope.Call(runInteractive)
		return
	}

	results, failed, err := runJobs(ctx, scope, jobs, os.Stdout, os.Stderr)
	ce(err)

	if *replSwitch {
		scope.Call(func(
			tap debugs.Tap,
			parse pipelines.ParseSource,
		) {
			tap(ctx, "results", map[string]any{
				"results": results,
				"show": func(text string) string {
					return formatResult(parse(ctx, vanalang.NewSource("<repl>", text)))
				},
			})
		})
	}

	if failed {
		os.Exit(1)
	}
}
