package main

import (
	"context"
	"io"

	"github.com/reusee/dscope"
	"github.com/reusee/vana/configs"
	"github.com/reusee/vana/diagnostics"
	"github.com/reusee/vana/pipelines"
	"github.com/reusee/vana/vanaconfigs"
)

type action uint8

const (
	actionTokens action = iota + 1
	actionParse
	actionCheck
)

type job struct {
	action action
	path   string
}

// defaultJobs fills in the work for a bare invocation: piped stdin is
// checked, a terminal starts the interactive mode.
func defaultJobs(jobs []job, stdinIsTerminal bool) ([]job, bool) {
	if len(jobs) > 0 {
		return jobs, false
	}
	if stdinIsTerminal {
		return nil, true
	}
	return []job{
		{
			action: actionCheck,
			path:   pipelines.StdinPath,
		},
	}, false
}

// checkSettings reports broken config files and invalid settings to w.
// It must run before any setting is resolved, since settings panic on a
// config file that does not load.
func checkSettings(scope dscope.Scope, w io.Writer) (ok bool) {
	var err error
	scope.Call(func(
		loader configs.Loader,
	) {
		_, err = loader.Paths()
	})
	if err == nil {
		scope.Call(func(
			format vanaconfigs.OutputFormat,
		) {
			err = format.Validate()
		})
	}
	if err != nil {
		if renderErr := diagnostics.Render(w, diagnostics.FromError(err)); renderErr != nil {
			panic(wrap(renderErr))
		}
		return false
	}
	return true
}

// runJobs runs jobs and writes one report to w in job order. Files that
// cannot be loaded are reported to errOut. Clean files of check jobs are
// not reported. failed is set when any job hit a load, lexical or syntax
// error.
func runJobs(
	ctx context.Context,
	scope dscope.Scope,
	jobs []job,
	w io.Writer,
	errOut io.Writer,
) (
	results []*pipelines.Result,
	failed bool,
	err error,
) {

	type outcome struct {
		result *pipelines.Result
		err    error
	}
	outcomes := make([]outcome, len(jobs))
	var report pipelines.Report

	scope.Call(func(
		loadSource pipelines.LoadSource,
		tokenize pipelines.TokenizeSource,
		parseFiles pipelines.ParseFiles,
		r pipelines.Report,
	) {
		report = r

		// tokens inline, parse and check in one batch
		var paths []string
		var indexes []int
		for i, job := range jobs {
			if job.action != actionTokens {
				paths = append(paths, job.path)
				indexes = append(indexes, i)
				continue
			}
			src, err := loadSource(job.path)
			if err != nil {
				outcomes[i].err = err
				continue
			}
			outcomes[i].result = tokenize(ctx, src)
		}

		n := 0
		for result, err := range parseFiles(ctx, paths) {
			outcomes[indexes[n]] = outcome{
				result: result,
				err:    err,
			}
			n++
		}
	})

	// written in one report so yaml documents share an encoder
	var outputs []*pipelines.Result
	for i, o := range outcomes {
		if o.err != nil {
			failed = true
			if err := diagnostics.Render(errOut, diagnostics.FromError(o.err)); err != nil {
				return nil, failed, err
			}
			continue
		}
		result := o.result
		if result == nil {
			// parseFiles stopped early on a cancelled context
			failed = true
			continue
		}
		results = append(results, result)
		if result.Err != nil {
			failed = true
		}
		switch jobs[i].action {
		case actionTokens, actionParse:
			outputs = append(outputs, result)
		case actionCheck:
			if result.Err != nil {
				outputs = append(outputs, &pipelines.Result{
					Source: result.Source,
					Err:    result.Err,
				})
			}
		}
	}

	if err := report(w, outputs...); err != nil {
		return results, failed, err
	}
	return results, failed, nil
}
