package pipelines

import (
	"context"
	"iter"

	"github.com/reusee/vana/logs"
	"github.com/reusee/vana/syncs"
	"github.com/reusee/vana/vanaconfigs"
)

// ParseFiles loads and parses paths concurrently. Results are yielded in
// the order of paths. A file that cannot be loaded yields a nil result and
// the load error; parse errors are reported in Result.Err.
type ParseFiles func(ctx context.Context, paths []string) iter.Seq2[*Result, error]

func (Module) ParseFiles(
	loadSource LoadSource,
	parseSource ParseSource,
	concurrency vanaconfigs.Concurrency,
	newSpan logs.NewSpan,
) ParseFiles {
	return func(ctx context.Context, paths []string) iter.Seq2[*Result, error] {
		return func(yield func(*Result, error) bool) {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			ctx, _ = newSpan(ctx, "", "parse files")

			type outcome struct {
				result *Result
				err    error
			}
			sem := syncs.NewSemaphore(int(concurrency))
			outcomes := make([]chan outcome, len(paths))
			for i, path := range paths {
				ch := make(chan outcome, 1)
				outcomes[i] = ch
				go func() {
					if err := sem.AcquireContext(ctx); err != nil {
						ch <- outcome{err: err}
						return
					}
					defer sem.Release()
					src, err := loadSource(path)
					if err != nil {
						ch <- outcome{err: logs.WrapSpan(ctx, err)}
						return
					}
					ch <- outcome{result: parseSource(ctx, src)}
				}()
			}

			for _, ch := range outcomes {
				o := <-ch
				if !yield(o.result, o.err) {
					return
				}
			}
		}
	}
}
