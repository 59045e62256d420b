// Package batch parses many COBOL files concurrently.
package batch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/kobol/cobol"
	"github.com/dhamidi/kobol/tree"
)

var log = commonlog.GetLogger("kobol.batch")

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCanceled  Status = "canceled"
)

// Result is the outcome of parsing one file.
type Result struct {
	ID        string
	Path      string
	Status    Status
	Tree      *tree.Node
	Err       error
	StartedAt time.Time
	EndedAt   time.Time
}

func (r *Result) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Run is one call of Runner.Run.
type Run struct {
	ID      string
	Results []*Result
}

// Failed returns the results of files which could not be parsed.
func (r *Run) Failed() []*Result {
	var failed []*Result
	for _, res := range r.Results {
		if res.Status != StatusCompleted {
			failed = append(failed, res)
		}
	}
	return failed
}

// Runner parses files with a fixed number of workers.
type Runner struct {
	workers int
	opts    []cobol.Option
}

// New creates a runner. Zero or fewer workers means one per CPU. The
// options are passed to every cobol.Parse call.
func New(workers int, opts ...cobol.Option) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{workers: workers, opts: opts}
}

// Run parses the files at paths. Results come back in the order of paths;
// a file which fails does not stop the others. Once ctx is done, files not
// yet started are marked canceled.
func (r *Runner) Run(ctx context.Context, paths []string) *Run {
	run := &Run{ID: uuid.NewString(), Results: make([]*Result, len(paths))}
	log.Infof("run %s: parsing %d files with %d workers", run.ID, len(paths), r.workers)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				run.Results[i] = r.parseFile(ctx, run.ID, paths[i])
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	log.Infof("run %s: %d of %d files failed", run.ID, len(run.Failed()), len(paths))
	return run
}

func (r *Runner) parseFile(ctx context.Context, runID, path string) *Result {
	res := &Result{ID: uuid.NewString(), Path: path, Status: StatusPending, StartedAt: time.Now()}
	defer func() { res.EndedAt = time.Now() }()

	if err := ctx.Err(); err != nil {
		res.Status = StatusCanceled
		res.Err = err
		return res
	}

	f, err := os.Open(path)
	if err != nil {
		res.Status = StatusFailed
		res.Err = fmt.Errorf("open source: %w", err)
		log.Errorf("run %s: %s", runID, res.Err)
		return res
	}
	defer f.Close()

	opts := append(append([]cobol.Option(nil), r.opts...), cobol.WithFile(path))
	res.Tree, res.Err = cobol.Parse(f, opts...)
	if res.Err != nil {
		res.Status = StatusFailed
		log.Warningf("run %s: %s", runID, res.Err)
		return res
	}
	res.Status = StatusCompleted
	log.Debugf("run %s: parsed %s", runID, path)
	return res
}

// Collect expands paths into the source files to parse. Files named
// directly are always included; directories are walked for files whose
// extension, ignoring case, is one of extensions. The result is sorted.
func Collect(paths []string, extensions []string) ([]string, error) {
	wanted := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		wanted[strings.ToUpper(ext)] = true
	}

	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && wanted[strings.ToUpper(filepath.Ext(p))] {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("collect %s: %w", root, err)
		}
	}

	sort.Strings(files)
	return files, nil
}
