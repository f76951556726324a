package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"scadc/internal/source"
	"scadc/internal/transpile"
)

// DirOptions tune a directory compile.
type DirOptions struct {
	Options

	// Jobs caps concurrent compiles; non-positive means GOMAXPROCS.
	Jobs int

	// Progress receives per-file events; nil means no reporting.
	Progress Sink
}

// FileResult is the outcome for one file of a directory compile. Err is a
// load failure, *diag.SyntaxError, or *diag.TranspileError; compile errors
// in one file do not stop the others.
type FileResult struct {
	Path   string
	File   *source.File
	Result *transpile.Result
	Err    error
	Cached bool
}

// ListFiles returns the sorted relative paths of every *.scad file under
// dir.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".scad") {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CompileDir compiles every *.scad file under dir concurrently. Results
// come back in the sorted file order regardless of completion order,
// together with the FileSet holding every loaded source. The returned
// error reflects directory walking or cancellation, never a per-file
// compile failure.
func CompileDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []FileResult, error) {
	files, err := ListFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, nil
	}

	progress := opts.Progress
	if progress == nil {
		progress = NopSink{}
	}

	// Load everything up front: the FileSet is not safe for concurrent
	// mutation, and load errors should surface as per-file results like
	// any other failure.
	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		progress.Send(Event{File: path, Stage: StageLoad, Status: StatusWorking})
		fileID, err := fileSet.Load(filepath.Join(dir, path))
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, so the slice needs no lock.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				results[i] = FileResult{Path: path, Err: loadErr}
				progress.Send(Event{File: path, Stage: StageLoad, Status: StatusError})
				return nil
			}

			progress.Send(Event{File: path, Stage: StageParse, Status: StatusWorking})
			file := fileSet.Get(fileIDs[path])
			res, err := compileFile(fileSet, file, opts.Options)
			if err != nil {
				results[i] = FileResult{Path: path, File: file, Err: err}
				progress.Send(Event{File: path, Stage: StageLower, Status: StatusError})
				return nil
			}

			results[i] = FileResult{Path: path, File: file, Result: res.Result, Cached: res.Cached}
			status := StatusDone
			if res.Cached {
				status = StatusCached
			}
			progress.Send(Event{File: path, Stage: StageLower, Status: status})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
