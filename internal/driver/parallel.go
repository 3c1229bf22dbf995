package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"typelint/internal/source"
)

// listTLFiles returns the sorted list of every *.tl file under dir.
func listTLFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".tl") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Deterministic order.
	sort.Strings(files)
	return files, nil
}

// ListFiles returns the sorted *.tl files under dir, as CheckDir will
// visit them. Callers use it to seed progress displays.
func ListFiles(dir string) ([]string, error) {
	return listTLFiles(dir)
}

// CheckDir analyzes every *.tl file under dir in parallel. Results come
// back in path order regardless of completion order. Files whose cached
// diagnostics are still valid skip the pipeline entirely.
func CheckDir(ctx context.Context, dir string, opts CheckOpts) (*source.FileSet, []*CheckResult, error) {
	files, err := listTLFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	fileSet.SetBaseDir(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading up front keeps the FileSet single-writer; workers only read.
	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		fileIDs[i], loadErrs[i] = fileSet.Load(path)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*CheckResult, len(files))

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
			if loadErrs[i] != nil {
				return loadErrs[i]
			}

			result, err := checkOne(fileSet, fileIDs[i], path, opts)
			if err != nil {
				return err
			}
			results[i] = result
			if opts.OnFile != nil {
				opts.OnFile(path)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, nil, err
	}
	return fileSet, results, nil
}

// checkOne consults the disk cache before running the pipeline.
func checkOne(fileSet *source.FileSet, fileID source.FileID, path string, opts CheckOpts) (*CheckResult, error) {
	file := fileSet.Get(fileID)
	var key Digest
	if opts.Cache != nil {
		key = CacheKey(file.Content, opts.Rules)
		if bag, hit, err := opts.Cache.Get(key, fileID, opts.maxDiagnostics()); err == nil && hit {
			return &CheckResult{Path: path, FileID: fileID, Bag: bag}, nil
		}
	}

	result, err := CheckFile(fileSet, fileID, opts)
	if err != nil {
		return nil, err
	}
	if opts.Cache != nil {
		if err := opts.Cache.Put(key, result.Bag); err != nil {
			return nil, err
		}
	}
	return result, nil
}
