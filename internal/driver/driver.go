// Package driver runs the full lint pipeline (lex, parse, nesting check)
// over files and directories, optionally in parallel and backed by an
// on-disk result cache.
package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"marklint/internal/ast"
	"marklint/internal/content"
	"marklint/internal/diag"
	"marklint/internal/lexer"
	"marklint/internal/nesting"
	"marklint/internal/parser"
	"marklint/internal/source"
)

// SourceExt is the file extension the directory walker picks up.
const SourceExt = ".mx"

// Options configures one driver run.
type Options struct {
	// MaxDiagnostics caps the bag per file. 0 selects a sane default.
	MaxDiagnostics int
	// Jobs limits parallelism in CheckDir; 0 uses GOMAXPROCS.
	Jobs int
	// Creators and MapMethods are forwarded to the nesting checker.
	Creators   []string
	MapMethods []string
	// Model overrides the content model; nil selects the default table.
	Model *content.Model
	// Cache enables result reuse across runs when non-nil.
	Cache *DiskCache
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics > 0 {
		return o.MaxDiagnostics
	}
	return 256
}

// Result is the outcome for one file.
type Result struct {
	Path      string
	FileID    source.FileID
	Bag       *diag.Bag
	FromCache bool
}

// CheckFile runs the pipeline over one already-loaded file and returns
// its diagnostics, sorted and deduplicated.
func CheckFile(fileSet *source.FileSet, fileID source.FileID, interner *source.Interner, opts Options) *diag.Bag {
	bag := diag.NewBag(opts.maxDiagnostics())
	file := fileSet.Get(fileID)
	if file == nil {
		return bag
	}

	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, interner)

	maxErrors, err := safecast.Conv[uint](opts.maxDiagnostics())
	if err != nil {
		maxErrors = 0
	}
	parser.ParseFile(lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	nesting.Check(builder, nesting.Options{
		Reporter:   reporter,
		Model:      opts.Model,
		Creators:   opts.Creators,
		MapMethods: opts.MapMethods,
	})

	bag.Sort()
	bag.Dedup()
	return bag
}

// CheckPath loads and checks a single file from disk.
func CheckPath(path string, opts Options) (*source.FileSet, Result, error) {
	fileSet := source.NewFileSetWithBase(filepath.Dir(path))
	fileID, err := fileSet.Load(path)
	if err != nil {
		return fileSet, Result{}, err
	}
	res := checkCached(fileSet, fileID, path, source.NewInterner(), opts)
	return fileSet, res, nil
}

// CheckDir checks every .mx file under dir in parallel. Results come
// back in sorted path order regardless of scheduling. Files that fail to
// load produce an IO diagnostic instead of aborting the run.
func CheckDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []Result, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Loading mutates the FileSet, so it happens up front; the parallel
	// phase only reads.
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error)
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	interner := source.NewInterner()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))
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
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErr.Error()))
				results[i] = Result{Path: path, Bag: bag}
				return nil
			}

			results[i] = checkCached(fileSet, fileIDs[path], path, interner, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// checkCached consults the disk cache before running the pipeline.
// Cache failures are non-fatal: the pipeline result always wins.
func checkCached(fileSet *source.FileSet, fileID source.FileID, path string, interner *source.Interner, opts Options) Result {
	file := fileSet.Get(fileID)
	key := CacheKey(file.Hash, opts.Creators, opts.MapMethods)

	if opts.Cache != nil {
		var payload Payload
		if hit, err := opts.Cache.Get(key, &payload); err == nil && hit {
			if bag, ok := bagFromPayload(&payload, fileID, opts.maxDiagnostics()); ok {
				return Result{Path: path, FileID: fileID, Bag: bag, FromCache: true}
			}
		}
	}

	bag := CheckFile(fileSet, fileID, interner, opts)
	if opts.Cache != nil {
		_ = opts.Cache.Put(key, payloadFromBag(bag))
	}
	return Result{Path: path, FileID: fileID, Bag: bag}
}

// listSourceFiles returns all .mx files under dir, sorted for a
// deterministic run order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
