package driver

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"quiver/internal/diag"
	"quiver/internal/source"
	"quiver/internal/validate"
)

// CheckOptions configures batch validation.
type CheckOptions struct {
	Jobs           int
	MaxDiagnostics int
	Validator      validate.Validator
	Cache          *validate.DiskCache
}

// CheckResult captures validation of a single file.
type CheckResult struct {
	Path string
	File *source.File
	Bag  *diag.Bag
}

// CheckPaths validates diagram files in parallel. Results follow the
// sorted file order regardless of goroutine scheduling.
func CheckPaths(ctx context.Context, paths []string, opts CheckOptions) ([]CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := collectDiagramFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("check: no diagram files found")
	}

	validator := opts.Validator
	if validator == nil {
		validator = validate.NewStructural()
	}
	if opts.Cache != nil {
		validator = validate.Cached(validator, opts.Cache)
	}
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}

	// Загружаем последовательно: FileSet не рассчитан на конкурентную
	// запись, а чтение из горутин безопасно.
	fileSet := source.NewFileSet()
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fileID, err := fileSet.Load(path)
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

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]CheckResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			bag := diag.NewBag(maxDiagnostics)
			results[i] = CheckResult{Path: path, Bag: bag}

			if loadErr, hadError := loadErrors[path]; hadError {
				bag.Add(diag.FallbackMarker(diag.IOLoadFileError, "failed to load file: "+loadErr.Error()))
				return nil
			}

			file := fileSet.Get(fileIDs[path])
			results[i].File = file

			if err := validator.Validate(gctx, string(file.Content)); err != nil {
				var verr *validate.Error
				if !errors.As(err, &verr) {
					verr = &validate.Error{Code: diag.ValSyntax, Message: err.Error()}
				}
				bag.Add(validate.Marker(verr))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
