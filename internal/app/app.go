// Package app implements the application layer for vscfg.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/vscfg/internal/core/domain"
	"go.trai.ch/vscfg/internal/core/ports"
	"go.trai.ch/vscfg/internal/engine/flags"
	"go.trai.ch/vscfg/internal/engine/properties"
	"go.trai.ch/vscfg/internal/engine/tasks"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader    ports.ConfigLoader
	fs              ports.FileSystem
	hasher          ports.Hasher
	tokenizer       ports.Tokenizer
	taskCodec       ports.TaskCodec
	propertiesCodec ports.PropertiesCodec
	logger          ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fsys ports.FileSystem,
	hasher ports.Hasher,
	tokenizer ports.Tokenizer,
	taskCodec ports.TaskCodec,
	propertiesCodec ports.PropertiesCodec,
	log ports.Logger,
) *App {
	return &App{
		configLoader:    loader,
		fs:              fsys,
		hasher:          hasher,
		tokenizer:       tokenizer,
		taskCodec:       taskCodec,
		propertiesCodec: propertiesCodec,
		logger:          log,
	}
}

// TaskOptions configures GenerateTasks.
type TaskOptions struct {
	File       string
	Label      string
	MakeCmd    string
	ConfigPath string
	// Check compares the generated file with the destination instead of writing it.
	Check bool
}

// TaskResult describes what GenerateTasks did.
type TaskResult struct {
	Path    string
	Load    domain.LoadState
	Outcome domain.MergeOutcome
	Written bool
}

// PropertiesOptions configures GenerateProperties.
type PropertiesOptions struct {
	CC         string
	CXX        string
	CFlags     string
	CXXFlags   string
	Output     string
	ConfigPath string
	// Check compares the generated file with the destination instead of writing it.
	Check bool
}

// PropertiesResult describes what GenerateProperties did.
type PropertiesResult struct {
	Path       string
	Descriptor domain.Descriptor
	Written    bool
}

// option is a named command line value checked for presence.
type option struct {
	name  string
	value string
}

// GenerateTasks merges a build task for opts.Label into the tasks file at opts.File.
func (a *App) GenerateTasks(ctx context.Context, opts TaskOptions) (TaskResult, error) {
	// 1. Validate options
	if err := requireOptions(
		option{"file", opts.File},
		option{"label", opts.Label},
		option{"make_cmd", opts.MakeCmd},
	); err != nil {
		return TaskResult{}, err
	}

	// 2. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return TaskResult{}, zerr.Wrap(err, "failed to load configuration")
	}

	if err := ctx.Err(); err != nil {
		return TaskResult{}, err
	}

	// 3. Load the existing tasks file
	loaded, existing, err := a.loadTasks(opts.File)
	if err != nil {
		return TaskResult{}, err
	}
	if loaded.State == domain.LoadInvalid {
		return TaskResult{}, zerr.With(loaded.Reason, "path", opts.File)
	}

	if loaded.State == domain.LoadLoaded {
		if n := loaded.Collection.Unlabeled(); n > 0 {
			a.logger.Warn(fmt.Sprintf("%d task(s) in %s have no string label and are left untouched", n, opts.File))
		}
	}

	// 4. Merge the record
	rec := domain.NewBuildTask(opts.Label, opts.MakeCmd, cfg.Task)

	var (
		collection *domain.TaskCollection
		outcome    domain.MergeOutcome
	)
	if loaded.State == domain.LoadNotFound {
		collection, outcome, err = tasks.NewCollection(rec)
	} else {
		collection = loaded.Collection
		outcome, err = tasks.Merge(collection, rec)
	}
	if err != nil {
		return TaskResult{}, err
	}

	data, err := a.taskCodec.Encode(collection)
	if err != nil {
		return TaskResult{}, err
	}

	result := TaskResult{Path: opts.File, Load: loaded.State, Outcome: outcome}

	// 5. Check or write
	if opts.Check {
		return result, a.verify(opts.File, existing, loaded.State != domain.LoadNotFound, data)
	}
	if err := a.write(ctx, opts.File, data); err != nil {
		return result, err
	}
	result.Written = true

	a.logger.Info(fmt.Sprintf("%s task %q in %s", outcome.Mode, opts.Label, opts.File))

	return result, nil
}

// GenerateProperties writes the C/C++ properties file derived from the compiler flags in opts.
// Any previous content of opts.Output is replaced.
func (a *App) GenerateProperties(ctx context.Context, opts PropertiesOptions) (PropertiesResult, error) {
	// 1. Validate options. Flag strings may be empty.
	if err := requireOptions(
		option{"cc", opts.CC},
		option{"cxx", opts.CXX},
		option{"output", opts.Output},
	); err != nil {
		return PropertiesResult{}, err
	}

	// 2. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return PropertiesResult{}, zerr.Wrap(err, "failed to load configuration")
	}

	// 3. Tokenize and assemble
	set, err := flags.Tokenize(a.tokenizer, opts.CFlags, opts.CXXFlags)
	if err != nil {
		return PropertiesResult{}, err
	}

	descriptor := properties.Assemble(properties.Input{
		CCompiler:        opts.CC,
		CXXCompiler:      opts.CXX,
		Flags:            set,
		IntelliSenseMode: cfg.Properties.IntelliSenseMode,
	})

	data, err := a.propertiesCodec.Encode(domain.NewPropertiesDocument(descriptor))
	if err != nil {
		return PropertiesResult{}, err
	}

	result := PropertiesResult{Path: opts.Output, Descriptor: descriptor}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	// 4. Check or write
	if opts.Check {
		existing, found, err := a.readIfExists(opts.Output)
		if err != nil {
			return result, err
		}
		return result, a.verify(opts.Output, existing, found, data)
	}
	if err := a.write(ctx, opts.Output, data); err != nil {
		return result, err
	}
	result.Written = true

	a.logger.Info(fmt.Sprintf(
		"wrote %s for %s and %s (%d include paths, %d defines)",
		opts.Output, opts.CC, opts.CXX, len(descriptor.IncludePath), len(descriptor.Defines),
	))

	return result, nil
}

// loadTasks reads and decodes the tasks file at path.
// The raw content is returned alongside for drift checks.
func (a *App) loadTasks(path string) (domain.LoadResult, []byte, error) {
	data, found, err := a.readIfExists(path)
	if err != nil {
		return domain.LoadResult{}, nil, err
	}
	if !found {
		return domain.NotFound(), nil, nil
	}

	c, err := a.taskCodec.Decode(data)
	if err != nil {
		return domain.Invalid(err), data, nil
	}
	return domain.Loaded(c), data, nil
}

func (a *App) readIfExists(path string) ([]byte, bool, error) {
	exists, err := a.fs.Exists(path)
	if err != nil {
		return nil, false, err
	}
	if !exists {
		return nil, false, nil
	}

	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// verify reports ErrOutOfDate unless the destination holds exactly generated.
func (a *App) verify(path string, existing []byte, found bool, generated []byte) error {
	if !found {
		return zerr.With(zerr.With(domain.ErrOutOfDate, "path", path), "reason", "missing")
	}

	want := a.hasher.Sum(generated)
	got := a.hasher.Sum(existing)
	if want != got {
		return zerr.With(zerr.With(domain.ErrOutOfDate, "path", path), "digest", got)
	}

	a.logger.Info(path + " is up to date")
	return nil
}

func (a *App) write(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return a.fs.WriteFile(path, data)
}

func requireOptions(opts ...option) error {
	for _, o := range opts {
		if o.value == "" {
			return zerr.With(domain.ErrMissingOption, "option", o.name)
		}
	}
	return nil
}
