// Package app implements the application layer for lode.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/lode/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Options control one application run, assembled from CLI flags.
type Options struct {
	// Reload refetches every remote module, bypassing cache reads.
	Reload bool

	// ReloadTargets refetches only the named specifiers.
	ReloadTargets []string

	// CachedOnly forbids network access; uncached modules fail the run.
	CachedOnly bool

	// Frozen fails the run on any specifier missing from the lock file.
	Frozen bool

	// NoLock disables lock verification for this run.
	NoLock bool

	// LockPath overrides the configured lock file location and enables
	// locking even without a config file.
	LockPath string

	// LockWrite records fetched content hashes unconditionally instead of
	// verifying them.
	LockWrite bool
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     *resolver.Resolver
	registries   ports.RegistryProvider
	lockFactory  ports.LockFactory
	executor     ports.Executor
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	res *resolver.Resolver,
	registries ports.RegistryProvider,
	lockFactory ports.LockFactory,
	executor ports.Executor,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     res,
		registries:   registries,
		lockFactory:  lockFactory,
		executor:     executor,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Cache resolves and caches the given roots, or the configured entries when
// roots is empty, verifying lock file integrity along the way.
func (a *App) Cache(ctx context.Context, roots []string, opts Options) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	results, err := a.resolve(ctx, roots, cfg, opts)
	if err != nil {
		return err
	}

	if cfg.Vendor {
		return materialize(filepath.Join(cfg.BaseDir, "vendor"), results)
	}
	return nil
}

// Run resolves the configured entries, then executes the named script with
// the given extra arguments.
func (a *App) Run(ctx context.Context, script string, args []string, opts Options) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	command, ok := cfg.Scripts[script]
	if !ok {
		return domain.Tag(domain.ErrScriptNotFound, "script", script)
	}

	if len(cfg.Entries) > 0 {
		if _, err := a.resolve(ctx, nil, cfg, opts); err != nil {
			return err
		}
	}

	full := make([]string, 0, len(command)+len(args))
	full = append(full, command...)
	full = append(full, args...)
	return a.executor.Execute(ctx, full, nil)
}

// Vendor resolves the configured entries and materializes all remote
// modules under the vendor directory.
func (a *App) Vendor(ctx context.Context, dir string, opts Options) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	results, err := a.resolve(ctx, nil, cfg, opts)
	if err != nil {
		return err
	}
	return materialize(dir, results)
}

func (a *App) resolve(ctx context.Context, roots []string, cfg *domain.ProjectConfig, opts Options) ([]*domain.Resolution, error) {
	defer func() { _ = a.telemetry.Close() }()

	if len(roots) == 0 {
		roots = cfg.Entries
	}
	if len(roots) == 0 {
		return nil, domain.ErrNoEntries
	}

	for kind, base := range cfg.RegistryURLs {
		a.registries.SetBaseURL(kind, base)
	}

	resolveOpts := resolver.Options{
		Mode:     fetchMode(opts),
		Targets:  opts.ReloadTargets,
		LockMode: lockMode(opts),
	}

	var lock ports.LockStore
	if enabled, path := lockConfig(cfg, opts); enabled {
		store, err := a.lockFactory.Open(path)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to open lock file")
		}
		lock = store
		if !opts.LockWrite {
			// Lock-write replaces verification with unconditional recording.
			resolveOpts.Lock = lock
		}
	}

	results, err := a.resolver.ResolveAll(ctx, roots, cfg, resolveOpts)
	if err != nil {
		return nil, err
	}

	if opts.LockWrite && lock != nil {
		for _, res := range results {
			if res.Specifier.Kind == domain.KindLocal {
				continue
			}
			if err := lock.Write(res.Key, res.Content); err != nil {
				return nil, err
			}
		}
	}

	cached := 0
	for _, res := range results {
		if res.Cached() {
			cached++
		}
	}
	a.logger.Info(fmt.Sprintf("resolved %d modules (%d cached)", len(results), cached))
	return results, nil
}

// loadConfig loads the project configuration, falling back to an empty
// configuration when no config file exists. Locking needs a config file to
// anchor the lock path, so the fallback disables it.
func (a *App) loadConfig() (*domain.ProjectConfig, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cwd, wdErr := os.Getwd()
			if wdErr != nil {
				return nil, zerr.Wrap(wdErr, "failed to determine working directory")
			}
			return &domain.ProjectConfig{BaseDir: cwd}, nil
		}
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// lockConfig decides whether this run verifies against a lock file and where
// that file lives. An explicit --lock path wins over the configuration.
func lockConfig(cfg *domain.ProjectConfig, opts Options) (bool, string) {
	if opts.NoLock {
		return false, ""
	}
	if opts.LockPath != "" {
		return true, opts.LockPath
	}
	return cfg.LockEnabled && cfg.LockPath != "", cfg.LockPath
}

func fetchMode(opts Options) domain.FetchMode {
	switch {
	case opts.Reload:
		return domain.FetchReload
	case len(opts.ReloadTargets) > 0:
		return domain.FetchReloadSpecific
	case opts.CachedOnly:
		return domain.FetchCachedOnly
	}
	return domain.FetchNormal
}

func lockMode(opts Options) domain.LockMode {
	if opts.Frozen {
		return domain.LockFrozen
	}
	return domain.LockAdditive
}
