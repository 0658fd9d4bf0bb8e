// Package resolver implements the module resolution pipeline: specifier
// parsing, import map lookup, version resolution, fetching and lock file
// verification.
package resolver

import (
	"context"
	"errors"
	"runtime"
	"time"

	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Options control one resolution run.
type Options struct {
	// Mode selects the fetch behavior for remote modules.
	Mode domain.FetchMode

	// Targets are the specifiers forced to refetch in FetchReloadSpecific
	// mode, in their raw form.
	Targets []string

	// LockMode selects additive or frozen lock verification.
	LockMode domain.LockMode

	// Lock is the lock store for this run, or nil when locking is disabled.
	Lock ports.LockStore
}

// Resolver turns raw import strings into verified module content.
type Resolver struct {
	registries ports.RegistryProvider
	remote     ports.RemoteLoader
	local      ports.LocalLoader
	cache      ports.ModuleCache
	telemetry  ports.Telemetry
	logger     ports.Logger

	// versions dedups concurrent version list fetches per package;
	// content dedups concurrent fetches per resolved specifier.
	versions singleflight.Group
	content  singleflight.Group
}

// New creates a Resolver.
func New(
	registries ports.RegistryProvider,
	remote ports.RemoteLoader,
	local ports.LocalLoader,
	cache ports.ModuleCache,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Resolver {
	return &Resolver{
		registries: registries,
		remote:     remote,
		local:      local,
		cache:      cache,
		telemetry:  telemetry,
		logger:     logger,
	}
}

// ResolveAll resolves every root concurrently. The first failure cancels
// the remaining work; results keep the order of roots.
func (r *Resolver) ResolveAll(ctx context.Context, roots []string, cfg *domain.ProjectConfig, opts Options) ([]*domain.Resolution, error) {
	results := make([]*domain.Resolution, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, raw := range roots {
		g.Go(func() error {
			res, err := r.Resolve(gctx, raw, "", cfg, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Resolve resolves one raw import string. The requester is the specifier of
// the importing module, empty for roots; it selects import map scopes.
func (r *Resolver) Resolve(ctx context.Context, raw, requester string, cfg *domain.ProjectConfig, opts Options) (*domain.Resolution, error) {
	imports := cfg.Imports

	spec, err := domain.ParseSpecifier(raw, cfg.BaseDir, imports)
	if err != nil {
		return nil, err
	}

	if spec.Kind == domain.KindBare {
		mapped, err := imports.Resolve(spec.Name.String(), requester)
		if err != nil {
			return nil, zerr.With(err, "specifier", raw)
		}
		spec = mapped
	}

	switch spec.Kind {
	case domain.KindLocal:
		return r.resolveLocal(raw, spec)
	case domain.KindURL:
		return r.resolveRemote(ctx, raw, spec, spec.URL.String(), opts, func(ctx context.Context) ([]byte, error) {
			return r.remote.Fetch(ctx, spec.URL.String())
		})
	case domain.KindRegistry:
		return r.resolveRegistry(ctx, raw, spec, opts)
	}

	// A mapped bare name pointing at another bare name cannot make progress.
	return nil, domain.Tag(domain.ErrInvalidSpecifier, "specifier", raw)
}

// resolveLocal reads a local module. Local files are never cached and never
// participate in the lock file.
func (r *Resolver) resolveLocal(raw string, spec domain.Specifier) (*domain.Resolution, error) {
	content, err := r.local.Load(spec.Path.String())
	if err != nil {
		return nil, err
	}
	return &domain.Resolution{
		Raw:       raw,
		Specifier: spec,
		Key:       spec.Path.String(),
		Content:   content,
		Integrity: domain.IntegrityHash(content),
		Status:    domain.FetchStatusCompleted,
	}, nil
}

// resolveRegistry resolves the version range against the registry's
// published versions, then fetches the pinned module.
func (r *Resolver) resolveRegistry(ctx context.Context, raw string, spec domain.Specifier, opts Options) (*domain.Resolution, error) {
	client, err := r.registries.For(spec.Registry)
	if err != nil {
		return nil, err
	}

	var version domain.Version
	if opts.Mode == domain.FetchCachedOnly {
		// Offline runs cannot list published versions, so only an exact pin
		// can name its cache entry without the registry.
		if spec.Range.Kind != domain.RangeExact {
			err := domain.Tag(domain.ErrNotCached, "specifier", raw)
			return nil, zerr.With(err, "reason", "version range needs a registry listing")
		}
		version = spec.Range.Version
	} else {
		version, err = r.resolveVersion(ctx, client, spec)
		if err != nil {
			return nil, err
		}
	}

	key := spec.Resolved(version)
	return r.resolveRemote(ctx, raw, spec, key, opts, func(ctx context.Context) ([]byte, error) {
		return client.FetchContent(ctx, spec.Name.String(), version)
	})
}

func (r *Resolver) resolveVersion(ctx context.Context, client ports.Registry, spec domain.Specifier) (domain.Version, error) {
	flightKey := string(spec.Registry) + ":" + spec.Name.String()
	listed, err, _ := r.versions.Do(flightKey, func() (any, error) {
		return client.ListVersions(ctx, spec.Name.String())
	})
	if err != nil {
		return domain.Version{}, err
	}

	available, _ := listed.([]domain.Version)
	version, err := domain.ResolveVersion(spec.Range, available)
	if err != nil {
		return domain.Version{}, zerr.With(err, "package", spec.String())
	}
	return version, nil
}

// resolveRemote runs the cache, fetch and lock pipeline for one remote
// module, keyed by its fully resolved specifier.
func (r *Resolver) resolveRemote(ctx context.Context, raw string, spec domain.Specifier, key string, opts Options, fetch func(context.Context) ([]byte, error)) (*domain.Resolution, error) {
	ctx, vertex := r.telemetry.Record(ctx, key)

	res, err := r.fetchThroughCache(ctx, raw, spec, key, opts, fetch)
	if err != nil {
		vertex.Complete(err)
		return nil, err
	}

	if err := r.verifyLock(key, res.Content, opts); err != nil {
		vertex.Complete(err)
		return nil, err
	}

	if res.Cached() {
		vertex.Cached()
	}
	vertex.Complete(nil)
	return res, nil
}

func (r *Resolver) fetchThroughCache(ctx context.Context, raw string, spec domain.Specifier, key string, opts Options, fetch func(context.Context) ([]byte, error)) (*domain.Resolution, error) {
	if !r.mustRefetch(raw, spec, key, opts) {
		entry, err := r.cache.Get(key)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			return &domain.Resolution{
				Raw:       raw,
				Specifier: spec,
				Key:       key,
				Content:   entry.Content,
				Integrity: entry.Integrity,
				Status:    domain.FetchStatusCached,
			}, nil
		}
	}

	if opts.Mode == domain.FetchCachedOnly {
		return nil, domain.Tag(domain.ErrNotCached, "specifier", key)
	}

	content, err := r.fetchOnce(ctx, key, fetch)
	if err != nil {
		return nil, err
	}

	entry := domain.CacheEntry{
		Specifier: key,
		Integrity: domain.IntegrityHash(content),
		Content:   content,
		FetchedAt: time.Now().UTC(),
	}
	if err := r.cache.Put(entry); err != nil {
		return nil, err
	}
	r.logger.Info("fetched " + key)

	return &domain.Resolution{
		Raw:       raw,
		Specifier: spec,
		Key:       key,
		Content:   content,
		Integrity: entry.Integrity,
		Status:    domain.FetchStatusCompleted,
	}, nil
}

// fetchOnce dedups concurrent fetches of the same resolved specifier. Every
// waiter receives the single fetch's result.
func (r *Resolver) fetchOnce(ctx context.Context, key string, fetch func(context.Context) ([]byte, error)) ([]byte, error) {
	fetched, err, _ := r.content.Do(key, func() (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	content, ok := fetched.([]byte)
	if !ok {
		return nil, errors.New("unexpected fetch result type")
	}
	return content, nil
}

// mustRefetch reports whether the cache is bypassed for this module.
func (r *Resolver) mustRefetch(raw string, spec domain.Specifier, key string, opts Options) bool {
	switch opts.Mode {
	case domain.FetchReload:
		return true
	case domain.FetchReloadSpecific:
		for _, target := range opts.Targets {
			if target == raw || target == key || target == spec.String() {
				return true
			}
		}
	}
	return false
}

func (r *Resolver) verifyLock(key string, content []byte, opts Options) error {
	if opts.Lock == nil {
		return nil
	}
	return opts.Lock.Verify(key, content, opts.LockMode)
}
