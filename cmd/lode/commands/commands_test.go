package commands_test

import (
	"context"
	"testing"

	"go.trai.ch/lode/cmd/lode/commands"
	"go.trai.ch/lode/internal/adapters/telemetry"
	"go.trai.ch/lode/internal/app"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports/mocks"
	"go.trai.ch/lode/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type testCLI struct {
	cli         *commands.CLI
	loader      *mocks.MockConfigLoader
	registries  *mocks.MockRegistryProvider
	registry    *mocks.MockRegistry
	cache       *mocks.MockModuleCache
	lockFactory *mocks.MockLockFactory
	lock        *mocks.MockLockStore
	executor    *mocks.MockExecutor
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	ctrl := gomock.NewController(t)

	tc := &testCLI{
		loader:      mocks.NewMockConfigLoader(ctrl),
		registries:  mocks.NewMockRegistryProvider(ctrl),
		registry:    mocks.NewMockRegistry(ctrl),
		cache:       mocks.NewMockModuleCache(ctrl),
		lockFactory: mocks.NewMockLockFactory(ctrl),
		lock:        mocks.NewMockLockStore(ctrl),
		executor:    mocks.NewMockExecutor(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	noop := telemetry.NewNoop()
	res := resolver.New(tc.registries, mocks.NewMockRemoteLoader(ctrl),
		mocks.NewMockLocalLoader(ctrl), tc.cache, noop, logger)
	a := app.New(tc.loader, res, tc.registries, tc.lockFactory,
		tc.executor, noop, logger)

	tc.cli = commands.New(a)
	return tc
}

func TestCache_Success(t *testing.T) {
	tc := newTestCLI(t)
	content := []byte("export const sep = \"/\";\n")
	v, _ := domain.ParseVersion("1.3.0")

	tc.loader.EXPECT().Load(".").Return(&domain.ProjectConfig{}, nil)
	tc.registries.EXPECT().For(domain.RegistryJSR).Return(tc.registry, nil)
	tc.registry.EXPECT().ListVersions(gomock.Any(), "@std/path").
		Return([]domain.Version{v}, nil)
	tc.cache.EXPECT().Get("jsr:@std/path@1.3.0").Return(nil, nil)
	tc.registry.EXPECT().FetchContent(gomock.Any(), "@std/path", v).
		Return(content, nil)
	tc.cache.EXPECT().Put(gomock.Any()).Return(nil)

	tc.cli.SetArgs([]string{"cache", "jsr:@std/path@1.3.0"})
	if err := tc.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestCache_CachedOnlyFlag(t *testing.T) {
	tc := newTestCLI(t)

	tc.loader.EXPECT().Load(".").Return(&domain.ProjectConfig{}, nil)
	tc.registries.EXPECT().For(domain.RegistryJSR).Return(tc.registry, nil)
	tc.cache.EXPECT().Get("jsr:@std/path@1.3.0").Return(nil, nil)

	tc.cli.SetArgs([]string{"cache", "--cached-only", "jsr:@std/path@1.3.0"})
	err := tc.cli.Execute(context.Background())
	if err == nil {
		t.Fatal("expected cached-only miss to fail")
	}
}

func TestCache_LockWriteFlag(t *testing.T) {
	tc := newTestCLI(t)
	content := []byte("export const sep = \"/\";\n")
	v, _ := domain.ParseVersion("1.3.0")

	tc.loader.EXPECT().Load(".").Return(&domain.ProjectConfig{}, nil)
	tc.lockFactory.EXPECT().Open("custom.lock").Return(tc.lock, nil)
	tc.registries.EXPECT().For(domain.RegistryJSR).Return(tc.registry, nil)
	tc.registry.EXPECT().ListVersions(gomock.Any(), "@std/path").
		Return([]domain.Version{v}, nil)
	tc.cache.EXPECT().Get("jsr:@std/path@1.3.0").Return(nil, nil)
	tc.registry.EXPECT().FetchContent(gomock.Any(), "@std/path", v).
		Return(content, nil)
	tc.cache.EXPECT().Put(gomock.Any()).Return(nil)
	tc.lock.EXPECT().Write("jsr:@std/path@1.3.0", content).Return(nil)

	tc.cli.SetArgs([]string{"cache", "--lock", "custom.lock", "--lock-write", "jsr:@std/path@1.3.0"})
	if err := tc.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRun_ExecutesScript(t *testing.T) {
	tc := newTestCLI(t)

	tc.loader.EXPECT().Load(".").Return(&domain.ProjectConfig{
		Scripts: map[string][]string{"greet": {"echo", "hello"}},
	}, nil)
	tc.executor.EXPECT().
		Execute(gomock.Any(), []string{"echo", "hello"}, gomock.Nil()).
		Return(nil)

	tc.cli.SetArgs([]string{"run", "greet"})
	if err := tc.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestRun_NoScriptShowsHelp(t *testing.T) {
	tc := newTestCLI(t)

	tc.cli.SetArgs([]string{"run"})
	if err := tc.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for missing script, got: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	tc := newTestCLI(t)

	tc.cli.SetArgs([]string{"--help"})
	if err := tc.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for help, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	tc := newTestCLI(t)

	tc.cli.SetArgs([]string{"version"})
	if err := tc.cli.Execute(context.Background()); err != nil {
		t.Errorf("Expected no error for version, got: %v", err)
	}
}
