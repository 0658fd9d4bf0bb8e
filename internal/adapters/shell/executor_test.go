package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/adapters/shell"
	"go.trai.ch/lode/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)

	executor := shell.NewExecutor(mockLogger)
	err := executor.Execute(context.Background(), []string{"true"}, nil)
	require.NoError(t, err)
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))
	require.NoError(t, executor.Execute(context.Background(), nil, nil))
}

func TestExecutor_Execute_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))
	err := executor.Execute(context.Background(), []string{"false"}, nil)
	require.Error(t, err)
}

func TestExecutor_Execute_StderrGoesToLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("something went sideways").Times(1)

	executor := shell.NewExecutor(mockLogger)
	err := executor.Execute(context.Background(),
		[]string{"sh", "-c", "echo 'something went sideways' >&2"}, nil)
	require.NoError(t, err)
}

func TestExecutor_Execute_PathOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	executor := shell.NewExecutor(mocks.NewMockLogger(ctrl))

	binDir := t.TempDir()
	script := filepath.Join(binDir, "lode-tool")
	//nolint:gosec // Test requires executable file
	err := os.WriteFile(script, []byte("#!/bin/sh\nexit 0\n"), 0o700)
	require.NoError(t, err)

	err = executor.Execute(context.Background(), []string{"lode-tool"},
		[]string{"PATH=" + binDir})
	require.NoError(t, err)
}
