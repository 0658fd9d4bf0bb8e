package ports

import "context"

// Executor runs project scripts after dependency resolution.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command line with the specified environment.
	// The env parameter contains environment variables in "KEY=VALUE" format.
	Execute(ctx context.Context, command []string, env []string) error
}
