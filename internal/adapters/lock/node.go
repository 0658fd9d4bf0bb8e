package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "adapter.lock_factory"

func init() {
	graft.Register(graft.Node[ports.LockFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockFactory, error) {
			return Factory{}, nil
		},
	})
}
