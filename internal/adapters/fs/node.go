package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "adapter.local_loader"

func init() {
	graft.Register(graft.Node[ports.LocalLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LocalLoader, error) {
			return NewLoader(), nil
		},
	})
}
