package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/core/domain"
	"go.trai.ch/lode/internal/core/ports"
)

const NodeID graft.ID = "adapter.module_cache"

func init() {
	graft.Register(graft.Node[ports.ModuleCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleCache, error) {
			store, err := NewStore(domain.DefaultCacheDir())
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
