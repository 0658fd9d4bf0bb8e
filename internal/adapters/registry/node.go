package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/core/ports"
)

const (
	ProviderNodeID graft.ID = "adapter.registry.provider"
	WebNodeID      graft.ID = "adapter.registry.web"
)

func init() {
	graft.Register(graft.Node[ports.RegistryProvider]{
		ID:        ProviderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RegistryProvider, error) {
			return NewSet(EnvProxy{}), nil
		},
	})

	graft.Register(graft.Node[ports.RemoteLoader]{
		ID:        WebNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RemoteLoader, error) {
			return NewWebLoader(EnvProxy{}), nil
		},
	})
}
