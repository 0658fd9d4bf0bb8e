package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/lode/internal/adapters/cache"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lode/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lode/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lode/internal/adapters/registry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/lode/internal/adapters/telemetry/progrock"
	"go.trai.ch/lode/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.ProviderNodeID,
			registry.WebNodeID,
			fs.NodeID,
			cache.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			registries, err := graft.Dep[ports.RegistryProvider](ctx)
			if err != nil {
				return nil, err
			}

			remote, err := graft.Dep[ports.RemoteLoader](ctx)
			if err != nil {
				return nil, err
			}

			local, err := graft.Dep[ports.LocalLoader](ctx)
			if err != nil {
				return nil, err
			}

			moduleCache, err := graft.Dep[ports.ModuleCache](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(registries, remote, local, moduleCache, telemetry, log), nil
		},
	})
}
