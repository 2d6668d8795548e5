package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/frontmatter" //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/fs"          //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/preview"     //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.DiscovererNodeID,
			frontmatter.NodeID,
			preview.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	discoverer, err := graft.Dep[ports.Discoverer](ctx)
	if err != nil {
		return nil, err
	}
	codec, err := graft.Dep[ports.DocumentCodec](ctx)
	if err != nil {
		return nil, err
	}
	previewer, err := graft.Dep[ports.Previewer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, discoverer, codec, previewer, log), nil
}
