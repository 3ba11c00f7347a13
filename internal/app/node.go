package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vscfg/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vscfg/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/vscfg/internal/adapters/jsondoc" //nolint:depguard // Wired in app layer
	"go.trai.ch/vscfg/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/vscfg/internal/adapters/shell"   //nolint:depguard // Wired in app layer
	"go.trai.ch/vscfg/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.FileSystemNodeID,
			fs.HasherNodeID,
			shell.NodeID,
			jsondoc.TaskCodecNodeID,
			jsondoc.PropertiesCodecNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	fsys, err := graft.Dep[ports.FileSystem](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	tokenizer, err := graft.Dep[ports.Tokenizer](ctx)
	if err != nil {
		return nil, err
	}

	taskCodec, err := graft.Dep[ports.TaskCodec](ctx)
	if err != nil {
		return nil, err
	}

	propertiesCodec, err := graft.Dep[ports.PropertiesCodec](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, fsys, hasher, tokenizer, taskCodec, propertiesCodec, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
