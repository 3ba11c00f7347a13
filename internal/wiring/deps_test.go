package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vscfg/internal/adapters/config"
	"go.trai.ch/vscfg/internal/adapters/fs"
	"go.trai.ch/vscfg/internal/adapters/jsondoc"
	"go.trai.ch/vscfg/internal/adapters/logger"
	"go.trai.ch/vscfg/internal/adapters/shell"
	"go.trai.ch/vscfg/internal/app"
	_ "go.trai.ch/vscfg/internal/wiring"
)

var nodeIDs = []graft.ID{
	config.NodeID,
	fs.FileSystemNodeID,
	fs.HasherNodeID,
	shell.NodeID,
	jsondoc.TaskCodecNodeID,
	jsondoc.PropertiesCodecNodeID,
	logger.NodeID,
	app.AppNodeID,
	app.ComponentsNodeID,
}

// TestGraftDependencies checks that importing the wiring package registers
// every node and that the components node resolves its whole subgraph.
func TestGraftDependencies(t *testing.T) {
	t.Chdir(t.TempDir())

	registry := graft.Registry()
	for _, id := range nodeIDs {
		assert.Contains(t, registry, id, "node %s not registered", id)
	}

	components, results, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)

	for _, id := range nodeIDs {
		assert.Contains(t, results, id, "node %s not resolved", id)
	}
}
