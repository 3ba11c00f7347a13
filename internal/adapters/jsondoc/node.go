package jsondoc

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vscfg/internal/core/ports"
)

const (
	// TaskCodecNodeID is the unique identifier for the tasks codec Graft node.
	TaskCodecNodeID graft.ID = "adapter.jsondoc.tasks"
	// PropertiesCodecNodeID is the unique identifier for the properties codec Graft node.
	PropertiesCodecNodeID graft.ID = "adapter.jsondoc.properties"
)

func init() {
	graft.Register(graft.Node[ports.TaskCodec]{
		ID:        TaskCodecNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TaskCodec, error) {
			return NewTaskCodec(), nil
		},
	})

	graft.Register(graft.Node[ports.PropertiesCodec]{
		ID:        PropertiesCodecNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PropertiesCodec, error) {
			return NewPropertiesCodec(), nil
		},
	})
}
