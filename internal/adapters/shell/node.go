package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vscfg/internal/core/ports"
)

// NodeID is the unique identifier for the tokenizer Graft node.
const NodeID graft.ID = "adapter.tokenizer"

func init() {
	graft.Register(graft.Node[ports.Tokenizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tokenizer, error) {
			return NewTokenizer(), nil
		},
	})
}
