package arena

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glint/internal/core/domain"
)

// TargetNodeID is the unique identifier for the allocation target Graft node.
const TargetNodeID graft.ID = "adapter.arena.target"

func init() {
	graft.Register(graft.Node[*Target[domain.Type]]{
		ID:        TargetNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Target[domain.Type], error) {
			// The session's scratch arena is active until a cache redirects it.
			return NewTarget(New[domain.Type](domain.DefaultChunkSize)), nil
		},
	})
}
