package fsx

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/otto/internal/core/ports"
)

const (
	// StatNodeID is the unique identifier for the FileStat Graft node.
	StatNodeID graft.ID = "adapter.stat"
	// StoreNodeID is the unique identifier for the record store Graft node.
	StoreNodeID graft.ID = "adapter.records"
	// PolicyNodeID is the unique identifier for the rebuild policy Graft node.
	PolicyNodeID graft.ID = "adapter.rebuildpolicy"
)

// recordStorePath is where build records live, relative to the working
// directory of the driver invocation.
const recordStorePath = "otto_records.json"

func init() {
	graft.Register(graft.Node[ports.FileStat]{
		ID:        StatNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileStat, error) {
			return NewStat(), nil
		},
	})

	graft.Register(graft.Node[ports.BuildRecordStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildRecordStore, error) {
			return NewRecordStore(recordStorePath)
		},
	})

	graft.Register(graft.Node[ports.RebuildPolicy]{
		ID:        PolicyNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID},
		Run: func(ctx context.Context) (ports.RebuildPolicy, error) {
			store, err := graft.Dep[ports.BuildRecordStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewStampPolicy(NewHasher(), store), nil
		},
	})
}
