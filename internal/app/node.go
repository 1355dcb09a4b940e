package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/otto/internal/adapters/fsx"       //nolint:depguard // Wired in app layer
	"go.trai.ch/otto/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/otto/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/otto/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/otto/internal/adapters/toolchain" //nolint:depguard // Wired in app layer
	"go.trai.ch/otto/internal/core/ports"
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
			toolchain.NodeID,
			shell.NodeID,
			fsx.StatNodeID,
			fsx.PolicyNodeID,
			telemetry.NodeID,
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
	chains, err := graft.Dep[*toolchain.Cache](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	stat, err := graft.Dep[ports.FileStat](ctx)
	if err != nil {
		return nil, err
	}

	policy, err := graft.Dep[ports.RebuildPolicy](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(chains, executor, stat, policy, tel, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
