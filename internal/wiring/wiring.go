// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/otto/internal/adapters/fsx"
	_ "go.trai.ch/otto/internal/adapters/logger"
	_ "go.trai.ch/otto/internal/adapters/shell"
	_ "go.trai.ch/otto/internal/adapters/telemetry"
	_ "go.trai.ch/otto/internal/adapters/toolchain"
	// Register app nodes.
	_ "go.trai.ch/otto/internal/app"
)
