// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vscfg/internal/adapters/config"
	_ "go.trai.ch/vscfg/internal/adapters/fs"
	_ "go.trai.ch/vscfg/internal/adapters/jsondoc"
	_ "go.trai.ch/vscfg/internal/adapters/logger"
	_ "go.trai.ch/vscfg/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/vscfg/internal/app"
)
