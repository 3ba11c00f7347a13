package ports

import "go.trai.ch/vscfg/internal/core/domain"

// ConfigLoader defines the interface for loading the generator configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path and merges it over the defaults.
	// An empty path yields the defaults.
	Load(path string) (domain.Config, error)
}
