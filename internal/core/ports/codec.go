package ports

import "go.trai.ch/vscfg/internal/core/domain"

// TaskCodec converts between tasks file content and task collections.
//
//go:generate mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type TaskCodec interface {
	// Decode validates a tasks file and returns its collection.
	Decode(data []byte) (*domain.TaskCollection, error)

	// Encode renders a collection as a tasks file.
	Encode(c *domain.TaskCollection) ([]byte, error)
}

// PropertiesCodec renders C/C++ properties documents.
type PropertiesCodec interface {
	// Encode renders the document as a properties file.
	Encode(doc domain.PropertiesDocument) ([]byte, error)
}
