package ports

// Hasher computes content digests used to detect drift between generated and existing files.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// Sum returns a hex encoded digest of data.
	Sum(data []byte) string
}
