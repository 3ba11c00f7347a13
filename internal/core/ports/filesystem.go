package ports

// FileSystem abstracts the byte-level file operations used by the generators.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether a file exists at path.
	Exists(path string) (bool, error)

	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at path with data.
	// Either the whole content is written or the file is left untouched.
	WriteFile(path string, data []byte) error
}
