package ports

// Tokenizer splits a flag string into arguments the way a POSIX shell would.
//
//go:generate mockgen -source=tokenizer.go -destination=mocks/mock_tokenizer.go -package=mocks
type Tokenizer interface {
	// Split returns the words of s, honoring quotes and escapes.
	Split(s string) ([]string, error)
}
