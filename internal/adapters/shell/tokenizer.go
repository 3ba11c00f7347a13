// Package shell provides shell-style word splitting of compiler flag strings.
package shell

import (
	"github.com/kballard/go-shellquote"
	"go.trai.ch/vscfg/internal/core/domain"
	"go.trai.ch/vscfg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Tokenizer = (*Tokenizer)(nil)

// Tokenizer implements ports.Tokenizer using POSIX shell quoting rules.
// No expansion happens and '#' has no special meaning.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Split returns the words of s. Inside double quotes a backslash is kept
// unless it escapes a quote, a backslash, '$', '`' or a newline.
// Unbalanced quotes and a trailing escape character are reported as
// ErrMalformedFlags.
func (t *Tokenizer) Split(s string) ([]string, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMalformedFlags.Error()), "flags", s)
	}
	return words, nil
}
