package jsondoc

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/vscfg/internal/core/domain"
	"go.trai.ch/vscfg/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PropertiesCodec = (*PropertiesCodec)(nil)

// PropertiesCodec implements ports.PropertiesCodec for c_cpp_properties.json.
type PropertiesCodec struct{}

// NewPropertiesCodec creates a new PropertiesCodec.
func NewPropertiesCodec() *PropertiesCodec {
	return &PropertiesCodec{}
}

// Encode renders the document with the shared indentation and a trailing newline.
func (c *PropertiesCodec) Encode(doc domain.PropertiesDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrEncodeFailed.Error())
	}
	return buf.Bytes(), nil
}
