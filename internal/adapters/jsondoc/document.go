// Package jsondoc reads and writes the editor's JSON settings documents.
package jsondoc

import (
	"github.com/tidwall/gjson"
	"go.trai.ch/vscfg/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kind is the type of a document node.
type Kind int

const (
	// KindNull is the JSON null literal.
	KindNull Kind = iota
	// KindBool is true or false.
	KindBool
	// KindNumber is a JSON number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object.
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Node is a read-only view of a value inside a parsed document.
// Accessors check the node kind and fail with an error instead of returning zero values.
type Node struct {
	res gjson.Result
}

// Parse validates data and returns its root node.
func Parse(data []byte) (Node, error) {
	if !gjson.ValidBytes(data) {
		return Node{}, domain.ErrInvalidJSON
	}
	return Node{res: gjson.ParseBytes(data)}, nil
}

// Kind returns the kind of the node.
func (n Node) Kind() Kind {
	switch n.res.Type {
	case gjson.False, gjson.True:
		return KindBool
	case gjson.Number:
		return KindNumber
	case gjson.String:
		return KindString
	case gjson.JSON:
		if n.res.IsArray() {
			return KindArray
		}
		return KindObject
	default:
		return KindNull
	}
}

// Raw returns the JSON text of the node.
func (n Node) Raw() []byte {
	return []byte(n.res.Raw)
}

// Field returns the member key of an object node. The key is matched
// literally; when it repeats, the last occurrence wins as with encoding/json.
func (n Node) Field(key string) (Node, error) {
	if err := n.expect(KindObject); err != nil {
		return Node{}, err
	}

	var (
		found Node
		ok    bool
	)
	n.res.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found, ok = Node{res: v}, true
		}
		return true
	})
	if !ok {
		return Node{}, zerr.With(domain.ErrMissingField, "field", key)
	}

	return found, nil
}

// Occurrences counts the members of an object node named key.
// Non-object nodes have none.
func (n Node) Occurrences(key string) int {
	if n.Kind() != KindObject {
		return 0
	}

	count := 0
	n.res.ForEach(func(k, _ gjson.Result) bool {
		if k.Str == key {
			count++
		}
		return true
	})
	return count
}

// Elements returns the items of an array node in order.
func (n Node) Elements() ([]Node, error) {
	if err := n.expect(KindArray); err != nil {
		return nil, err
	}

	items := n.res.Array()
	nodes := make([]Node, len(items))
	for i, item := range items {
		nodes[i] = Node{res: item}
	}
	return nodes, nil
}

// Text returns the value of a string node.
func (n Node) Text() (string, error) {
	if err := n.expect(KindString); err != nil {
		return "", err
	}
	return n.res.Str, nil
}

func (n Node) expect(k Kind) error {
	if got := n.Kind(); got != k {
		err := zerr.With(domain.ErrUnexpectedKind, "want", k.String())
		return zerr.With(err, "got", got.String())
	}
	return nil
}
