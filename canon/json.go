package canon

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrEncode wraps failures to serialize or parse a node.
var ErrEncode = errors.New("canon: cannot encode node")

// JSON serializes nodes of type N to JSON text used as a canonical key.
//
// encoding/json writes struct fields in declaration order and map keys
// sorted, so equal values of one type always encode identically. Slices keep
// their order: sort any slice whose order carries no meaning before it
// reaches the node, or the encoding will tell equal states apart.
//
// encoding/json skips unexported fields, which would give every value of
// struct{ floor int } the key "{}". Encode therefore rejects any type that
// reaches a struct with an unexported field, unless a json.Marshaler or
// encoding.TextMarshaler on the way takes over its encoding. Dynamic types
// behind interface fields are not inspected.
type JSON[N any] struct{}

// Encode returns the canonical JSON text of node.
func (JSON[N]) Encode(node N) (string, error) {
	if err := checkEncodable(reflect.TypeOf(any(node))); err != nil {
		return "", err
	}
	raw, err := json.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return string(raw), nil
}

// Decode parses text produced by Encode back into a node.
func (JSON[N]) Decode(text string) (N, error) {
	var node N
	if err := json.Unmarshal([]byte(text), &node); err != nil {
		return node, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return node, nil
}

// MustKey returns a KeyFunc built on Encode. It panics if a node cannot be
// encoded; a node type json cannot marshal (channels, funcs, cyclic
// pointers) is a programming error, not a runtime condition.
func (c JSON[N]) MustKey() KeyFunc[N, string] {
	return func(node N) string {
		key, err := c.Encode(node)
		if err != nil {
			panic(err)
		}
		return key
	}
}

var (
	marshalerType     = reflect.TypeOf((*json.Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()

	// checked caches the result of walkType per type; a nil value means encodable.
	checked sync.Map
)

// checkEncodable reports ErrEncode if json would silently drop part of t.
func checkEncodable(t reflect.Type) error {
	if t == nil {
		return nil
	}
	if v, ok := checked.Load(t); ok {
		if v == nil {
			return nil
		}
		return v.(error)
	}
	err := walkType(t, make(map[reflect.Type]bool))
	checked.Store(t, err)
	return err
}

func walkType(t reflect.Type, seen map[reflect.Type]bool) error {
	if seen[t] {
		return nil
	}
	seen[t] = true
	if marshals(t) {
		return nil
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return walkType(t.Elem(), seen)
	case reflect.Map:
		if err := walkType(t.Key(), seen); err != nil {
			return err
		}
		return walkType(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			// json promotes the exported fields of an embedded struct, even an unexported one
			if !f.IsExported() && !(f.Anonymous && ft.Kind() == reflect.Struct) {
				return fmt.Errorf("%w: %v has unexported field %s", ErrEncode, t, f.Name)
			}
			if err := walkType(f.Type, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

func marshals(t reflect.Type) bool {
	pt := reflect.PointerTo(t)
	return t.Implements(marshalerType) || t.Implements(textMarshalerType) ||
		pt.Implements(marshalerType) || pt.Implements(textMarshalerType)
}
