package domain

import "slices"

// Field is one header key with its value. The value is opaque to the core;
// the header codec decides its concrete type.
type Field struct {
	Key   string
	Value any
}

// Header is an ordered list of header fields with unique keys.
type Header struct {
	fields []Field
}

// NewHeader builds a header from fields. A later field replaces an earlier one with the same key.
func NewHeader(fields ...Field) Header {
	var h Header
	for _, f := range fields {
		h = h.With(f.Key, f.Value)
	}
	return h
}

// Len returns the number of fields.
func (h Header) Len() int {
	return len(h.fields)
}

// Fields returns a copy of the fields in order.
func (h Header) Fields() []Field {
	return slices.Clone(h.fields)
}

// Keys returns the field keys in order.
func (h Header) Keys() []string {
	keys := make([]string, len(h.fields))
	for i, f := range h.fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key.
func (h Header) Get(key string) (any, bool) {
	for _, f := range h.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// With returns a copy of h where key holds value. An existing key keeps its
// position; a new key is appended.
func (h Header) With(key string, value any) Header {
	fields := slices.Clone(h.fields)
	for i := range fields {
		if fields[i].Key == key {
			fields[i].Value = value
			return Header{fields: fields}
		}
	}
	return Header{fields: append(fields, Field{Key: key, Value: value})}
}

// Document is a parsed content file: a header and the body that follows it.
type Document struct {
	Header Header
	// Body is the text after the header block, byte for byte.
	Body string
}
