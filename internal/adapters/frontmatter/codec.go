// Package frontmatter implements the document codec for YAML front matter.
//
// A document opens with a line holding only "---", followed by a YAML
// mapping, followed by a closing "---" line. Everything after the closing
// line is the body and is kept byte for byte.
package frontmatter

import (
	"bytes"
	"strings"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

var _ ports.DocumentCodec = (*Codec)(nil)

// Codec implements ports.DocumentCodec. Parsed header values keep their YAML
// nodes so that serializing an untouched field reproduces its style and comments.
type Codec struct{}

// field is the header value stored for a parsed key.
type field struct {
	key   *yaml.Node
	value *yaml.Node
}

// NewCodec creates a new Codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse splits data into its front matter and body.
func (c *Codec) Parse(data []byte) (domain.Document, error) {
	text := string(data)

	headerText, body, found, err := split(text)
	if err != nil {
		return domain.Document{}, err
	}
	if !found {
		return domain.Document{Body: text}, nil
	}

	header, err := decodeHeader(headerText)
	if err != nil {
		return domain.Document{}, err
	}

	return domain.Document{Header: header, Body: body}, nil
}

// Serialize renders doc as front matter followed by the body.
func (c *Codec) Serialize(doc domain.Document) ([]byte, error) {
	var buf bytes.Buffer

	if doc.Header.Len() == 0 {
		// A body that looks like a header block needs an explicit empty header to survive a parse.
		if _, _, found, err := split(doc.Body); found || err != nil {
			buf.WriteString(delimiter + "\n" + delimiter + "\n")
		}
		buf.WriteString(doc.Body)
		return buf.Bytes(), nil
	}

	mapping, err := encodeHeader(doc.Header)
	if err != nil {
		return nil, err
	}

	buf.WriteString(delimiter + "\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDocumentEncodeFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrDocumentEncodeFailed.Error())
	}
	buf.WriteString(delimiter + "\n")
	buf.WriteString(doc.Body)

	return buf.Bytes(), nil
}

// Decode converts header values into plain Go values.
func (c *Codec) Decode(h domain.Header) (map[string]any, error) {
	out := make(map[string]any, h.Len())
	for _, f := range h.Fields() {
		parsed, ok := f.Value.(field)
		if !ok {
			out[f.Key] = f.Value
			continue
		}
		var v any
		if err := parsed.value.Decode(&v); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentParseFailed.Error()), "field", f.Key)
		}
		out[f.Key] = v
	}
	return out, nil
}

// split separates the header text from the body. found is false when text
// does not open with a delimiter line.
func split(text string) (header, body string, found bool, err error) {
	first, rest, ok := cutLine(text)
	if !ok || strings.TrimRight(first, " \t\r") != delimiter {
		return "", "", false, nil
	}

	offset := len(text) - len(rest)
	for len(rest) > 0 {
		line, next, _ := cutLine(rest)
		if strings.TrimRight(line, " \t\r") == delimiter {
			start := len(text) - len(rest)
			return text[offset:start], next, true, nil
		}
		rest = next
	}

	return "", "", false, domain.ErrUnterminatedHeader
}

// cutLine returns the first line of s without its newline and the remainder.
// ok is false when s holds no newline and is therefore a trailing fragment.
func cutLine(s string) (line, rest string, ok bool) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func decodeHeader(text string) (domain.Header, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return domain.Header{}, zerr.Wrap(err, domain.ErrDocumentParseFailed.Error())
	}

	// Blank or comment-only front matter.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return domain.Header{}, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return domain.Header{}, nil
	}
	if root.Kind != yaml.MappingNode {
		return domain.Header{}, domain.ErrHeaderNotMapping
	}

	fields := make([]domain.Field, 0, len(root.Content)/2)
	seen := make(map[string]int, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if line, dup := seen[key.Value]; dup {
			return domain.Header{}, zerr.With(zerr.With(domain.ErrDuplicateHeaderKey, "key", key.Value), "first_line", line)
		}
		seen[key.Value] = key.Line
		fields = append(fields, domain.Field{
			Key:   key.Value,
			Value: field{key: key, value: value},
		})
	}
	return domain.NewHeader(fields...), nil
}

func encodeHeader(h domain.Header) (*yaml.Node, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, f := range h.Fields() {
		if parsed, ok := f.Value.(field); ok {
			mapping.Content = append(mapping.Content, parsed.key, parsed.value)
			continue
		}

		value := &yaml.Node{}
		if err := value.Encode(f.Value); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDocumentEncodeFailed.Error()), "field", f.Key)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}
		mapping.Content = append(mapping.Content, key, value)
	}

	return mapping, nil
}
