package frontmatter_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stamp/internal/adapters/frontmatter"
	"go.trai.ch/stamp/internal/core/domain"
)

const post = `---
title: "Hello, world"
date: 2024-01-02
draft: false
updatedOn: '2023-12-31T00:00:00.000Z'
---
# Hello

Body text.
`

func TestCodec_Parse(t *testing.T) {
	codec := frontmatter.NewCodec()

	doc, err := codec.Parse([]byte(post))
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "date", "draft", "updatedOn"}, doc.Header.Keys())
	assert.Equal(t, "# Hello\n\nBody text.\n", doc.Body)

	values, err := codec.Decode(doc.Header)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", values["title"])
	assert.Equal(t, false, values["draft"])
	assert.Equal(t, "2023-12-31T00:00:00.000Z", values["updatedOn"])
}

func TestCodec_Parse_Variants(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKeys []string
		wantBody string
	}{
		{
			name:     "no header",
			input:    "# Just a body\n",
			wantKeys: []string{},
			wantBody: "# Just a body\n",
		},
		{
			name:     "empty header",
			input:    "---\n---\nbody\n",
			wantKeys: []string{},
			wantBody: "body\n",
		},
		{
			name:     "comment-only header",
			input:    "---\n# nothing here\n---\nbody",
			wantKeys: []string{},
			wantBody: "body",
		},
		{
			name:     "closing delimiter at end of file",
			input:    "---\ntitle: x\n---",
			wantKeys: []string{"title"},
			wantBody: "",
		},
		{
			name:     "crlf line endings",
			input:    "---\r\ntitle: x\r\n---\r\nbody\r\n",
			wantKeys: []string{"title"},
			wantBody: "body\r\n",
		},
		{
			name:     "horizontal rule in body",
			input:    "---\ntitle: x\n---\nabove\n\n---\n\nbelow\n",
			wantKeys: []string{"title"},
			wantBody: "above\n\n---\n\nbelow\n",
		},
		{
			name:     "four dashes is not a header",
			input:    "----\ntitle: x\n",
			wantKeys: []string{},
			wantBody: "----\ntitle: x\n",
		},
		{
			name:     "nested values",
			input:    "---\ntags: [go, cache]\nauthor:\n  name: A\n---\nbody",
			wantKeys: []string{"tags", "author"},
			wantBody: "body",
		},
	}

	codec := frontmatter.NewCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := codec.Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeys, doc.Header.Keys())
			assert.Equal(t, tt.wantBody, doc.Body)
		})
	}
}

func TestCodec_Parse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "unterminated header",
			input:   "---\ntitle: x\nbody without closing\n",
			wantErr: domain.ErrUnterminatedHeader.Error(),
		},
		{
			name:    "header is a list",
			input:   "---\n- a\n- b\n---\nbody",
			wantErr: domain.ErrHeaderNotMapping.Error(),
		},
		{
			name:    "invalid yaml",
			input:   "---\ntitle: [unclosed\n---\nbody",
			wantErr: domain.ErrDocumentParseFailed.Error(),
		},
		{
			name:    "duplicate key",
			input:   "---\na: 1\ntitle: x\na: 2\n---\nbody",
			wantErr: domain.ErrDuplicateHeaderKey.Error(),
		},
	}

	codec := frontmatter.NewCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Parse([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCodec_Serialize_Rewrite(t *testing.T) {
	codec := frontmatter.NewCodec()

	doc, err := codec.Parse([]byte(post))
	require.NoError(t, err)

	doc.Header = doc.Header.With(domain.DefaultField, "2024-05-01T10:00:00.000Z")
	out, err := codec.Serialize(doc)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "rewrite", out)
}

func TestCodec_Serialize_AddsField(t *testing.T) {
	codec := frontmatter.NewCodec()

	doc, err := codec.Parse([]byte("# No header yet\n"))
	require.NoError(t, err)

	doc.Header = doc.Header.With(domain.DefaultField, "2024-05-01T10:00:00.000Z")
	out, err := codec.Serialize(doc)
	require.NoError(t, err)

	assert.Equal(t, "---\nupdatedOn: \"2024-05-01T10:00:00.000Z\"\n---\n# No header yet\n", string(out))
}

func TestCodec_RoundTrip(t *testing.T) {
	inputs := map[string]string{
		"post":           post,
		"no header":      "plain body\n",
		"nested":         "---\ntags: [go, cache]\nauthor:\n  name: A\n  links:\n    - https://example.com\n---\n\nbody\n",
		"body like head": "---\n---\n---\ntitle: not a header\n---\n",
		"no trailing nl": "---\ntitle: x\n---\nbody",
	}

	codec := frontmatter.NewCodec()
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			first, err := codec.Parse([]byte(input))
			require.NoError(t, err)

			out, err := codec.Serialize(first)
			require.NoError(t, err)

			second, err := codec.Parse(out)
			require.NoError(t, err)

			firstValues, err := codec.Decode(first.Header)
			require.NoError(t, err)
			secondValues, err := codec.Decode(second.Header)
			require.NoError(t, err)

			assert.Equal(t, firstValues, secondValues)
			assert.Equal(t, first.Header.Keys(), second.Header.Keys())
			assert.Equal(t, first.Body, second.Body)
		})
	}
}

func TestCodec_RewriteKeepsBody(t *testing.T) {
	codec := frontmatter.NewCodec()

	doc, err := codec.Parse([]byte(post))
	require.NoError(t, err)

	for _, stamp := range []string{"2024-05-01T10:00:00.000Z", "2025-01-01T00:00:00.000Z"} {
		doc.Header = doc.Header.With(domain.DefaultField, stamp)
		out, err := codec.Serialize(doc)
		require.NoError(t, err)

		doc, err = codec.Parse(out)
		require.NoError(t, err)
		assert.Equal(t, "# Hello\n\nBody text.\n", doc.Body)

		values, err := codec.Decode(doc.Header)
		require.NoError(t, err)
		assert.Equal(t, stamp, values[domain.DefaultField])
	}
}
