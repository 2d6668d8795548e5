package ports

import "go.trai.ch/stamp/internal/core/domain"

// DocumentCodec splits a document into header and body and joins them back.
//
//go:generate mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type DocumentCodec interface {
	// Parse splits data into a header and a body. A document without a header
	// block has an empty header and its whole text as body.
	Parse(data []byte) (domain.Document, error)

	// Serialize renders doc. Parsing the result yields the same header and body.
	Serialize(doc domain.Document) ([]byte, error)
}
