package ports

// Previewer renders the difference between a document and its rewrite.
type Previewer interface {
	// Diff returns a line diff of before and after labelled with path.
	// It returns an empty string when the two are equal.
	Diff(path string, before, after []byte) string
}
