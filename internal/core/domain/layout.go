package domain

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "stamp.yaml"

	// CacheFileName is the name of the content hash cache file.
	CacheFileName = ".content-hash-cache.json"

	// ContentDirName is the default content root, relative to the working directory.
	ContentDirName = "posts"

	// DefaultField is the header field rewritten with the update timestamp.
	DefaultField = "updatedOn"

	// TimestampLayout formats update timestamps as UTC ISO-8601 with milliseconds.
	TimestampLayout = "2006-01-02T15:04:05.000Z"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultExtensions returns the document extensions discovered by default.
func DefaultExtensions() []string {
	return []string{".md", ".mdx"}
}

// DefaultExcludes returns the names always skipped during discovery.
func DefaultExcludes() []string {
	return []string{".git", ".jj", "node_modules"}
}
