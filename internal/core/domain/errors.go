package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidIdentityMode is returned when the identity mode is neither "basename" nor "path".
	ErrInvalidIdentityMode = zerr.New("invalid identity mode, expected 'basename' or 'path'")

	// ErrInvalidHashAlgorithm is returned when the hash algorithm is neither "xxhash" nor "md5".
	ErrInvalidHashAlgorithm = zerr.New("invalid hash algorithm, expected 'xxhash' or 'md5'")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = zerr.New("workers must be at least 1")

	// ErrEmptyField is returned when the timestamp field name is empty.
	ErrEmptyField = zerr.New("timestamp field name must not be empty")

	// ErrContentRootNotFound is returned when the content root does not exist or is not a directory.
	ErrContentRootNotFound = zerr.New("content root not found")

	// ErrDiscoveryFailed is returned when the document discovery walk fails.
	ErrDiscoveryFailed = zerr.New("failed to discover documents")

	// ErrCacheMarshalFailed is returned when the cache cannot be marshaled.
	ErrCacheMarshalFailed = zerr.New("failed to marshal content cache")

	// ErrCacheWriteFailed is returned when the cache file cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write content cache")

	// ErrCacheCreateFailed is returned when the cache file directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create content cache directory")

	// ErrCacheRemoveFailed is returned when the cache file cannot be removed.
	ErrCacheRemoveFailed = zerr.New("failed to remove content cache")

	// ErrDocumentReadFailed is returned when a document cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrDocumentParseFailed is returned when a document header cannot be parsed.
	ErrDocumentParseFailed = zerr.New("failed to parse document header")

	// ErrDocumentEncodeFailed is returned when a document header cannot be serialized.
	ErrDocumentEncodeFailed = zerr.New("failed to serialize document header")

	// ErrDocumentWriteFailed is returned when a rewritten document cannot be written.
	ErrDocumentWriteFailed = zerr.New("failed to write document")

	// ErrUnterminatedHeader is returned when a document opens a header block but never closes it.
	ErrUnterminatedHeader = zerr.New("header block is not terminated")

	// ErrHeaderNotMapping is returned when a header block is valid YAML but not a key-value mapping.
	ErrHeaderNotMapping = zerr.New("header block is not a mapping")

	// ErrDuplicateHeaderKey is returned when a header block defines the same key twice.
	ErrDuplicateHeaderKey = zerr.New("header block defines a key more than once")

	// ErrWatcherFailed is returned when the file system watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start watcher")
)
