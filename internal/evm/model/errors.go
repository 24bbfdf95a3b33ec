package model

import "errors"

var (
	// ErrDuplicateHash reports a write of a hash that is already stored.
	ErrDuplicateHash = errors.New("duplicate transaction hash")
	// ErrWriteFailure reports that the primary store could not accept a record.
	ErrWriteFailure = errors.New("primary store write failed")
	// ErrPartialArchive reports a record that reached the primary store but not the archive.
	ErrPartialArchive = errors.New("archive write failed after primary write")
	// ErrNotFound reports a lookup that missed every tier.
	ErrNotFound = errors.New("transaction not found")
	// ErrInvalidPage reports search pagination outside the accepted range.
	ErrInvalidPage = errors.New("invalid page parameters")
	// ErrStoreUnavailable reports that the last tier of a lookup failed.
	ErrStoreUnavailable = errors.New("store unavailable")
)
