package repo

import "errors"

var (
	// ErrNotFound is returned when a lookup by id has no match anywhere
	// along the path (user, post, comment, like, list, item).
	ErrNotFound = errors.New("not found")
	// ErrDuplicateLike is returned when a user likes the same post or
	// comment twice. The existing like is left untouched.
	ErrDuplicateLike = errors.New("already liked")
)
