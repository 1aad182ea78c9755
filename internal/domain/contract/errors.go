package contract

import "errors"

// ErrNotFound is returned by repositories when a lookup matches no document.
var ErrNotFound = errors.New("document not found")
