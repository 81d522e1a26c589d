package services

import "errors"

// ErrNotFound is returned when a delete or lookup matches no row owned by
// the acting user.
var ErrNotFound = errors.New("not found")
