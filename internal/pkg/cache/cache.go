package cache

import "github.com/pkg/errors"

// ErrNotFound is returned by Singular.Get when no value has been cached yet.
var ErrNotFound = errors.New("cache: value not found")
