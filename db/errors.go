package db

import "errors"

// ErrNotFound is returned by repositories when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned by CreateUser when the username is already taken.
var ErrDuplicate = errors.New("record already exists")
