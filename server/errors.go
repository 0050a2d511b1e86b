package server

import "errors"

// Sentinel errors returned by store.Update closures; handlers map them to
// envelope status codes at the boundary.
var (
	errNotFound      = errors.New("not found")
	errAlreadyExists = errors.New("already exists")
	errEmptyCart     = errors.New("cart is empty")
)
