// FILE: internal/repository/contract/errors.go
package contract

import "errors"

// ErrDuplicate is returned by Create when a store-level unique constraint
// rejects the row. It is what closes the check-then-create races.
var ErrDuplicate = errors.New("duplicate record")
