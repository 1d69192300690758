package id

import "github.com/oklog/ulid/v2"

// New returns a ULID string. IDs from one process sort in creation order,
// including IDs made within the same millisecond.
func New() string {
	return ulid.Make().String()
}
