package history

import "errors"

var (
	// ErrNoRecords indicates the record store holds no periods yet
	ErrNoRecords = errors.New("no historical records available")
)
