package crdt

import "errors"

// ErrInvalidRecord запись без id или с неканонической меткой updatedAt.
// Такие записи не участвуют в слиянии.
var ErrInvalidRecord = errors.New("invalid record")
