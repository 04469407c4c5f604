package partition

import "errors"

// ErrUnknownKey is returned by QueryKey when no value has ever been
// written under the given attribute key.
var ErrUnknownKey = errors.New("partition: unknown attribute key")
