package hist

import "errors"

// ErrConfig is returned when histogram parameters are invalid: a high
// bound below the low bound, a zero increment, or a worker count below
// one. Configuration is validated eagerly, before any scanning starts.
var ErrConfig = errors.New("invalid histogram configuration")
