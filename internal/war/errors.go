package war

import "errors"

// ErrInvalidMatches indicates a tournament asked for fewer than one match.
var ErrInvalidMatches = errors.New("war: match count must be positive")
