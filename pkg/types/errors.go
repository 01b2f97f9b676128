package types

import "errors"

// ErrConfiguration is the root of every deterministic input error, such as mismatched
// series lengths, an invalid depth or a missing level. Retrying never helps.
var ErrConfiguration = errors.New("configuration error")
