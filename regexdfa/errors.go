// SPDX-License-Identifier: MIT
package regexdfa

import "errors"

// ErrInvalidRegex is returned when pattern cannot be parsed: the spec's
// InvalidRegex error kind. Wrapped with %w to carry the offending position.
var ErrInvalidRegex = errors.New("regexdfa: invalid regex")
