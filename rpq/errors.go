// SPDX-License-Identifier: MIT
package rpq

import (
	"errors"
	"fmt"
)

// ErrNilGraph is returned when TensorRPQ/MSBFSRPQ is called with a nil graph.
var ErrNilGraph = errors.New("rpq: nil graph")

func rpqErrorf(op string, err error) error {
	return fmt.Errorf("rpq.%s: %w", op, err)
}
