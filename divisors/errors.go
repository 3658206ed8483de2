package divisors

import (
	"errors"
	"fmt"
)

// ErrNonPositive is returned for inputs below 1, which have no divisor list.
var ErrNonPositive = errors.New("number must be positive")

// MismatchError reports the first number whose sequential and parallel
// divisor lists differ. It means the parallel path is broken.
type MismatchError struct {
	Index      int
	Number     int
	Sequential []int
	Parallel   []int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("divisors of %d (index %d) differ: sequential %v, parallel %v",
		e.Number, e.Index, e.Sequential, e.Parallel)
}
