package scaler

import (
	"fmt"
	"math"

	"github.com/uyouii/timeseries-standardization/common"
	"github.com/uyouii/timeseries-standardization/model"
	"github.com/uyouii/timeseries-standardization/utils"
	"gonum.org/v1/gonum/floats"
)

func checkDivisor(mode model.Mode, name string, divisor float64) error {
	if divisor == 0 {
		return fmt.Errorf("%v standardize, %s is 0: %w", mode.Name(), name, common.ErrorDivisionByZero)
	}
	if !utils.IsFinite(divisor) {
		return fmt.Errorf("%v standardize, %s is %v: %w", mode.Name(), name, divisor, common.ErrorInvalidInput)
	}
	return nil
}

func checkFactor(name string, factor float64) error {
	if !utils.IsFinite(factor) {
		return fmt.Errorf("%s is %v: %w", name, factor, common.ErrorInvalidInput)
	}
	return nil
}

// Round rounds every value of seq to DisplayPrecision digits.
func Round(seq model.Sequence) model.Sequence {
	return seq.WithValues(utils.FormatFloats(seq.Floats(), DisplayPrecision))
}

// MaxAbsDiff is the largest element wise distance between a and b.
func MaxAbsDiff(a, b model.Sequence) (float64, error) {
	if a == nil || b == nil || a.Len() != b.Len() {
		return 0, fmt.Errorf("sequences are not comparable: %w", common.ErrorInvalidInput)
	}
	if a.Len() == 0 {
		return 0, nil
	}
	diff := a.Floats()
	floats.Sub(diff, b.Floats())
	return math.Max(math.Abs(floats.Max(diff)), math.Abs(floats.Min(diff))), nil
}

// EqualApprox reports whether a and b hold the same values within tol.
func EqualApprox(a, b model.Sequence, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return floats.EqualApprox(a.Floats(), b.Floats(), tol)
}
