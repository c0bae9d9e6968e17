package model

import (
	"fmt"

	"github.com/uyouii/timeseries-standardization/common"
)

// Mode selects the standardization method.
type Mode byte

const (
	ModeAverage Mode = 'a'
	ModeMax     Mode = 'm'
	ModeSum     Mode = 's'
	ModeZScore  Mode = 'z'
)

func AllModes() []Mode {
	return []Mode{ModeAverage, ModeMax, ModeSum, ModeZScore}
}

func ParseMode(tag string) (Mode, error) {
	if len(tag) == 1 {
		if mode := Mode(tag[0]); mode.Valid() {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("mode %q, expect one of a, m, s, z: %w", tag, common.ErrorInvalidMode)
}

func (m Mode) Valid() bool {
	switch m {
	case ModeAverage, ModeMax, ModeSum, ModeZScore:
		return true
	}
	return false
}

func (m Mode) String() string {
	return string(rune(m))
}

// Name is the long name, used in logs.
func (m Mode) Name() string {
	switch m {
	case ModeAverage:
		return "average"
	case ModeMax:
		return "maximum"
	case ModeSum:
		return "sum"
	case ModeZScore:
		return "z-score"
	}
	return fmt.Sprintf("unknown(%d)", byte(m))
}
