package qpcr

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// UndeterminedCT is the sentinel the instrument writes into the CT column when
// a well's signal never crossed the detection threshold.
const UndeterminedCT = "Undetermined"

// ParseCT converts one raw CT cell into a nullable float. The undetermined
// sentinel (any casing), empty cells, and values that don't parse as a number
// all yield an invalid float rather than an error, so a single bad well never
// aborts a run.
func ParseCT(raw string) null.Float {
	raw = strings.TrimSpace(raw)

	if raw == "" || strings.EqualFold(raw, UndeterminedCT) {
		return null.NewFloat(0, false)
	}

	// ParseFloat accepts "NaN" and "Inf" spellings; a non-finite CT is a
	// missing reading, never a value downstream arithmetic may see.
	ct, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(ct) || math.IsInf(ct, 0) {
		return null.NewFloat(0, false)
	}

	return null.FloatFrom(ct)
}
