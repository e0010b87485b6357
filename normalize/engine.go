package normalize

import (
	"errors"
	"math"

	"github.com/prekoviclab/qpcr"
	"github.com/prekoviclab/qpcr/samplename"
	"gopkg.in/guregu/null.v3"
)

// ErrNoReferenceGenes is returned before any work happens when the caller
// supplies an empty reference-gene set. Nothing can be normalized without at
// least one housekeeping gene, so callers are expected to block the run
// rather than hit this.
var ErrNoReferenceGenes = errors.New("normalize: at least one reference gene is required")

// Normalized is one target-of-interest well with its housekeeping-normalized
// expression. Only fully computed rows exist: a well with a missing CT, or
// whose sample resolved no usable reference value, is excluded outright
// rather than padded with partial numbers.
type Normalized struct {
	SampleName   string  `csv:"Sample Name"`
	Condition    string  `csv:"Condition"`
	Replicate    string  `csv:"Replicate"`
	WellPosition string  `csv:"Well Position"`
	TargetName   string  `csv:"Target Name"`
	CT           float64 `csv:"CT"`
	HKReference  float64 `csv:"HK Reference"`
	DeltaCt      float64 `csv:"Delta Ct"`
	Expression   float64 `csv:"Expression"`
}

// Run executes one full normalization pass: coerce raw CTs, aggregate the
// per-sample housekeeping reference, and compute ΔCt = CT - reference and
// expression = 2^-ΔCt for every target-of-interest well. Samples lacking a
// usable reference drop out silently so one bad sample never aborts the rest
// of the plate. The per-sample reference map is returned alongside the
// normalized rows. An empty target set yields an empty, valid result.
func Run(rows []qpcr.Measurement, referenceGenes, targetGenes []string, mode Mode, layout samplename.Layout) ([]Normalized, map[string]null.Float, error) {
	if len(referenceGenes) == 0 {
		return nil, nil, ErrNoReferenceGenes
	}

	split := layout.Split
	if split == nil {
		split = func(string) samplename.Label { return samplename.Label{} }
	}

	reference := Reference(rows, referenceGenes, mode)

	targetSet := make(map[string]struct{})
	for _, gene := range targetGenes {
		targetSet[gene] = struct{}{}
	}

	out := make([]Normalized, 0, len(rows))
	for _, row := range rows {
		if _, isTarget := targetSet[row.TargetName]; !isTarget {
			continue
		}

		row.Coerce()
		if !row.CT.Valid {
			continue
		}

		hk, exists := reference[row.SampleName]
		if !exists || !hk.Valid {
			continue
		}

		label := split(row.SampleName)
		deltaCt := row.CT.Float64 - hk.Float64

		out = append(out, Normalized{
			SampleName:   row.SampleName,
			Condition:    label.Condition,
			Replicate:    label.Replicate,
			WellPosition: row.WellPosition,
			TargetName:   row.TargetName,
			CT:           row.CT.Float64,
			HKReference:  hk.Float64,
			DeltaCt:      deltaCt,
			Expression:   math.Exp2(-deltaCt),
		})
	}

	return out, reference, nil
}
