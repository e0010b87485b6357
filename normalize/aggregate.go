// Package normalize turns raw per-well CT measurements into housekeeping-
// normalized relative expression values (ΔCt and 2^-ΔCt) and summary
// statistics. Every run is a pure function of its inputs; nothing is cached
// between gene-selection changes.
package normalize

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/prekoviclab/qpcr"
	"gopkg.in/guregu/null.v3"
)

// Mode selects how multiple reference genes combine into one housekeeping
// value per sample.
type Mode int

const (
	// ArithmeticMean averages the per-gene CT means directly.
	ArithmeticMean Mode = iota

	// GeometricMean exponentiates the mean of the logs of the per-gene CT
	// means. CT differences are log-scale quantities, so this is the usual
	// choice when more than one housekeeping gene is selected.
	GeometricMean
)

func (m Mode) String() string {
	switch m {
	case ArithmeticMean:
		return "arithmetic-mean"
	case GeometricMean:
		return "geometric-mean"
	}

	return "unknown"
}

func ParseMode(mode string) (Mode, error) {
	switch mode {
	case "arithmetic-mean":
		return ArithmeticMean, nil
	case "geometric-mean":
		return GeometricMean, nil
	}

	return ArithmeticMean, fmt.Errorf("unknown aggregation mode %q; valid modes are arithmetic-mean and geometric-mean", mode)
}

// Reference computes one housekeeping value per sample from that sample's
// reference-gene wells. Wells with a missing CT are dropped. Replicate wells
// of the same reference gene are averaged first, so a gene with more wells
// doesn't outweigh the others. A sample whose reference wells are all missing
// gets an invalid value; a sample with no reference wells at all doesn't
// appear in the map. Output depends only on the multiset of readings, never
// on row order.
func Reference(rows []qpcr.Measurement, referenceGenes []string, mode Mode) map[string]null.Float {
	refSet := make(map[string]struct{})
	for _, gene := range referenceGenes {
		refSet[gene] = struct{}{}
	}

	// map[sample] => map[gene] => that gene's well readings
	bySample := make(map[string]map[string][]float64)
	samplesSeen := make(map[string]struct{})

	for _, row := range rows {
		if _, isRef := refSet[row.TargetName]; !isRef {
			continue
		}

		samplesSeen[row.SampleName] = struct{}{}

		row.Coerce()
		if !row.CT.Valid {
			continue
		}

		genes := bySample[row.SampleName]
		if genes == nil {
			genes = make(map[string][]float64)
		}
		genes[row.TargetName] = append(genes[row.TargetName], row.CT.Float64)
		bySample[row.SampleName] = genes
	}

	out := make(map[string]null.Float)
	for sample := range samplesSeen {
		out[sample] = aggregate(bySample[sample], mode)
	}

	return out
}

func aggregate(genes map[string][]float64, mode Mode) null.Float {
	// Sum in sorted-gene order rather than map order, so repeated runs over
	// the same readings reproduce bit-for-bit.
	names := make([]string, 0, len(genes))
	for gene := range genes {
		names = append(names, gene)
	}
	sort.Strings(names)

	perGene := make([]float64, 0, len(names))
	for _, gene := range names {
		mean, err := stats.Mean(genes[gene])
		if err != nil {
			continue
		}
		perGene = append(perGene, mean)
	}

	if mode == GeometricMean {
		// CT values are positive in practice; anything non-positive is
		// treated as missing rather than handed to math.Log.
		logs := make([]float64, 0, len(perGene))
		for _, v := range perGene {
			if v <= 0 {
				continue
			}
			logs = append(logs, math.Log(v))
		}
		perGene = logs
	}

	if len(perGene) == 0 {
		return null.NewFloat(0, false)
	}

	mean, err := stats.Mean(perGene)
	if err != nil {
		return null.NewFloat(0, false)
	}

	if mode == GeometricMean {
		mean = math.Exp(mean)
	}

	return null.FloatFrom(mean)
}
