package normalize

import (
	"fmt"
	"sort"

	"github.com/gonum/stat"
)

// Metric selects which normalized quantity a summary describes.
type Metric int

const (
	MetricExpression Metric = iota
	MetricDeltaCt
)

func ParseMetric(metric string) (Metric, error) {
	switch metric {
	case "expression":
		return MetricExpression, nil
	case "deltact":
		return MetricDeltaCt, nil
	}

	return MetricExpression, fmt.Errorf("unknown metric %q; valid metrics are expression and deltact", metric)
}

// Summary is the per-gene, per-condition aggregate the UI layer draws as bars
// with error whiskers.
type Summary struct {
	TargetName string
	Condition  string
	N          int
	Mean       float64
	SD         float64
}

// Summarize groups normalized rows by gene and condition and reports count,
// mean, and sample standard deviation of the chosen metric. Rows whose sample
// name yielded no condition stay out of every group. A single-row group
// reports SD 0 so error-bar consumers never see NaN. Output is sorted by gene
// then condition.
func Summarize(rows []Normalized, metric Metric) []Summary {
	type geneCondition struct {
		TargetName string
		Condition  string
	}

	groups := make(map[geneCondition][]float64)
	for _, row := range rows {
		if row.Condition == "" {
			continue
		}

		value := row.Expression
		if metric == MetricDeltaCt {
			value = row.DeltaCt
		}

		key := geneCondition{TargetName: row.TargetName, Condition: row.Condition}
		groups[key] = append(groups[key], value)
	}

	out := make([]Summary, 0, len(groups))
	for key, values := range groups {
		mean, sd := stat.MeanStdDev(values, nil)
		if len(values) < 2 {
			sd = 0
		}

		out = append(out, Summary{
			TargetName: key.TargetName,
			Condition:  key.Condition,
			N:          len(values),
			Mean:       mean,
			SD:         sd,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].TargetName != out[j].TargetName {
			return out[i].TargetName < out[j].TargetName
		}
		return out[i].Condition < out[j].Condition
	})

	return out
}
