package qpcr

import "strings"

// MeltCurveForWell returns the melt-curve points recorded for one well, in
// input order. Well matching is case-insensitive, since people type "a1" as
// often as "A1". A well with no recorded points yields an empty, non-nil
// slice.
func MeltCurveForWell(points []MeltPoint, well string) []MeltPoint {
	out := []MeltPoint{}

	for _, p := range points {
		if strings.EqualFold(p.Well, well) {
			out = append(out, p)
		}
	}

	return out
}

// AmplificationForTarget returns the amplification points recorded for one
// target gene across all wells, in input order.
func AmplificationForTarget(points []AmplificationPoint, targetName string) []AmplificationPoint {
	out := []AmplificationPoint{}

	for _, p := range points {
		if p.TargetName == targetName {
			out = append(out, p)
		}
	}

	return out
}
