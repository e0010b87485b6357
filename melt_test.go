package qpcr

import "testing"

func TestMeltCurveForWell(t *testing.T) {
	points := []MeltPoint{
		{Well: "A1", Temperature: 60.0, Derivative: 0.12},
		{Well: "B1", Temperature: 60.0, Derivative: 0.02},
		{Well: "A1", Temperature: 60.5, Derivative: 0.19},
	}

	got := MeltCurveForWell(points, "a1")
	if len(got) != 2 || got[0].Derivative != 0.12 || got[1].Temperature != 60.5 {
		t.Errorf("Unexpected trace for well A1: %+v", got)
	}
}

func TestMeltCurveForAbsentWell(t *testing.T) {
	points := []MeltPoint{
		{Well: "A1", Temperature: 60.0, Derivative: 0.12},
	}

	got := MeltCurveForWell(points, "H12")
	if got == nil {
		t.Fatal("Expected an empty, non-nil slice for a well with no data")
	}
	if len(got) != 0 {
		t.Errorf("Expected no points for well H12, got %+v", got)
	}
}

func TestAmplificationForTarget(t *testing.T) {
	points := []AmplificationPoint{
		{Well: "A1", TargetName: "GeneA", Cycle: 1, DeltaRn: 0.002},
		{Well: "A2", TargetName: "GeneB", Cycle: 1, DeltaRn: 0.001},
		{Well: "A1", TargetName: "GeneA", Cycle: 2, DeltaRn: 0.004},
	}

	got := AmplificationForTarget(points, "GeneA")
	if len(got) != 2 || got[1].Cycle != 2 {
		t.Errorf("Unexpected points for GeneA: %+v", got)
	}

	if got := AmplificationForTarget(points, "GeneC"); got == nil || len(got) != 0 {
		t.Errorf("Expected an empty, non-nil slice for an absent target, got %+v", got)
	}
}
