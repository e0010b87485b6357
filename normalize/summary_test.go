package normalize

import (
	"math"
	"testing"
)

func TestSingleRowGroupHasZeroSD(t *testing.T) {
	rows := []Normalized{
		{TargetName: "GeneA", Condition: "Control", Expression: 0.5},
	}

	summaries := Summarize(rows, MetricExpression)

	if len(summaries) != 1 {
		t.Fatalf("Expected 1 summary, got %d", len(summaries))
	}
	got := summaries[0]
	if got.N != 1 || got.SD != 0 {
		t.Errorf("Single-row group must report SD 0, got %+v", got)
	}
	if math.IsNaN(got.SD) || math.IsNaN(got.Mean) {
		t.Errorf("Summary must never contain NaN: %+v", got)
	}
}

func TestGroupMeanAndSampleSD(t *testing.T) {
	rows := []Normalized{
		{TargetName: "GeneA", Condition: "DrugX", Expression: 1.0},
		{TargetName: "GeneA", Condition: "DrugX", Expression: 3.0},
	}

	summaries := Summarize(rows, MetricExpression)

	if len(summaries) != 1 {
		t.Fatalf("Expected 1 summary, got %d", len(summaries))
	}
	got := summaries[0]
	if got.N != 2 || math.Abs(got.Mean-2.0) > tolerance {
		t.Errorf("Expected n=2 mean=2, got %+v", got)
	}
	if math.Abs(got.SD-math.Sqrt2) > tolerance {
		t.Errorf("Expected sample SD sqrt(2), got %f", got.SD)
	}
}

func TestUngroupedRowsAreOmitted(t *testing.T) {
	rows := []Normalized{
		{TargetName: "GeneA", Condition: "", Expression: 1.0},
		{TargetName: "GeneA", Condition: "Control", Expression: 2.0},
	}

	summaries := Summarize(rows, MetricExpression)

	if len(summaries) != 1 || summaries[0].Condition != "Control" || summaries[0].N != 1 {
		t.Errorf("Expected only the Control group, got %+v", summaries)
	}
}

func TestMetricSelection(t *testing.T) {
	rows := []Normalized{
		{TargetName: "GeneA", Condition: "Control", DeltaCt: 4.0, Expression: 0.0625},
	}

	summaries := Summarize(rows, MetricDeltaCt)

	if len(summaries) != 1 || math.Abs(summaries[0].Mean-4.0) > tolerance {
		t.Errorf("Expected the ΔCt metric to be summarized, got %+v", summaries)
	}
}

func TestSummariesAreSorted(t *testing.T) {
	rows := []Normalized{
		{TargetName: "GeneB", Condition: "DrugX", Expression: 1.0},
		{TargetName: "GeneA", Condition: "DrugX", Expression: 1.0},
		{TargetName: "GeneA", Condition: "Control", Expression: 1.0},
	}

	summaries := Summarize(rows, MetricExpression)

	if len(summaries) != 3 {
		t.Fatalf("Expected 3 summaries, got %d", len(summaries))
	}
	if summaries[0].TargetName != "GeneA" || summaries[0].Condition != "Control" ||
		summaries[1].TargetName != "GeneA" || summaries[1].Condition != "DrugX" ||
		summaries[2].TargetName != "GeneB" {
		t.Errorf("Unexpected order: %+v", summaries)
	}
}
