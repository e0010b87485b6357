package qpcr

import "testing"

func TestParseCT(t *testing.T) {
	for _, v := range []struct {
		Raw   string
		Value float64
		Valid bool
	}{
		{"Undetermined", 0, false},
		{"UNDETERMINED", 0, false},
		{"undetermined", 0, false},
		{"", 0, false},
		{"   ", 0, false},
		{"not a number", 0, false},
		{"NaN", 0, false},
		{"nan", 0, false},
		{"Inf", 0, false},
		{"+Inf", 0, false},
		{"-Inf", 0, false},
		{"24.551", 24.551, true},
		{" 18.0 ", 18.0, true},
		{"1e2", 100, true},
		{"0", 0, true},
	} {
		got := ParseCT(v.Raw)
		if got.Valid != v.Valid {
			t.Errorf("ParseCT(%q): valid = %v, expected %v", v.Raw, got.Valid, v.Valid)
			continue
		}
		if v.Valid && got.Float64 != v.Value {
			t.Errorf("ParseCT(%q) = %f, expected exactly %f", v.Raw, got.Float64, v.Value)
		}
	}
}

func TestCoerceIdempotent(t *testing.T) {
	m := Measurement{WellPosition: "A1", SampleName: "DrugX 1", TargetName: "GeneA", CTRaw: "22.5"}

	m.Coerce()
	if !m.CT.Valid || m.CT.Float64 != 22.5 {
		t.Fatalf("First coercion produced %+v, expected valid 22.5", m.CT)
	}

	// A second pass over an already-coerced row must not re-read the raw
	// field, even if it has since changed.
	m.CTRaw = UndeterminedCT
	m.Coerce()
	if !m.CT.Valid || m.CT.Float64 != 22.5 {
		t.Errorf("Second coercion produced %+v, expected the original valid 22.5", m.CT)
	}
}
