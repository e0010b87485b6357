package qpcr

import "gopkg.in/guregu/null.v3"

// Measurement is one well/target reading from the instrument's flattened
// Results table. CTRaw preserves the exported cell verbatim (including the
// undetermined sentinel); CT is its coerced numeric value.
type Measurement struct {
	WellPosition string     `csv:"Well Position"`
	SampleName   string     `csv:"Sample Name"`
	TargetName   string     `csv:"Target Name"`
	CTRaw        string     `csv:"CT"`
	CT           null.Float `csv:"-"`
}

// Coerce fills CT from CTRaw. A row whose CT is already valid is left alone,
// so re-running a pipeline over previously coerced rows changes nothing.
func (m *Measurement) Coerce() {
	if m.CT.Valid {
		return
	}

	m.CT = ParseCT(m.CTRaw)
}
