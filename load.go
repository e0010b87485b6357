package qpcr

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
)

// AmplificationPoint is one cycle of one well's amplification trace, from the
// flattened Amplification Data table.
type AmplificationPoint struct {
	Well       string  `csv:"Well"`
	TargetName string  `csv:"Target Name"`
	Cycle      int     `csv:"Cycle"`
	DeltaRn    float64 `csv:"Delta Rn"`
}

// MeltPoint is one temperature step of one well's melt curve.
type MeltPoint struct {
	Well        string  `csv:"Well"`
	Temperature float64 `csv:"Temperature"`
	Derivative  float64 `csv:"Derivative"`
}

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader. Exports arrive comma- or tab-delimited depending
// on the instrument's export locale, so the loaders don't assume either.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// LoadResults reads a flattened Results table (Well Position, Sample Name,
// Target Name, CT) into Measurements. CT cells are kept raw here; coercion is
// the pipeline's job. A duplicate (well, target) pair means the export is
// malformed and is an error.
func LoadResults(path string) ([]Measurement, error) {
	fileBytes, err := readTable(path)
	if err != nil {
		return nil, err
	}

	records := []Measurement{}
	if err := unmarshalTable(fileBytes, &records); err != nil {
		return nil, err
	}

	type wellTarget struct {
		WellPosition string
		TargetName   string
	}

	seen := make(map[wellTarget]struct{})
	for _, record := range records {
		key := wellTarget{WellPosition: record.WellPosition, TargetName: record.TargetName}
		if _, exists := seen[key]; exists {
			return nil, fmt.Errorf("duplicate reading for well %s target %s in %s", record.WellPosition, record.TargetName, path)
		}
		seen[key] = struct{}{}
	}

	return records, nil
}

// LoadAmplification reads a flattened Amplification Data table. The ΔRn
// column is accepted both spelled out ("Delta Rn") and with the Greek letter
// the vendor uses.
func LoadAmplification(path string) ([]AmplificationPoint, error) {
	fileBytes, err := readTable(path)
	if err != nil {
		return nil, err
	}

	// Fold the vendor's header spelling into the one the struct tag names.
	fileBytes = bytes.Replace(fileBytes, []byte("ΔRn"), []byte("Delta Rn"), 1)

	records := []AmplificationPoint{}
	if err := unmarshalTable(fileBytes, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// LoadMelt reads a flattened Melt Curve Raw Data table.
func LoadMelt(path string) ([]MeltPoint, error) {
	fileBytes, err := readTable(path)
	if err != nil {
		return nil, err
	}

	records := []MeltPoint{}
	if err := unmarshalTable(fileBytes, &records); err != nil {
		return nil, err
	}

	return records, nil
}

func readTable(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decompressedReader(f)
	if err != nil {
		return nil, err
	}

	return io.ReadAll(r)
}

func unmarshalTable(fileBytes []byte, out interface{}) error {
	delimiter := DetermineDelimiter(bytes.NewReader(fileBytes))

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delimiter
		r.LazyQuotes = true
		return r
	})

	return gocsv.UnmarshalBytes(fileBytes, out)
}
