// Package samplename extracts condition and replicate labels from the
// free-text sample names people type into the instrument software. Naming
// conventions vary by lab, so each convention is a named Layout and the
// normalization engine takes whichever one the caller picked.
package samplename

import (
	"fmt"
	"strings"
)

// Label is the condition/replicate pair extracted from one sample's display
// name. Both fields are empty when the name doesn't follow the layout's
// convention; such samples still normalize but stay out of condition-grouped
// summaries.
type Label struct {
	Condition string
	Replicate string
}

// A Layout is one sample-naming convention. Split never fails: a name that
// doesn't match the convention produces an empty Label.
type Layout struct {
	Split func(sampleName string) Label
}

var Layouts = map[string]Layout{
	// "Treated A 3" => condition "Treated A", replicate "3". The replicate is
	// the whitespace-separated run of digits ending the name.
	"TRAILING_NUMBER": {Split: splitTrailingNumber},

	// "TreatedA_3" => condition "TreatedA", replicate "3". The replicate
	// follows the last underscore.
	"UNDERSCORE": {Split: splitUnderscore},
}

func LayoutNames() string {
	b := strings.Builder{}
	i := 0
	for m := range Layouts {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(m)
		i++
	}

	return b.String()
}

func New(layout string) (Layout, error) {
	l, exists := Layouts[layout]
	if !exists {
		return Layout{}, fmt.Errorf("Layout %s is not found. Valid layout names include: %s", layout, LayoutNames())
	}

	return l, nil
}

func splitTrailingNumber(sampleName string) Label {
	name := strings.TrimSpace(sampleName)

	// Walk back over the trailing digit run.
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}

	if i == len(name) || i == 0 {
		// No trailing digits, or the whole name is digits.
		return Label{}
	}

	condition := strings.TrimRight(name[:i], " \t")
	if condition == name[:i] || condition == "" {
		// The digits were glued onto the last word rather than standing as
		// their own whitespace-delimited token.
		return Label{}
	}

	return Label{Condition: condition, Replicate: name[i:]}
}

func splitUnderscore(sampleName string) Label {
	name := strings.TrimSpace(sampleName)

	idx := strings.LastIndexByte(name, '_')
	if idx <= 0 || idx == len(name)-1 {
		return Label{}
	}

	replicate := name[idx+1:]
	for j := 0; j < len(replicate); j++ {
		if replicate[j] < '0' || replicate[j] > '9' {
			return Label{}
		}
	}

	return Label{Condition: name[:idx], Replicate: replicate}
}
