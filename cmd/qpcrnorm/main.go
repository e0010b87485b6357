// qpcrnorm normalizes a flattened qPCR Results export against one or more
// housekeeping genes and emits the normalized table plus per-gene,
// per-condition summary statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
	"github.com/prekoviclab/qpcr"
	"github.com/prekoviclab/qpcr/normalize"
	"github.com/prekoviclab/qpcr/samplename"
)

func main() {
	var resultsFile, out string
	var referenceArg, targetArg string
	var modeName, layoutName, metricName string

	flag.StringVar(&resultsFile, "results", "", "Path to the flattened Results table (Well Position, Sample Name, Target Name, CT). Comma- or tab-delimited; the delimiter is detected.")
	flag.StringVar(&referenceArg, "reference", "", "Comma-delimited housekeeping gene names (e.g., UBC,ACTB,GAPDH). At least one is required.")
	flag.StringVar(&targetArg, "targets", "", "Comma-delimited genes of interest to normalize.")
	flag.StringVar(&modeName, "mode", "geometric-mean", "How to combine multiple housekeeping genes: arithmetic-mean or geometric-mean.")
	flag.StringVar(&layoutName, "layout", "TRAILING_NUMBER", "Sample-naming convention for condition/replicate extraction. Valid layouts: "+samplename.LayoutNames())
	flag.StringVar(&metricName, "metric", "expression", "Quantity to summarize per gene and condition: expression or deltact.")
	flag.StringVar(&out, "out", "", "Path for the normalized output table (CSV).")
	flag.Parse()

	if resultsFile == "" {
		log.Fatalln("Please provide -results")
	}

	if referenceArg == "" {
		log.Fatalln("Please provide -reference")
	}

	if out == "" {
		log.Fatalln("Please provide -out")
	}

	if err := runAll(resultsFile, out, splitGenes(referenceArg), splitGenes(targetArg), modeName, layoutName, metricName); err != nil {
		log.Fatalln(pfx.Err(err))
	}
}

func splitGenes(arg string) []string {
	out := []string{}
	for _, gene := range strings.Split(arg, ",") {
		if gene = strings.TrimSpace(gene); gene != "" {
			out = append(out, gene)
		}
	}

	return out
}

func runAll(resultsFile, out string, referenceGenes, targetGenes []string, modeName, layoutName, metricName string) error {
	mode, err := normalize.ParseMode(modeName)
	if err != nil {
		return err
	}

	metric, err := normalize.ParseMetric(metricName)
	if err != nil {
		return err
	}

	layout, err := samplename.New(layoutName)
	if err != nil {
		return err
	}

	rows, err := qpcr.LoadResults(resultsFile)
	if err != nil {
		return err
	}
	log.Println("Loaded", len(rows), "well readings from", resultsFile)

	normalized, reference, err := normalize.Run(rows, referenceGenes, targetGenes, mode, layout)
	if err != nil {
		return err
	}
	log.Println("Computed", mode.String(), "reference values for", len(reference), "samples")
	log.Println("Normalized", len(normalized), "of", len(rows), "well readings")

	outFile, err := os.Create(out)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if err := gocsv.MarshalFile(&normalized, outFile); err != nil {
		return err
	}
	log.Println("Wrote the normalized table to", out)

	fmt.Println(strings.Join([]string{
		"target_name",
		"condition",
		"n",
		"mean",
		"sd"},
		"\t"))

	for _, v := range normalize.Summarize(normalized, metric) {
		fmt.Printf("%s\t%s\t%d\t%f\t%f\n",
			v.TargetName,
			v.Condition,
			v.N,
			v.Mean,
			v.SD,
		)
	}

	return nil
}
