// qpcrmelt extracts one well's melt-curve trace, or one gene's amplification
// curves, from the flattened instrument exports as plain delimited tables for
// the plotting layer to consume.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/prekoviclab/qpcr"
)

func main() {
	var meltFile, ampFile string
	var well, gene string

	flag.StringVar(&meltFile, "melt", "", "Path to the flattened Melt Curve Raw Data table (Well, Temperature, Derivative).")
	flag.StringVar(&well, "well", "", "Well position whose melt curve to extract (e.g., A1, B12).")
	flag.StringVar(&ampFile, "amp", "", "Path to the flattened Amplification Data table (Well, Target Name, Cycle, Delta Rn).")
	flag.StringVar(&gene, "gene", "", "Target gene whose amplification curves to extract.")
	flag.Parse()

	switch {
	case meltFile != "" && ampFile != "":
		log.Fatalln("Please provide only one of -melt and -amp")
	case meltFile != "":
		if well == "" {
			log.Fatalln("Please provide -well")
		}
		if err := runMelt(meltFile, strings.ToUpper(well)); err != nil {
			log.Fatalln(pfx.Err(err))
		}
	case ampFile != "":
		if gene == "" {
			log.Fatalln("Please provide -gene")
		}
		if err := runAmp(ampFile, gene); err != nil {
			log.Fatalln(pfx.Err(err))
		}
	default:
		log.Fatalln("Please provide -melt or -amp")
	}
}

func runMelt(meltFile, well string) error {
	points, err := qpcr.LoadMelt(meltFile)
	if err != nil {
		return err
	}

	trace := qpcr.MeltCurveForWell(points, well)

	fmt.Println(strings.Join([]string{"temperature", "derivative"}, "\t"))

	for _, p := range trace {
		fmt.Printf("%f\t%f\n", p.Temperature, p.Derivative)
	}

	if len(trace) == 0 {
		log.Println("No melt curve data found for well", well)
	}

	return nil
}

func runAmp(ampFile, gene string) error {
	points, err := qpcr.LoadAmplification(ampFile)
	if err != nil {
		return err
	}

	curves := qpcr.AmplificationForTarget(points, gene)

	fmt.Println(strings.Join([]string{"well", "cycle", "delta_rn"}, "\t"))

	for _, p := range curves {
		fmt.Printf("%s\t%d\t%f\n", p.Well, p.Cycle, p.DeltaRn)
	}

	if len(curves) == 0 {
		log.Println("No amplification data found for target", gene)
	}

	return nil
}
