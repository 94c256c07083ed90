package main

import (
	"flag"
	"fmt"
	"os"

	"kalman-go/filter"
	"kalman-go/record"
	"kalman-go/viz"
)

func main() {
	steps := flag.Int("steps", filter.DefaultSteps, "Number of time steps")
	measVar := flag.Float64("measurement-variance", filter.DefaultMeasurementVariance, "Measurement noise variance")
	procVar := flag.Float64("process-variance", filter.DefaultProcessVariance, "Process noise variance")
	seed := flag.Int64("seed", 0, "Random seed (0 = seed from clock)")
	outPath := flag.String("out", "kalman.png", "Output plot path")
	csvPath := flag.String("csv", "", "Optional CSV output path for the run")
	flag.Parse()

	p := filter.DefaultParams()
	p.Steps = *steps
	p.MeasurementVariance = *measVar
	p.ProcessVariance = *procVar
	p.Seed = *seed

	res, err := filter.Run(p)
	if err != nil {
		fmt.Printf("run failed: %v\n", err)
		os.Exit(1)
	}

	if err := viz.Save(res, *outPath); err != nil {
		fmt.Printf("save plot failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d steps, final estimate %.4f, final error estimate %.6f)\n",
		*outPath, res.Len(), res.Estimates[res.Len()-1], res.ErrorEstimates[res.Len()-1])

	if *csvPath != "" {
		if err := record.WriteFile(*csvPath, res); err != nil {
			fmt.Printf("write csv failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *csvPath)
	}
}
