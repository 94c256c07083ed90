package main

import (
	"flag"

	"kalman-go/filter"
	"kalman-go/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port for the live visualizer")
	steps := flag.Int("steps", filter.DefaultSteps, "Number of time steps per run")
	measVar := flag.Float64("measurement-variance", filter.DefaultMeasurementVariance, "Measurement noise variance")
	procVar := flag.Float64("process-variance", filter.DefaultProcessVariance, "Process noise variance")
	seed := flag.Int64("seed", 0, "Random seed (0 = new noise every run)")
	flag.Parse()

	p := filter.DefaultParams()
	p.Steps = *steps
	p.MeasurementVariance = *measVar
	p.ProcessVariance = *procVar
	p.Seed = *seed

	srv := web.NewServer(p)
	srv.Start(*port)
}
