package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"vpp-dispatch/internal/config"
	"vpp-dispatch/internal/data"
	"vpp-dispatch/internal/forecast"
	"vpp-dispatch/internal/model"
	"vpp-dispatch/internal/recorder"
	"vpp-dispatch/internal/simulate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "forecast":
		cmdForecast(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --weather weather.json --registry registry.json --config config.yaml --out results/dispatch.csv")
	fmt.Println("  cli forecast --weather weather.json --registry registry.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate outputs CSV with action=CHARGE/HOLD/DISCHARGE per hour")
	fmt.Println("  - forecast fits the ridge load model and prints held-out metrics")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	weatherPath := fs.String("weather", "weather.json", "Path to Open-Meteo style hourly JSON")
	fetch := fs.Bool("fetch", false, "Fetch weather from the Open-Meteo API instead of a file")
	lat := fs.Float64("lat", 31.2304, "Latitude for --fetch")
	lon := fs.Float64("lon", 121.4737, "Longitude for --fetch")
	timezone := fs.String("timezone", "", "Timezone for --fetch (e.g. Asia/Shanghai)")
	pastDays := fs.Int("past-days", 3, "Days of history for --fetch")
	registryPath := fs.String("registry", "registry.json", "Path to business registry JSON")
	cfgPath := fs.String("config", "config.yaml", "Path to YAML config")
	outPath := fs.String("out", "results/dispatch.csv", "Output CSV path for the dispatch trace")
	baselineOut := fs.String("baseline-out", "", "Optional CSV path for the no-storage baseline trace")
	dbPath := fs.String("db", "", "Optional SQLite path to record the run")
	n := fs.Int("n", 0, "Optional: limit to first N hours (0=all)")
	_ = fs.Parse(args)

	var series []model.TimeSample
	var err error
	if *fetch {
		client := data.NewOpenMeteoClient("")
		series, err = client.FetchHourly(data.FetchParams{
			Latitude:  *lat,
			Longitude: *lon,
			Timezone:  *timezone,
			PastDays:  *pastDays,
		})
	} else {
		series, err = data.LoadWeatherJSON(*weatherPath)
	}
	if err != nil {
		panic(err)
	}
	if *n > 0 && *n < len(series) {
		series = series[:*n]
	}

	registry, err := data.LoadRegistryJSON(*registryPath)
	if err != nil {
		panic(err)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	engine, err := simulate.New(cfg.EngineParams())
	if err != nil {
		panic(err)
	}

	startedAt := time.Now()
	res, err := engine.Run(series, registry)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := simulate.WriteTraceCSV(*outPath, res.Dispatch); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(res.Dispatch), *outPath)

	if *baselineOut != "" {
		if err := simulate.WriteTraceCSV(*baselineOut, res.Baseline); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote baseline trace to %s\n", *baselineOut)
	}

	if *dbPath != "" {
		rec, err := recorder.NewSQLiteRecorder(*dbPath)
		if err != nil {
			panic(err)
		}
		defer rec.Close()
		if err := rec.RecordRun(recorder.SnapshotFromResult(res, startedAt), res.Dispatch); err != nil {
			panic(err)
		}
		fmt.Printf("Recorded run in %s\n", *dbPath)
	}

	fmt.Printf("Predicted peak=%.1f kW  Baseline load=%.1f kW\n", res.KPI.PredictedPeakKW, res.KPI.BaselineLoadKW)
	fmt.Printf("Cost saving=%.2f  Margin gain=%.2f  Peak reduction=%.1f kWh\n",
		res.KPI.CostSaving, res.KPI.MarginGain, res.KPI.PeakReductionKWh)
	fmt.Printf("Final SOC=%.1f%%\n", res.FinalSOC)
	if res.Forecast != nil {
		fmt.Printf("Forecast R2=%.4f  MAPE=%.4f  RMSE=%.1f\n",
			res.Forecast.R2, res.Forecast.MAPE, res.Forecast.RMSE)
	}
}

func cmdForecast(args []string) {
	fs := flag.NewFlagSet("forecast", flag.ExitOnError)
	weatherPath := fs.String("weather", "weather.json", "Path to Open-Meteo style hourly JSON")
	registryPath := fs.String("registry", "registry.json", "Path to business registry JSON")
	cfgPath := fs.String("config", "config.yaml", "Path to YAML config")
	alpha := fs.Float64("alpha", forecast.DefaultAlpha, "Ridge regularization strength")
	_ = fs.Parse(args)

	series, err := data.LoadWeatherJSON(*weatherPath)
	if err != nil {
		panic(err)
	}
	registry, err := data.LoadRegistryJSON(*registryPath)
	if err != nil {
		panic(err)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	params := cfg.EngineParams()

	_, predictedPeak, err := model.PredictRegistry(registry)
	if err != nil {
		panic(err)
	}
	baseLoad := params.DefaultBaseLoadKW
	if predictedPeak > 0 {
		baseLoad = 0.6 * predictedPeak
	}

	rng := rand.New(rand.NewSource(params.Seed))
	samples := simulate.BuildSamples(series, params.PVCapacityKWp, baseLoad, rng)

	frame, err := forecast.BuildFrame(samples, model.CountByIndustry(registry), params.TOU)
	if err != nil {
		panic(err)
	}
	fitted, err := forecast.FitEvaluate(frame, *alpha)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Fitted on %d hours (alpha=%.2f)\n", len(frame.X), *alpha)
	fmt.Printf("R2=%.4f  MAPE=%.4f  RMSE=%.1f\n", fitted.R2, fitted.MAPE, fitted.RMSE)
	fmt.Println("")
	fmt.Printf("%-16s %12s\n", "feature", "coefficient")
	for i, name := range fitted.FeatureNames {
		fmt.Printf("%-16s %12.4f\n", name, fitted.Coefficients[i])
	}
	fmt.Printf("%-16s %12.4f\n", "intercept", fitted.Intercept)
}
