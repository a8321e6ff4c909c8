package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/HaikuZen/myCCC4Worker-sub000/internal/analysis"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/config"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/gpx"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/merge"
	"github.com/HaikuZen/myCCC4Worker-sub000/internal/monitoring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// outcome is the analysis of one input file.
type outcome struct {
	path   string
	result *analysis.Result
	err    error
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("rideanalyze", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		inputFile  = fs.String("i", "", "Input GPX file")
		weight     = fs.Float64("weight", 0, "Rider mass in kg (default from config, 70)")
		asJSON     = fs.Bool("json", false, "Output the full analysis as JSON")
		showStats  = fs.Bool("stats", false, "Show detailed statistics")
		workers    = fs.Int("workers", 0, "Files analysed in parallel (default from config, number of CPUs)")
		configFile = fs.String("config", "", "JSON or YAML config file")
		quiet      = fs.Bool("quiet", false, "Suppress diagnostic logging")
		mergeFiles = fs.Bool("merge", false, "Treat all files as pieces of one ride")
		version    = fs.Bool("version", false, "Show version information")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "rideanalyze - Analyse cycling rides recorded as GPX\n\n")
		fmt.Fprintf(stderr, "usage: rideanalyze -i /path/to/ride.gpx\n\n")
		fmt.Fprintf(stderr, "examples:\n")
		fmt.Fprintf(stderr, "  rideanalyze -i ride.gpx\n")
		fmt.Fprintf(stderr, "  rideanalyze -i ride.gpx -weight 82 -stats\n")
		fmt.Fprintf(stderr, "  rideanalyze -json -workers 4 rides/*.gpx\n")
		fmt.Fprintf(stderr, "  rideanalyze -merge part1.gpx part2.gpx\n\n")
		fmt.Fprintf(stderr, "options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *version {
		fmt.Fprintln(stdout, "rideanalyze v1.0.0 - cycling ride analysis")
		return 0
	}

	var files []string
	if *inputFile != "" {
		files = append(files, *inputFile)
	}
	files = append(files, fs.Args()...)
	if len(files) == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadFile(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *quiet {
		cfg.Quiet = true
	}
	if cfg.Quiet {
		monitoring.SetLogger(nil)
	}

	analyzer := analysis.New(cfg.AnalyzerOptions())

	var outcomes []outcome
	if *mergeFiles {
		outcomes = []outcome{analyzeMerged(analyzer, files, *weight, stdout, !*asJSON)}
	} else {
		outcomes = analyzeAll(analyzer, files, *weight, cfg.Workers)
	}

	failed := 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
			fmt.Fprintf(stderr, "Error analysing %s: %v\n", o.path, o.err)
		}
	}

	if *asJSON {
		if err := writeJSON(stdout, outcomes); err != nil {
			fmt.Fprintf(stderr, "Error marshaling analysis: %v\n", err)
			return 1
		}
	} else {
		for _, o := range outcomes {
			if o.err != nil {
				continue
			}
			printSummary(stdout, o.path, o.result)
			if *showStats {
				printStats(stdout, o.result)
			}
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// analyzeAll runs the files through one shared analyzer, at most workers
// at a time. Outcomes keep the input order.
func analyzeAll(a *analysis.Analyzer, files []string, weight float64, workers int) []outcome {
	outcomes := make([]outcome, len(files))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			res, err := a.AnalyzeFile(path, weight)
			outcomes[i] = outcome{path: path, result: res, err: err}
			// failures stay in outcomes so the other files still run
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// analyzeMerged joins the files into one ride before analysing it.
func analyzeMerged(a *analysis.Analyzer, files []string, weight float64, w io.Writer, report bool) outcome {
	label := strings.Join(files, " + ")

	docs := make([]*gpx.GPX, 0, len(files))
	for _, path := range files {
		doc, err := gpx.Parse(path)
		if err != nil {
			return outcome{path: label, err: fmt.Errorf("%s: %w", path, err)}
		}
		docs = append(docs, doc)
	}

	merged, stats, err := merge.Rides(docs...)
	if err != nil {
		return outcome{path: label, err: err}
	}
	if report {
		fmt.Fprintf(w, "🔗 Merged %d files into %d tracks (%d overlapping points dropped)\n",
			stats.Documents, stats.Tracks, stats.OverlapPoints)
	}

	res, err := a.AnalyzeDocument(merged, weight)
	return outcome{path: label, result: res, err: err}
}

func writeJSON(w io.Writer, outcomes []outcome) error {
	results := []*analysis.Result{}
	for _, o := range outcomes {
		if o.err == nil {
			results = append(results, o.result)
		}
	}

	var payload interface{} = results
	if len(outcomes) == 1 && len(results) == 1 {
		payload = results[0]
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
