// Command fcmetric evaluates forecasting performance metrics on CSV data.
//
// Usage:
//
//	fcmetric [flags] data.csv [metric-name ...]
//
// The CSV must have a header row of paired columns <name>_true,<name>_pred.
// Without metric names it evaluates every applicable metric.
//
// Examples:
//
//	fcmetric forecast.csv
//	fcmetric forecast.csv MeanAbsoluteError MeanSquaredError
//	fcmetric -multioutput raw_values forecast.csv
//	fcmetric -train history.csv -sp 12 forecast.csv MeanAbsoluteScaledError
//	fcmetric -train history.csv -autosp forecast.csv
//	fcmetric -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-forecast/metrics"
	"github.com/cwbudde/algo-forecast/season"
	"github.com/cwbudde/algo-forecast/series"
	"github.com/cwbudde/algo-forecast/stats/residual"
)

func main() {
	list := flag.Bool("list", false, "list available metric names")
	multioutput := flag.String("multioutput", "uniform_average", "result mode: uniform_average or raw_values")
	sp := flag.Int("sp", 1, "seasonal period for scaled metrics")
	autoSP := flag.Bool("autosp", false, "estimate the seasonal period from the training data (requires -train)")
	trainPath := flag.String("train", "", "CSV file with training data for scaled metrics")
	residuals := flag.Bool("residuals", false, "print residual diagnostics per column")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fcmetric [flags] data.csv [metric-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Evaluates forecasting performance metrics on CSV data.\n")
		fmt.Fprintf(os.Stderr, "The CSV needs a header of paired columns <name>_true,<name>_pred.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fcmetric forecast.csv\n")
		fmt.Fprintf(os.Stderr, "  fcmetric -multioutput raw_values forecast.csv MeanAbsoluteError\n")
		fmt.Fprintf(os.Stderr, "  fcmetric -train history.csv -autosp forecast.csv\n")
		fmt.Fprintf(os.Stderr, "  fcmetric -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	mode, err := metrics.ParseMultioutput(*multioutput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	yTrue, yPred, err := loadPairedCSV(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s: %v\n", args[0], err)
		os.Exit(1)
	}

	var yTrain *series.Series
	if *trainPath != "" {
		yTrain, err = loadSeriesCSV(*trainPath, yTrue.ColumnNames())
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", *trainPath, err)
			os.Exit(1)
		}
	}

	period := *sp
	if *autoSP {
		if yTrain == nil {
			fmt.Fprintf(os.Stderr, "error: -autosp requires -train\n")
			os.Exit(1)
		}
		est, err := season.EstimatePeriod(yTrain.Column(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: seasonal period estimation: %v\n", err)
			os.Exit(1)
		}
		period = est.Period
		fmt.Fprintf(os.Stderr, "estimated seasonal period: %d\n", period)
	}

	entries := resolveEntries(args[1:], yTrain != nil)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no applicable metrics\n")
		os.Exit(1)
	}

	in := metrics.Inputs{YTrue: yTrue, YPred: yPred, YTrain: yTrain}
	printReport(entries, in, mode, period)

	if *residuals {
		printResiduals(yTrue, yPred)
	}
}

func printList() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Metric\tConsumes\n")
	fmt.Fprintf(tw, "------\t--------\n")
	for _, e := range metrics.Registry() {
		consumes := []string{"y_true", "y_pred"}
		if e.NeedsBenchmark {
			consumes = append(consumes, "y_pred_benchmark")
		}
		if e.NeedsTrain {
			consumes = append(consumes, "y_train")
		}
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, strings.Join(consumes, ", "))
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

// resolveEntries maps metric names to registry entries. Without names, every
// metric whose inputs are available is selected; benchmark metrics are always
// skipped since no benchmark prediction can be loaded from a single CSV.
func resolveEntries(names []string, haveTrain bool) []metrics.Entry {
	if len(names) == 0 {
		var result []metrics.Entry
		for _, e := range metrics.Registry() {
			if e.NeedsBenchmark {
				continue
			}
			if e.NeedsTrain && !haveTrain {
				continue
			}
			result = append(result, e)
		}
		return result
	}

	var result []metrics.Entry
	for _, name := range names {
		e, ok := metrics.Lookup(strings.TrimSpace(name))
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown metric %q (use -list to see available)\n", name)
			continue
		}
		if e.NeedsBenchmark {
			fmt.Fprintf(os.Stderr, "warning: %s needs a benchmark prediction, skipping\n", e.Name)
			continue
		}
		if e.NeedsTrain && !haveTrain {
			fmt.Fprintf(os.Stderr, "warning: %s needs -train, skipping\n", e.Name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printReport(entries []metrics.Entry, in metrics.Inputs, mode metrics.Multioutput, period int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	switch mode {
	case metrics.RawValues:
		fmt.Fprintf(tw, "Metric\t%s\n", strings.Join(in.YTrue.ColumnNames(), "\t"))
	default:
		fmt.Fprintf(tw, "Metric\tValue\n")
	}

	for _, e := range entries {
		m := e.New(
			metrics.WithMultioutput(mode),
			metrics.WithSeasonalPeriod(period),
		)

		res, err := m.Evaluate(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", e.Name, err)
			continue
		}

		switch mode {
		case metrics.RawValues:
			cells := make([]string, len(res.Values))
			for i, v := range res.Values {
				cells[i] = fmt.Sprintf("%.6g", v)
			}
			fmt.Fprintf(tw, "%s\t%s\n", e.Name, strings.Join(cells, "\t"))
		default:
			fmt.Fprintf(tw, "%s\t%.6g\n", e.Name, res.Scalar)
		}
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResiduals(yTrue, yPred *series.Series) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nColumn\tBias\tMAE\tRMSE\tStdDev\tSkew\tKurtosis\tLag1\tSignChanges\n")

	for c, name := range yTrue.ColumnNames() {
		s, err := residual.FromSeries(yTrue, yPred, c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: residuals for %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%.4g\t%d\n",
			name, s.Mean, s.MAE, s.RMSE, s.StdDev, s.Skewness, s.Kurtosis, s.Lag1Autocorr, s.SignChanges)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
