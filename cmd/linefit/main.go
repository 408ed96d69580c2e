// Command linefit fits a least-squares line to paired observations and prints
// the fit report, optionally with an ASCII chart.
//
// Observations come from -x/-y flags, a dataset file (-file, transparently
// decompressed by extension), or interactive prompts. Empty interactive input
// falls back to the built-in example dataset.
//
// The command is a thin adapter: parsing, fitting, scoring and rendering all
// happen in the library packages; this file only moves data between them and
// translates errors into exit behavior.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arloliu/linefit/dataset"
	"github.com/arloliu/linefit/fit"
	"github.com/arloliu/linefit/internal/logging"
	"github.com/arloliu/linefit/plot"
	"github.com/arloliu/linefit/report"
)

func main() {
	xFlag := flag.String("x", "", "x values (comma- or space-separated)")
	yFlag := flag.String("y", "", "y values (comma- or space-separated)")
	file := flag.String("file", "", "dataset file (text or JSON; .zst/.s2/.lz4 decompressed automatically)")
	showPlot := flag.Bool("plot", false, "render an ASCII chart of observed vs fitted values")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := logging.Console(*verbose)

	ds, err := resolveDataset(logger, *file, *xFlag, *yFlag)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read observations")
		os.Exit(1)
	}
	logger.Debug().Int("n", ds.Len()).Str("fingerprint", fmt.Sprintf("%016x", ds.Fingerprint())).Msg("dataset loaded")

	if err := ds.Validate(); err != nil {
		fail(logger, err)
	}

	result, err := fit.Analyze(ds.X, ds.Y)
	if err != nil {
		fail(logger, err)
	}

	fmt.Print(report.RenderResult(ds, result))

	if *showPlot {
		chart, err := plot.Render(ds.X, ds.Y, result.Line.Predict(ds.X))
		if err != nil {
			fmt.Println("\nplot unavailable:", err)
			return
		}
		fmt.Println()
		fmt.Println(chart)
	}
}

// resolveDataset picks the observation source: dataset file, flags, or
// interactive prompts. Empty interactive input falls back to the example
// dataset.
func resolveDataset(logger zerolog.Logger, file, xText, yText string) (dataset.Dataset, error) {
	if file != "" {
		return dataset.Load(file)
	}

	reader := bufio.NewReader(os.Stdin)
	var err error
	if xText == "" {
		if xText, err = prompt(reader, "x values: "); err != nil {
			return dataset.Dataset{}, err
		}
	}
	if yText == "" {
		if yText, err = prompt(reader, "y values: "); err != nil {
			return dataset.Dataset{}, err
		}
	}

	x, err := dataset.ParseSequence(xText)
	if err != nil {
		return dataset.Dataset{}, err
	}
	y, err := dataset.ParseSequence(yText)
	if err != nil {
		return dataset.Dataset{}, err
	}

	if len(x) == 0 && len(y) == 0 {
		logger.Info().Msg("no observations supplied, using the example dataset")
		return dataset.Example(), nil
	}

	return dataset.New(x, y), nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// EOF with nothing typed counts as empty input, not a failure.
		return "", nil
	}

	return strings.TrimSpace(line), nil
}

// fail translates core errors into user-facing messages and exits.
func fail(logger zerolog.Logger, err error) {
	switch {
	case errors.Is(err, fit.ErrLengthMismatch):
		logger.Error().Err(err).Msg("x and y must have the same number of values")
	case errors.Is(err, fit.ErrInsufficientData):
		logger.Error().Err(err).Msg("need at least two observations to fit a line")
	case errors.Is(err, fit.ErrDegenerateInput):
		logger.Error().Err(err).Msg("all x values are identical, cannot fit a line")
	default:
		logger.Error().Err(err).Msg("fit failed")
	}
	os.Exit(1)
}
