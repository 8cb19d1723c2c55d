// covstats prints per-sample coverage statistics from a depth file: mean and
// median depth, the fraction of the reference covered at a minimum depth, and
// the regions that fall short.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"cloud.google.com/go/storage"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/covplot"
	_ "github.com/carbocation/covplot/compileinfoprint"
	"github.com/carbocation/covplot/coverage"
)

func main() {
	var (
		depthsPath string
		low        float64
		bins       int
		printHist  bool
	)

	flag.StringVar(&depthsPath, "depths", "", "Depth file with columns sample, reference, position, depth. May be compressed or on gs://.")
	flag.Float64Var(&low, "low", coverage.DefaultLowDepth, "Positions with depth below this value are reported as low coverage")
	flag.BoolVar(&printHist, "histogram", false, "Print a histogram of each sample's depths to stderr?")
	flag.IntVar(&bins, "bins", 25, "(Optional) Number of histogram buckets")
	flag.Parse()

	if depthsPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(context.Background(), depthsPath, low, bins, printHist, os.Stdout, os.Stderr); err != nil {
		log.Fatalln(err)
	}
}

// run writes one statistics row per sample to out. The storage client, if one
// is needed, is closed before run returns.
func run(ctx context.Context, depthsPath string, low float64, bins int, printHist bool, out, histOut io.Writer) error {
	var client *storage.Client
	if covplot.IsGoogleStoragePath(depthsPath) {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			return err
		}
		defer client.Close()
	}

	f, err := covplot.Open(ctx, depthsPath, client)
	if err != nil {
		return err
	}
	samples, err := coverage.ReadDepths(f)
	f.Close()
	if err != nil {
		return err
	}

	if len(samples) < 1 {
		return fmt.Errorf("no depth data was parsed from %s", depthsPath)
	}

	w := csv.NewWriter(out)
	w.Comma = '\t'
	if err := w.Write(coverage.Header()); err != nil {
		return err
	}

	for _, s := range samples {
		st, err := coverage.Summarize(s, low)
		if err != nil {
			return err
		}
		if err := w.Write(st.Row()); err != nil {
			return err
		}

		if printHist {
			log.Println("Depth histogram for", s.Name)
			hist := histogram.Hist(bins, s.Depths)
			if err := histogram.Fprint(histOut, hist, histogram.Linear(50)); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
