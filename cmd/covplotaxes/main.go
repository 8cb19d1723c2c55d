// covplotaxes writes the axis layout of a whole-genome coverage chart as JSON:
// one grid per sample, plus a shared grid for the gene feature and amplicon
// tracks when either is enabled.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/covplot"
	"github.com/carbocation/covplot/axes"
	_ "github.com/carbocation/covplot/compileinfoprint"
	"github.com/carbocation/covplot/coverage"
	"github.com/carbocation/covplot/genefeature"
	"github.com/carbocation/covplot/preview"
	"github.com/carbocation/covplot/variant"
	"github.com/carbocation/pfx"
)

var client *storage.Client

func main() {
	var (
		samplesPath  string
		depthsPath   string
		featuresPath string
		ampliconPath string
		intervalPath string
		vcfPath      string
		configPath   string
		pngDir       string
		scale        string
		geneFeature  string
		amplicon     string
		xMax         float64
		yMax         float64
	)

	flag.StringVar(&samplesPath, "samples", "", "(Optional) File with one sample name per line, in display order. If unset, samples are taken from --depths.")
	flag.StringVar(&depthsPath, "depths", "", "(Optional) Depth file with columns sample, reference, position, depth. May be gzipped or on gs://.")
	flag.StringVar(&featuresPath, "features", "", "(Optional) Tab-delimited gene feature table with columns name, type, start, end, strand.")
	flag.StringVar(&ampliconPath, "amplicon_bed", "", "(Optional) Sample sheet (columns sample, path) of per-sample amplicon depth BED files with columns reference, start, end, amplicon, depth.")
	flag.StringVar(&intervalPath, "amplicon_depths", "", "(Optional) Sample sheet (columns sample, path) of per-sample per-base BED depth files with columns reference, start, end, depth. Alternative to --depths; requires --xmax.")
	flag.StringVar(&vcfPath, "vcf", "", "(Optional) Sample sheet (columns sample, path) of per-sample VCF files.")
	flag.StringVar(&configPath, "config", "", "(Optional) JSON file overriding the gene feature track properties.")
	flag.StringVar(&pngDir, "png", "", "(Optional) Directory into which a PNG preview is written for each sample. Requires --depths or --amplicon_depths.")
	flag.StringVar(&scale, "scale", "value", "Y axis scale: value or log")
	flag.StringVar(&geneFeature, "gene_feature", "False", "Draw the gene feature track? True or False")
	flag.StringVar(&amplicon, "amplicon", "False", "Draw the amplicon track? True or False")
	flag.Float64Var(&xMax, "xmax", 0, "Maximum x position (reference length). If 0, taken from --depths.")
	flag.Float64Var(&yMax, "ymax", 0, "Maximum depth. If 0, taken from --depths, or 1 without depths.")
	flag.Parse()

	if samplesPath == "" && depthsPath == "" && intervalPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if depthsPath != "" && intervalPath != "" {
		log.Fatalln("--depths and --amplicon_depths cannot be combined")
	}

	if intervalPath != "" && xMax <= 0 {
		log.Fatalln("--amplicon_depths requires --xmax, the reference length")
	}

	if pngDir != "" && depthsPath == "" && intervalPath == "" {
		log.Fatalln("--png requires --depths or --amplicon_depths")
	}

	ctx := context.Background()

	defer func() {
		if client != nil {
			client.Close()
		}
	}()

	props := genefeature.DefaultProperties()
	if configPath != "" {
		var err error
		props, err = genefeature.LoadProperties(configPath)
		if err != nil {
			log.Fatalln(err)
		}
		log.Println("Using gene feature properties from", configPath)
	}

	in := optionInput{
		Scale: axes.ParseScale(scale),
		Flags: axes.ParseFlags(geneFeature, amplicon),
		Props: props,
		XMax:  xMax,
		YMax:  yMax,
	}

	var depths []*coverage.Sample
	if depthsPath != "" {
		var err error
		depths, err = readDepths(ctx, depthsPath)
		if err != nil {
			log.Fatalln(err)
		}
		log.Printf("Read depths for %d samples from %s\n", len(depths), depthsPath)
	} else if intervalPath != "" {
		var err error
		depths, err = readIntervalDepths(ctx, intervalPath, int(xMax))
		if err != nil {
			log.Fatalln(err)
		}
		log.Printf("Read per-base depths for %d samples from %s\n", len(depths), intervalPath)
	}

	if len(depths) > 0 {
		if in.XMax == 0 {
			in.XMax = float64(coverage.MaxPosition(depths))
		}
		if in.YMax == 0 {
			in.YMax = coverage.MaxDepth(depths)
		}
	}
	if in.YMax == 0 {
		in.YMax = 1
	}

	if samplesPath != "" {
		var err error
		in.Samples, err = readSamples(ctx, samplesPath)
		if err != nil {
			log.Fatalln(err)
		}
	} else {
		in.Samples = coverage.Names(depths)
	}

	if len(in.Samples) < 1 {
		log.Fatalln("No samples were found")
	}

	if featuresPath != "" && in.Flags.GeneFeature {
		var err error
		in.Features, err = readFeatures(ctx, featuresPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	if ampliconPath != "" && in.Flags.Amplicon {
		var err error
		in.Amplicons, err = readAmplicons(ctx, ampliconPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	if vcfPath != "" {
		var err error
		in.Variants, err = readVariants(ctx, vcfPath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	opt, err := newOption(in)
	if err != nil {
		log.Fatalln(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(opt); err != nil {
		log.Fatalln(err)
	}

	if pngDir != "" {
		if err := writePreviews(pngDir, in.Samples, depths, opt); err != nil {
			log.Fatalln(err)
		}
	}
}

// open initializes the Google Storage client only once a gs:// path is
// actually opened. Sample sheets may point there even when they are local.
func open(ctx context.Context, path string) (io.ReadCloser, error) {
	if client == nil && covplot.IsGoogleStoragePath(path) {
		var err error
		client, err = storage.NewClient(ctx)
		if err != nil {
			return nil, pfx.Err(err)
		}
	}

	return covplot.Open(ctx, path, client)
}

func readSamples(ctx context.Context, path string) ([]string, error) {
	f, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return covplot.ReadSamples(f)
}

func readDepths(ctx context.Context, path string) ([]*coverage.Sample, error) {
	f, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return coverage.ReadDepths(f)
}

func readFeatures(ctx context.Context, path string) ([]genefeature.Feature, error) {
	f, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return genefeature.ReadFeatures(f)
}

func readSampleFiles(ctx context.Context, path string) ([]covplot.SampleFile, error) {
	f, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return covplot.ReadSampleFiles(f)
}

func readAmplicons(ctx context.Context, sheetPath string) (map[string][]coverage.Amplicon, error) {
	files, err := readSampleFiles(ctx, sheetPath)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]coverage.Amplicon, len(files))
	for _, sf := range files {
		f, err := open(ctx, sf.Path)
		if err != nil {
			return nil, err
		}
		amplicons, err := coverage.ReadAmplicons(f)
		f.Close()
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", sf.Path, err))
		}
		out[sf.Sample] = amplicons
	}

	return out, nil
}

// readIntervalDepths returns samples in sample sheet order.
func readIntervalDepths(ctx context.Context, sheetPath string, refLen int) ([]*coverage.Sample, error) {
	files, err := readSampleFiles(ctx, sheetPath)
	if err != nil {
		return nil, err
	}

	out := make([]*coverage.Sample, 0, len(files))
	for _, sf := range files {
		f, err := open(ctx, sf.Path)
		if err != nil {
			return nil, err
		}
		s, err := coverage.ReadIntervalDepths(f, refLen)
		f.Close()
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", sf.Path, err))
		}
		s.Name = sf.Sample
		out = append(out, s)
	}

	return out, nil
}

func readVariants(ctx context.Context, sheetPath string) (map[string]variant.Calls, error) {
	files, err := readSampleFiles(ctx, sheetPath)
	if err != nil {
		return nil, err
	}

	out := make(map[string]variant.Calls, len(files))
	for _, sf := range files {
		f, err := open(ctx, sf.Path)
		if err != nil {
			return nil, err
		}
		calls, err := variant.Read(f)
		f.Close()
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", sf.Path, err))
		}
		log.Printf("Read %d variants for sample %s (caller: %q)\n", len(calls.Calls), sf.Sample, calls.Caller)
		out[sf.Sample] = calls
	}

	return out, nil
}

// writePreviews renders one PNG per sample that has depth data, using the
// sample's own grid axes.
func writePreviews(dir string, samples []string, depths []*coverage.Sample, opt Option) error {
	bySample := make(map[string]*coverage.Sample, len(depths))
	for _, s := range depths {
		bySample[s.Name] = s
	}

	for i, name := range samples {
		s, exists := bySample[name]
		if !exists {
			log.Printf("No depth data for sample %s, skipping its preview\n", name)
			continue
		}

		outPath := filepath.Join(covplot.ExpandHome(dir), previewFileName(name))
		if err := writePreview(outPath, s, opt.XAxis[i], opt.YAxis[i]); err != nil {
			return err
		}
		log.Println("Wrote", outPath)
	}

	return nil
}

func writePreview(outPath string, s *coverage.Sample, x, y axes.Axis) (err error) {
	outFile, err := os.Create(outPath)
	if err != nil {
		return pfx.Err(err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			err = pfx.Err(cerr)
		}
	}()

	return preview.Render(outFile, s, x, y)
}

// previewFileName keeps a sample's preview inside the output directory, even
// when the sample name contains path separators.
func previewFileName(sample string) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == filepath.Separator {
			return '_'
		}
		return r
	}, sample)

	if name == "" || name == "." || name == ".." {
		name = "_" + name
	}

	return name + ".png"
}
