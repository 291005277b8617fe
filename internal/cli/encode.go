package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ironsheep/boundary-codec/internal/contour"
	"github.com/ironsheep/boundary-codec/internal/encoding"
	"github.com/ironsheep/boundary-codec/internal/imaging"
	"github.com/ironsheep/boundary-codec/internal/pipeline"
)

// encodeOptions holds the flags of the encode command.
type encodeOptions struct {
	contourFlags
	samples  int
	schemes  string
	parallel bool
	strict   bool
	json     bool
}

func newEncodeCommand(a *app) *cobra.Command {
	var opts encodeOptions

	cmd := &cobra.Command{
		Use:   "encode FILE...",
		Short: "Trace, approximate and encode the contour of each image",
		Long: `Trace the contour of each image, approximate it with a closed polygon
sampled every --step points, and print the first --samples tokens of each
encoding scheme.

Schemes: three-attr, three-digit, projection, complex, coordinates, polar.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEncode(cmd, &opts, args)
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVarP(&opts.samples, "samples", "n", 7, "Tokens to print per scheme (0 prints all)")
	cmd.Flags().StringVar(&opts.schemes, "schemes", "", "Comma-separated schemes to encode with (default all)")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "Run the encoders concurrently")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on zero-length polygon edges instead of warning")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print results as JSON")
	return cmd
}

// pipelineOptions builds pipeline options from the shared contour flags.
func (a *app) pipelineOptions(cmd *cobra.Command, f *contourFlags) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	opts.Logger = a.logger

	t, err := resolveThreshold(cmd, f.threshold)
	if err != nil {
		return opts, err
	}
	opts.Threshold = t

	if f.step < 1 {
		return opts, fmt.Errorf("invalid --step %d: %w", f.step, contour.ErrInvalidStep)
	}
	opts.Step = f.step

	if opts.Region, err = parseRegion(f.region); err != nil {
		return opts, err
	}
	return opts, nil
}

// fileReport is the encode output for one image.
type fileReport struct {
	File          string         `json:"file"`
	Width         int            `json:"width"`
	Height        int            `json:"height"`
	ContourPoints int            `json:"contour_points"`
	Edges         int            `json:"edges"`
	Start         contour.Point  `json:"start"`
	End           contour.Point  `json:"end"`
	Encodings     []schemeReport `json:"encodings"`
	Error         string         `json:"error,omitempty"`
}

type schemeReport struct {
	Scheme encoding.Scheme `json:"scheme"`
	Title  string          `json:"title"`
	Total  int             `json:"total"`
	Tokens []string        `json:"tokens"`
}

func (a *app) runEncode(cmd *cobra.Command, opts *encodeOptions, files []string) error {
	popts, err := a.pipelineOptions(cmd, &opts.contourFlags)
	if err != nil {
		return err
	}
	if popts.Schemes, err = encoding.ParseSchemes(opts.schemes); err != nil {
		return err
	}
	if opts.samples < 0 {
		return fmt.Errorf("invalid --samples %d: must be >= 0", opts.samples)
	}
	popts.Parallel = opts.parallel
	popts.Strict = opts.strict

	var bar *progressbar.ProgressBar
	if len(files) > 1 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription("Encoding"),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionShowCount(),
		)
	}

	cache := imaging.NewImageCache()
	reports := make([]fileReport, 0, len(files))
	failed := 0
	for _, file := range files {
		if err := cmd.Context().Err(); err != nil {
			return err
		}

		report, err := encodeFile(cache, file, popts, opts.samples)
		if err != nil {
			failed++
			report = fileReport{File: file, Error: err.Error()}
			if !opts.json && len(files) > 1 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", file, err)
			}
		} else if !opts.json {
			printReport(cmd.OutOrStdout(), report)
		}
		reports = append(reports, report)

		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(cmd.ErrOrStderr())
	}

	if opts.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	}

	if failed > 0 {
		if len(files) == 1 {
			return fmt.Errorf("%s: %s", files[0], reports[0].Error)
		}
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func encodeFile(cache *imaging.ImageCache, file string, opts pipeline.Options, samples int) (fileReport, error) {
	img, err := cache.Load(file)
	if err != nil {
		return fileReport{}, err
	}
	// Each file is encoded once.
	defer cache.Evict(file)

	res, err := pipeline.RunImage(img, opts)
	if err != nil {
		return fileReport{}, err
	}

	report := fileReport{
		File:          file,
		Width:         res.Width,
		Height:        res.Height,
		ContourPoints: len(res.Contour),
		Edges:         len(res.Polygon),
		Start:         res.Start(),
		End:           res.End(),
	}
	for _, e := range res.Encodings {
		tokens := e.Strings()
		total := len(tokens)
		if samples > 0 && samples < total {
			tokens = tokens[:samples]
		}
		report.Encodings = append(report.Encodings, schemeReport{
			Scheme: e.Scheme,
			Title:  e.Scheme.Title(),
			Total:  total,
			Tokens: tokens,
		})
	}
	return report, nil
}

func printReport(w io.Writer, r fileReport) {
	fmt.Fprintf(w, "%s: %dx%d, %d contour points, %d edges\n", r.File, r.Width, r.Height, r.ContourPoints, r.Edges)
	fmt.Fprintf(w, "start %v, end %v\n", r.Start, r.End)
	for _, s := range r.Encodings {
		fmt.Fprintf(w, "\n%s (%d of %d):\n", s.Title, len(s.Tokens), s.Total)
		for _, tok := range s.Tokens {
			fmt.Fprintf(w, "  %s\n", tok)
		}
	}
	fmt.Fprintln(w)
}
