package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/boundary-codec/internal/imaging"
)

type sampleOptions struct {
	threshold string
	json      bool
}

func newSampleCommand(a *app) *cobra.Command {
	var opts sampleOptions

	cmd := &cobra.Command{
		Use:   "sample FILE X Y",
		Short: "Report the color at a pixel and whether it classifies as contour",
		Long: `Report the color at pixel (X, Y), counted from the top-left corner, and
whether the threshold classifies it as contour.

Sample a pixel of the drawn outline and a pixel of the background to choose a
threshold the first passes and the second fails.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSample(cmd, &opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.threshold, "threshold", "t", imaging.DefaultThreshold.String(),
		"Contour threshold: a level, r,g,b or #hex (env "+envThreshold+")")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	return cmd
}

func (a *app) runSample(cmd *cobra.Command, opts *sampleOptions, args []string) error {
	x, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid X %q: %w", args[1], err)
	}
	y, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid Y %q: %w", args[2], err)
	}
	t, err := resolveThreshold(cmd, opts.threshold)
	if err != nil {
		return err
	}

	img, err := imaging.NewImageCache().Load(args[0])
	if err != nil {
		return err
	}
	res, err := imaging.SampleColor(img, x, y, t)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	verdict := "background"
	if res.IsContour {
		verdict = "contour"
	}
	fmt.Fprintf(out, "(%d, %d) %s rgb(%d, %d, %d) hsl(%d, %d%%, %d%%): %s at threshold %s\n",
		res.X, res.Y, res.Hex, res.RGB.R, res.RGB.G, res.RGB.B, res.HSL.H, res.HSL.S, res.HSL.L,
		verdict, res.Threshold)
	return nil
}
