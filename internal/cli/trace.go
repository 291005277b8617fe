package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/boundary-codec/internal/encoding"
	"github.com/ironsheep/boundary-codec/internal/imaging"
	"github.com/ironsheep/boundary-codec/internal/pipeline"
)

type traceOptions struct {
	contourFlags
	json bool
}

func newTraceCommand(a *app) *cobra.Command {
	var opts traceOptions

	cmd := &cobra.Command{
		Use:   "trace FILE",
		Short: "Print the closed polygon approximating the contour of an image",
		Long: `Trace the contour of an image, approximate it with a closed polygon, and
print one edge per line as "[x:y] c:true -> [x:y] c:true", in Cartesian
coordinates with the origin at the bottom-left. The output is meant for a
plotting tool.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTrace(cmd, &opts, args[0])
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the polygon as JSON")
	return cmd
}

func (a *app) runTrace(cmd *cobra.Command, opts *traceOptions, file string) error {
	popts, err := a.pipelineOptions(cmd, &opts.contourFlags)
	if err != nil {
		return err
	}
	// Only the polygon is printed; an empty, non-nil list skips encoding.
	popts.Schemes = []encoding.Scheme{}

	img, err := imaging.NewImageCache().Load(file)
	if err != nil {
		return err
	}
	res, err := pipeline.RunImage(img, popts)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Polygon)
	}
	for _, v := range res.Polygon {
		fmt.Fprintln(out, v)
	}
	return nil
}
