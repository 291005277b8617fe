// Package cli implements the boundary-codec command line.
//
// Commands:
//
//	encode FILE...   trace, approximate and encode each image
//	trace FILE       print the closed polygon edges of an image
//	sample FILE X Y  report the color at a pixel and how it classifies
//	serve            run the MCP tool server on stdin/stdout
//
// Results go to stdout; logs, progress and errors go to stderr.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ironsheep/boundary-codec/internal/contour"
	"github.com/ironsheep/boundary-codec/internal/imaging"
)

const (
	// envLogLevel enables debug logging when set to "debug".
	envLogLevel = "BOUNDARY_CODEC_LOG_LEVEL"

	// envThreshold supplies the threshold when no --threshold flag is given.
	envThreshold = "BOUNDARY_CODEC_THRESHOLD"
)

// BuildInfo identifies the binary. The fields are set by ldflags.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// app holds state shared by the subcommands of one root command.
type app struct {
	info  BuildInfo
	debug bool

	// logger is nil unless debug logging is enabled.
	logger *log.Logger
}

// NewRootCommand builds the command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{info: info}

	root := &cobra.Command{
		Use:   "boundary-codec",
		Short: "Contour extraction and boundary encoding for silhouette images",
		Long: `boundary-codec traces the single closed contour of a thresholded image,
approximates it with a closed polygon, and encodes the polygon edges under
six shape-description schemes.

Environment variables:
  ` + envLogLevel + `=debug    Enable debug logging
  ` + envThreshold + `=R,G,B   Default contour threshold`,
		Version:       info.Version, // enables the --version flag
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setupLogging(cmd.ErrOrStderr())
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} {{.Version}}\n  Build time: %s\n  Git commit: %s\n", info.BuildTime, info.GitCommit))
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (same as "+envLogLevel+"=debug)")

	root.AddCommand(
		newEncodeCommand(a),
		newTraceCommand(a),
		newSampleCommand(a),
		newServeCommand(a),
	)
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute(info BuildInfo) {
	// Create a context that listens for Ctrl+C (SIGINT) or Kill (SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand(info).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setupLogging configures the standard logger to write to w, and enables the
// pipeline logger when debug logging was requested.
func (a *app) setupLogging(w io.Writer) {
	// stdout is reserved for results and the MCP stream
	log.SetOutput(w)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if a.debug || os.Getenv(envLogLevel) == "debug" {
		a.logger = log.New(w, "", log.Ldate|log.Ltime|log.Lshortfile)
		a.logger.Printf("boundary-codec %s (built %s, commit %s)", a.info.Version, a.info.BuildTime, a.info.GitCommit)
	}
}

// contourFlags are the flags shared by the commands that trace a contour.
type contourFlags struct {
	threshold string
	step      int
	region    string
}

func (f *contourFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.threshold, "threshold", "t", imaging.DefaultThreshold.String(),
		"Contour threshold: a level, r,g,b or #hex (env "+envThreshold+")")
	cmd.Flags().IntVarP(&f.step, "step", "s", contour.DefaultStep, "Polygon sampling step in contour points")
	cmd.Flags().StringVar(&f.region, "region", "", "Crop to x1,y1,x2,y2 before tracing")
}

// resolveThreshold parses the --threshold flag, falling back to the
// environment when the flag was not given.
func resolveThreshold(cmd *cobra.Command, flag string) (imaging.Threshold, error) {
	raw := flag
	if !cmd.Flags().Changed("threshold") {
		if env := os.Getenv(envThreshold); env != "" {
			raw = env
		}
	}
	t, err := imaging.ParseThreshold(raw)
	if err != nil {
		return imaging.Threshold{}, fmt.Errorf("invalid --threshold: %w", err)
	}
	return t, nil
}

func parseRegion(raw string) (*imaging.Region, error) {
	if raw == "" {
		return nil, nil
	}
	r, err := imaging.ParseRegion(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --region: %w", err)
	}
	return &r, nil
}
