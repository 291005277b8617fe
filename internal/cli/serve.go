package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/boundary-codec/internal/contour"
	"github.com/ironsheep/boundary-codec/internal/imaging"
	"github.com/ironsheep/boundary-codec/internal/server"
)

func newServeCommand(a *app) *cobra.Command {
	var flags contourFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server on stdin/stdout",
		Long: `Run an MCP (Model Context Protocol) server that exposes the contour tools
over JSON-RPC 2.0 on stdin/stdout. The --threshold and --step flags set the
defaults for tool calls that leave them out.

Configure it in an MCP client as a stdio server running "boundary-codec serve".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.pipelineOptions(cmd, &flags)
			if err != nil {
				return err
			}
			// Tool results are not logged per call.
			opts.Logger = nil

			server.Version = a.info.Version
			if a.logger != nil {
				a.logger.Printf("serving on stdio with threshold %s, step %d", opts.Threshold, opts.Step)
			}

			srv := server.NewWithOptions(opts)
			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				log.Printf("Server error: %v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.threshold, "threshold", "t", imaging.DefaultThreshold.String(),
		"Default contour threshold: a level, r,g,b or #hex (env "+envThreshold+")")
	cmd.Flags().IntVarP(&flags.step, "step", "s", contour.DefaultStep, "Default polygon sampling step")
	return cmd
}
