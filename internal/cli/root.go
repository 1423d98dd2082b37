package cli

import (
	"github.com/spf13/cobra"

	"github.com/phambaophuc/chimg/internal/models"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// Runner executes a parsed request.
type Runner interface {
	Run(req *models.ResizeRequest) error
}

// NewRootCmd builds the chimg command. Errors are returned to the caller
// rather than printed, so they can be styled consistently.
func NewRootCmd(runner Runner) *cobra.Command {
	var (
		req    models.ResizeRequest
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "chimg --input <path> [flags]",
		Short: "Change the size of an image",
		Long: `chimg loads one image, optionally resizes it and writes it back out.

Width and height are resolved independently: an omitted axis keeps the
source image's size. Without --output the input file is the destination,
and an existing destination is only replaced with --over_write=1.

Example usage:
  chimg --input photo.png --width 100             # 100 x original height, skipped: photo.png exists
  chimg --input photo.png --width 100 --over_write 1
  chimg --input photo.jpg --output small.png --width 320 --height 200 --show 1`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed(models.FlagWidth) {
				req.Width = &width
			}
			if flags.Changed(models.FlagHeight) {
				req.Height = &height
			}
			return runner.Run(&req)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.Input, models.FlagInput, "", "Path to the input file")
	flags.StringVar(&req.Output, models.FlagOutput, "", "Path to the output file (defaults to the input file)")
	flags.IntVar(&width, models.FlagWidth, 0, "Output image width (defaults to the source width)")
	flags.IntVar(&height, models.FlagHeight, 0, "Output image height (defaults to the source height)")
	flags.IntVar(&req.OverWrite, models.FlagOverWrite, 0, "Overwrite the output file if it already exists (1/0)")
	flags.IntVar(&req.Show, models.FlagShow, 0, "Show the image after changes (1/0)")
	cmd.MarkFlagRequired(models.FlagInput)

	return cmd
}
