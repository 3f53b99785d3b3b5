package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/maze"
	"github.com/katalvlaran/pipeloop/render"
)

var renderDoubled bool

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Draw the classified map",
	Long: `Solves the grid and draws every tile as one glyph:

  L  loop
  .  enclosed
  #  outside

Use --doubled to draw the double-resolution grid the fill runs on.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().BoolVar(&renderDoubled, "doubled", false, "draw at double resolution")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	in, name, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	rep, err := maze.SolveReader(in,
		maze.WithContext(commandContext(cmd)),
		maze.WithLogger(s.logger.With("input", name)),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := append(s.renderOptions(out), render.WithHalve(!renderDoubled))
	return render.Text(out, rep.Labels, opts...)
}
