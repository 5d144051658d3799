package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type playOptions struct {
	width, height, players, areas uint32
}

func newPlayCmd(a *app) *cobra.Command {
	var opts playOptions

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game without a mode line",
		Long: `Start an interactive game in the terminal.

Arrow keys move the cursor, space places a stone, g takes over another
player's stone once per game, c skips the turn and Ctrl-D ends the game.

Examples:
  gamma play
  gamma play --width 20 --height 10 --players 4 --areas 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPlay(cmd, opts)
		},
	}

	playCmd.Flags().Uint32VarP(&opts.width, "width", "x", 10, "Board width")
	playCmd.Flags().Uint32VarP(&opts.height, "height", "y", 10, "Board height")
	playCmd.Flags().Uint32VarP(&opts.players, "players", "p", 2, "Number of players")
	playCmd.Flags().Uint32VarP(&opts.areas, "areas", "a", 3, "Maximum number of areas per player")

	return playCmd
}

func (a *app) runPlay(cmd *cobra.Command, opts playOptions) error {
	defer a.log.Sync()

	s, err := a.mgr.Create(opts.width, opts.height, opts.players, opts.areas)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	defer a.mgr.Close(s.ID)

	a.log.Debug("interactive game", zap.String("session_id", s.ID))
	return a.playInteractive(cmd, s, cmd.InOrStdin())
}
