// Package cli wires configuration, logging and the game front ends into the
// gamma command.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"gamma/internal/batch"
	"gamma/internal/command"
	"gamma/internal/config"
	"gamma/internal/interactive"
	"gamma/internal/logging"
	"gamma/internal/session"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	envFile string
	cfg     config.Config
	log     *zap.Logger
	ready   bool
	mgr     *session.Manager
}

func newApp() *app {
	return &app{v: config.New(), log: zap.NewNop()}
}

func NewRootCmd() *cobra.Command {
	return newApp().rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gamma",
		Short: "Play gamma, a territory game for any number of players",
		Long: `Reads a mode line from standard input and starts a game.

  B width height players areas   answer batch commands, one per line
  I width height players areas   play in the terminal

Batch commands:
  m player x y   place a stone
  g player x y   golden move, take over another player's stone
  b player       number of stones of player
  f player       number of cells player may still take
  q player       whether player can still make a golden move
  p              print the board`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runClassic,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "Config file (yaml, json or toml)")
	flags.StringVar(&a.envFile, "env-file", "", "Dotenv file with GAMMA_* variables")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-format", "console", "Log format: console or json")
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", flags.Lookup("log-format"))

	root.AddCommand(newPlayCmd(a))
	return root
}

// Execute runs the gamma command and reports the error it fails with, if any.
func Execute() error {
	a := newApp()
	root := a.rootCmd()
	err := root.Execute()
	if err == nil {
		return nil
	}
	if a.ready {
		a.log.Error("gamma failed", zap.Error(err))
		_ = a.log.Sync()
	} else {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.envFile != "" {
		if err := config.LoadEnvFile(a.envFile); err != nil {
			return err
		}
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	log, err := logging.NewTo(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.ready = true
	a.mgr = session.NewManager(session.NewMemoryStore(), cfg.Game, log)
	return nil
}

func (a *app) runClassic(cmd *cobra.Command, _ []string) error {
	defer a.log.Sync()

	exec := batch.New(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), cmd.ErrOrStderr(), a.log)
	s, mode, err := exec.SelectMode(a.mgr)
	if errors.Is(err, batch.ErrNoGame) {
		a.log.Debug("no game started", zap.Int("lines", exec.Line()))
		return nil
	}
	if err != nil {
		return err
	}
	defer a.mgr.Close(s.ID)

	a.log.Debug("mode selected", zap.Stringer("mode", mode), zap.Int("line", exec.Line()))
	switch mode {
	case command.Interactive:
		return a.playInteractive(cmd, s, exec.Reader())
	default:
		return exec.Run(s)
	}
}

func (a *app) playInteractive(cmd *cobra.Command, s *session.Session, in io.Reader) error {
	out := cmd.OutOrStdout()
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		restore, raw, err := interactive.MakeRaw(int(f.Fd()))
		if err != nil {
			return err
		}
		defer restore()
		if raw {
			out = interactive.CRLF(out)
		}
	}
	return interactive.New(s, in, out, a.cfg.UI, a.log).Run()
}
