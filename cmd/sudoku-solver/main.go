package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "github.com/edcottrell/sudoku-solver/internal/adapters/http"
	"github.com/edcottrell/sudoku-solver/internal/config"
	"github.com/edcottrell/sudoku-solver/internal/domain"
	"github.com/edcottrell/sudoku-solver/internal/hint"
	"github.com/edcottrell/sudoku-solver/internal/infrastructure/storage"
	"github.com/edcottrell/sudoku-solver/internal/render"
	"github.com/edcottrell/sudoku-solver/internal/solver"
	"github.com/edcottrell/sudoku-solver/internal/usecase"
	"github.com/edcottrell/sudoku-solver/internal/validator"
)

// The classic example grid, used when solve is invoked without a file.
const samplePuzzle = `
530070000
600195000
098000060
800060003
400803001
700020006
060000280
000419005
000080079
`

var log = logrus.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		cfgPath  string
		logLevel string
		cfg      config.Config
	)
	root := &cobra.Command{
		Use:           "sudoku-solver",
		Short:         "Deterministic constraint-propagation Sudoku solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Default()
			if cfgPath != "" {
				var err error
				if cfg, err = config.Load(cfgPath); err != nil {
					return err
				}
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			lvl, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("bad log level %q: %w", cfg.LogLevel, err)
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "trace|debug|info|warn|error")
	root.AddCommand(newSolveCommand(&cfg), newServeCommand(&cfg))
	return root
}

func newSolveCommand(cfg *config.Config) *cobra.Command {
	var (
		maxChecks int
		maxIdle   int
		color     bool
		trace     bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Solve a puzzle by propagation alone",
		Long: "Reads a puzzle as 81 cells (digits, with 0/./_ for empty; whitespace\n" +
			"ignored) from a file or stdin, or uses the built-in sample grid. The\n" +
			"solver only propagates; puzzles that need guessing stall and the stall\n" +
			"is reported as the result.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := samplePuzzle
			switch {
			case len(args) == 1 && args[0] == "-":
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = string(data)
			case len(args) == 1:
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				text = string(data)
			}
			grid, err := domain.ParseGrid(text)
			if err != nil {
				return err
			}
			p, err := solver.New(grid)
			if err != nil {
				return err
			}

			params := solver.Parameters{
				MaxChecks:              cfg.Solver.MaxChecks,
				MaxChecksWithoutAction: cfg.Solver.MaxChecksWithoutAction,
			}
			if cmd.Flags().Changed("max-checks") {
				params.MaxChecks = maxChecks
			}
			if cmd.Flags().Changed("max-checks-without-action") {
				params.MaxChecksWithoutAction = maxIdle
			}
			opts := render.Options{EnableColor: color || cfg.Color}

			log.WithFields(logrus.Fields{
				"givens":    81 - p.Unfilled(),
				"maxChecks": params.MaxChecks,
				"maxIdle":   params.MaxChecksWithoutAction,
			}).Debug("solving")

			outcome, err := p.Solve(params)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := render.Grid(out, p.Board(), opts); err != nil {
				return err
			}
			if trace {
				if err := render.Actions(out, p.Actions(), opts); err != nil {
					return err
				}
			}
			report := &domain.SolveReport{
				Outcome:  outcome,
				Checks:   p.Checks(),
				Actions:  p.Actions(),
				Solution: p.Solution(),
			}
			if err := render.Summary(out, report, opts); err != nil {
				return err
			}
			if outcome == domain.OutcomeSolved {
				fmt.Fprintln(out, report.Solution)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxChecks, "max-checks", 10000, "total check budget")
	cmd.Flags().IntVar(&maxIdle, "max-checks-without-action", 500, "stagnation guard")
	cmd.Flags().BoolVar(&color, "color", false, "colorize output")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the full action log")
	return cmd
}

func newServeCommand(cfg *config.Config) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				cfg.Addr = addr
			}
			if err := os.MkdirAll(cfg.PersistPath, 0o755); err != nil {
				return err
			}

			s := solver.NewPropagationSolver(solver.Parameters{
				MaxChecks:              cfg.Solver.MaxChecks,
				MaxChecksWithoutAction: cfg.Solver.MaxChecksWithoutAction,
			})
			uc := usecase.NewService(s, validator.New(), hint.NewSingles(), storage.NewFS(cfg.PersistPath))

			mux := http.NewServeMux()
			httpadapter.New(uc).Register(mux)

			srv := &http.Server{
				Addr:              cfg.Addr,
				Handler:           httpadapter.RequestLogger(log, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.WithFields(logrus.Fields{
				"addr":    cfg.Addr,
				"persist": cfg.PersistPath,
			}).Info("listening")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}
