// SPDX-License-Identifier: MIT

// Command lvlmath serves the lvlmath HTTP API and exposes the matrix,
// integral, calculator, plotting and solver tools on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlmath/config"
)

// app carries the state shared by every subcommand.
type app struct {
	cfgPath string
	verbose bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "lvlmath",
		Short: "lvlmath - math study toolkit",
		Long: `lvlmath bundles a step-by-step problem solver backed by a language model,
a matrix workbench, an integral rule evaluator, a keypad calculator and a
function plotter. Run "lvlmath serve" to expose them over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			log, err := cfg.Logger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg, a.log = cfg, log

			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", config.DefaultPath, "config file path")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.serveCmd(),
		a.solveCmd(),
		a.historyCmd(),
		a.matrixCmd(),
		a.integralCmd(),
		a.calcCmd(),
		a.plotCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
