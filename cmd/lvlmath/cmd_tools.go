// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlmath/calc"
	"github.com/katalvlaran/lvlmath/graphing"
	"github.com/katalvlaran/lvlmath/integral"
	"github.com/katalvlaran/lvlmath/workbench"
)

func (*app) matrixCmd() *cobra.Command {
	var aFlag, bFlag string
	cmd := &cobra.Command{
		Use:   "matrix <op>",
		Short: "Run a matrix operation (add, subtract, multiply, determinant, transpose, inverse)",
		Example: `  lvlmath matrix multiply --a "1,2;3,4" --b "5,6;7,8"
  lvlmath matrix det --a "6,1,1;4,-2,5;2,8,7"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := workbench.ParseOp(args[0])
			if err != nil {
				return err
			}
			ma, err := parseRows(aFlag)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			mb, err := parseRows(bFlag)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}

			res := workbench.Compute(op, ma, mb)
			out := cmd.OutOrStdout()
			if !res.OK() {
				fmt.Fprintln(out, errorStyle.Render(res.Text))
				return nil
			}
			fmt.Fprintln(out, panel(op.String(), res.Text))

			return nil
		},
	}
	cmd.Flags().StringVar(&aFlag, "a", "", `matrix A, rows separated by ';' ("1,2;3,4")`)
	cmd.Flags().StringVar(&bFlag, "b", "", "matrix B for add, subtract and multiply")
	_ = cmd.MarkFlagRequired("a")

	return cmd
}

func (a *app) integralCmd() *cobra.Command {
	var params []string
	cmd := &cobra.Command{
		Use:     "integral <rule>",
		Short:   "Evaluate an integral rule",
		Example: `  lvlmath integral power --param a=3 --param n=2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := integral.ParseRuleID(args[0])
			if err != nil {
				return err
			}
			pm, err := parseParams(params)
			if err != nil {
				return err
			}

			ev := integral.NewEvaluator(integral.WithLogger(a.log.Named("integral")))
			if err = ev.Select(id); err != nil {
				return err
			}
			for k, v := range pm {
				if err = ev.Set(k, v); err != nil {
					return err
				}
			}
			rule, _ := integral.Lookup(id)
			fmt.Fprintln(cmd.OutOrStdout(), panel(rule.Label, labelStyle.Render(rule.Formula)+"\n"+ev.Evaluate()))

			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "parameter as key=value (repeatable)")

	cmd.AddCommand(&cobra.Command{
		Use:   "rules",
		Short: "List integral rules and their parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, r := range integral.Rules() {
				keys := make([]string, len(r.Params))
				for i, p := range r.Params {
					keys[i] = fmt.Sprintf("%s=%s", p.Key, calc.FormatResult(p.Default))
				}
				fmt.Fprintf(out, "%-12s %s\n%-12s %s\n", titleStyle.Render(r.Name), r.Formula, "", labelStyle.Render(strings.Join(keys, " ")))
			}

			return nil
		},
	})

	return cmd
}

func (*app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "calc <expression>",
		Short:   "Evaluate an arithmetic expression",
		Example: `  lvlmath calc "2+3*4"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := calc.Eval(strings.Join(args, " "))
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), calc.KeypadError)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calc.FormatResult(v))

			return nil
		},
	}
}

func (*app) plotCmd() *cobra.Command {
	var (
		outPath string
		xr, yr  []float64
	)
	cmd := &cobra.Command{
		Use:     "plot <expression>",
		Short:   "Render y = f(x) to a PNG file",
		Example: `  lvlmath plot "sin(x)/x" --x -20,20 --y -1,1 -o sinc.png`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err = graphing.RenderPNG(f, args[0], graphing.RangeOf(xr), graphing.RangeOf(yr)); err != nil {
				_ = f.Close()
				_ = os.Remove(outPath)
				return err
			}
			if err = f.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("wrote "+outPath))

			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "plot.png", "output PNG path")
	cmd.Flags().Float64SliceVar(&xr, "x", []float64{-10, 10}, "x range as min,max")
	cmd.Flags().Float64SliceVar(&yr, "y", []float64{-10, 10}, "y range as min,max")

	return cmd
}
