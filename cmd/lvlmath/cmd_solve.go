// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlmath/history"
	"github.com/katalvlaran/lvlmath/solver"
)

func (a *app) solveCmd() *cobra.Command {
	var (
		file   string
		asJSON bool
		noSave bool
	)
	cmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "Solve a problem step by step",
		Example: `  lvlmath solve "x^2 - 5x + 6 = 0"
  lvlmath solve --file worksheet.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req := solver.Request{Problem: strings.Join(args, " ")}
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if req.ImageBase64, req.MIMEType, err = solver.EncodeUpload(file, data); err != nil {
					return err
				}
			}
			if err := req.Validate(); err != nil {
				return err
			}

			sv, err := newSolver(ctx, a.cfg, a.log)
			if err != nil {
				return err
			}
			sol, err := sv.Solve(ctx, req)
			if err != nil {
				return err
			}

			if !noSave {
				a.save(cmd, req, sol)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(sol)
			}
			fmt.Fprint(out, renderMarkdown(solutionMarkdown(sol), 100))

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "image or PDF containing the problem")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the solution as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the solution in history")

	return cmd
}

// save records sol in the history store; failures are logged, not returned.
func (a *app) save(cmd *cobra.Command, req solver.Request, sol *solver.Solution) {
	st, err := history.Open(cmd.Context(), a.cfg.Database.Path, history.WithLogger(a.log.Named("history")))
	if err != nil {
		a.log.Warn("error opening history", zap.Error(err))
		return
	}
	defer st.Close()

	if _, err = st.Insert(cmd.Context(), solver.HistoryText(req, sol), solver.ProblemType(req), sol); err != nil {
		a.log.Warn("error saving to history", zap.Error(err))
	}
}

func (a *app) historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved solutions",
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List the newest saved problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := history.Open(cmd.Context(), a.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, labelStyle.Render("no history yet"))
				return nil
			}
			for _, r := range recs {
				fmt.Fprintf(out, "%s  %s  %-5s  %s\n",
					titleStyle.Render(r.ID),
					labelStyle.Render(r.CreatedAt.Local().Format(time.DateTime)),
					r.ProblemType,
					r.ProblemText)
			}

			return nil
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", history.MaxList, "maximum records")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := history.Open(cmd.Context(), a.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			var sol solver.Solution
			if err = json.Unmarshal(rec.SolutionData, &sol); err != nil {
				return fmt.Errorf("decode %s: %w", rec.ID, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(solutionMarkdown(&sol), 100))

			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := history.Open(cmd.Context(), a.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			if err = st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("deleted "+args[0]))

			return nil
		},
	}

	cmd.AddCommand(list, show, del)

	return cmd
}
