// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlmath/solver"
)

// solutionMarkdown lays a Solution out as markdown for glamour. A raw
// Solution is shown verbatim under its parse error.
func solutionMarkdown(sol *solver.Solution) string {
	var b strings.Builder
	if sol.IsRaw() {
		fmt.Fprintf(&b, "> %s\n\n%s\n", sol.Error, sol.RawResponse)
		return b.String()
	}

	if sol.ProblemExtracted != "" {
		fmt.Fprintf(&b, "# Problem\n\n%s\n\n", sol.ProblemExtracted)
	}
	if w := sol.Solution; w != nil {
		b.WriteString("## Solution\n\n")
		for _, st := range w.Steps {
			fmt.Fprintf(&b, "### %d. %s\n\n%s\n\n", st.StepNumber, st.Title, st.Explanation)
			if st.Latex != "" {
				fmt.Fprintf(&b, "```latex\n%s\n```\n\n", st.Latex)
			}
		}
		fmt.Fprintf(&b, "**Answer:** %s\n\n", w.FinalAnswer)
	}
	if e := sol.ExamInfo; e != nil {
		b.WriteString("## Exam info\n\n")
		fmt.Fprintf(&b, "- Topic: %s / %s\n- Difficulty: %s\n", e.Topic, e.Subtopic, e.Difficulty)
		if len(e.PossibleExams) > 0 {
			fmt.Fprintf(&b, "- Exams: %s\n", strings.Join(e.PossibleExams, ", "))
		}
		b.WriteString("\n")
	}
	if len(sol.Theorems) > 0 {
		b.WriteString("## Theorems\n\n")
		for _, t := range sol.Theorems {
			fmt.Fprintf(&b, "- **%s**: %s\n", t.Name, t.Statement)
		}
		b.WriteString("\n")
	}
	if g := sol.GraphData; g != nil && g.Has2D && g.PlotExpression2D != "" {
		fmt.Fprintf(&b, "## Graph\n\n`lvlmath plot %q`\n\n", g.PlotExpression2D)
	}
	if pp := sol.PracticeProblems; pp != nil {
		b.WriteString("## Practice\n\n")
		for _, lvl := range []struct {
			name string
			ps   []solver.PracticeProblem
		}{{"Easy", pp.Easy}, {"Medium", pp.Medium}, {"Hard", pp.Hard}} {
			for _, p := range lvl.ps {
				fmt.Fprintf(&b, "- *%s*: %s\n", lvl.name, p.Problem)
			}
		}
		b.WriteString("\n")
	}
	if len(sol.RealLifeApplications) > 0 {
		b.WriteString("## Applications\n\n")
		for _, s := range sol.RealLifeApplications {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
	if len(sol.ReferenceLinks) > 0 {
		b.WriteString("## References\n\n")
		for _, l := range sol.ReferenceLinks {
			fmt.Fprintf(&b, "- [%s](%s) %s\n", l.Name, l.URL, l.Description)
		}
	}

	return b.String()
}
