// SPDX-License-Identifier: MIT

package solver

// Solution mirrors the JSON document produced by the completion service.
// A raw Solution carries only RawResponse and Error.
type Solution struct {
	ProblemExtracted     string            `json:"problemExtracted,omitempty"`
	Solution             *Worked           `json:"solution,omitempty"`
	ExamInfo             *ExamInfo         `json:"examInfo,omitempty"`
	Theorems             []Theorem         `json:"theorems,omitempty"`
	GraphData            *GraphData        `json:"graphData,omitempty"`
	YoutubeKeywords      []string          `json:"youtubeKeywords,omitempty"`
	PracticeProblems     *PracticeProblems `json:"practiceProblems,omitempty"`
	QuantitativeAptitude []AptitudeProblem `json:"quantitativeAptitude,omitempty"`
	RealLifeApplications []string          `json:"realLifeApplications,omitempty"`
	ReferenceLinks       []ReferenceLink   `json:"referenceLinks,omitempty"`
	RawResponse          string            `json:"rawResponse,omitempty"`
	Error                string            `json:"error,omitempty"`
}

// IsRaw reports whether the upstream text could not be decoded.
func (s *Solution) IsRaw() bool { return s != nil && s.Error != "" && s.Solution == nil }

// Worked is the step-by-step solution.
type Worked struct {
	Steps       []Step `json:"steps"`
	FinalAnswer string `json:"finalAnswer"`
	Latex       string `json:"latex,omitempty"`
}

type Step struct {
	StepNumber  int    `json:"stepNumber"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Latex       string `json:"latex,omitempty"`
}

type ExamInfo struct {
	PossibleExams       []string `json:"possibleExams"`
	PreviousAppearances []string `json:"previousAppearances"`
	Difficulty          string   `json:"difficulty"`
	Topic               string   `json:"topic"`
	Subtopic            string   `json:"subtopic"`
}

type Theorem struct {
	Name        string `json:"name"`
	Statement   string `json:"statement"`
	Assumptions string `json:"assumptions"`
	Limitations string `json:"limitations"`
	Relevance   string `json:"relevance"`
}

// GraphData describes optional plots; ranges are [min, max].
type GraphData struct {
	Has2D            bool      `json:"has2D"`
	Has3D            bool      `json:"has3D"`
	PlotExpression2D string    `json:"plotExpression2D,omitempty"`
	PlotExpression3D string    `json:"plotExpression3D,omitempty"`
	XRange           []float64 `json:"xRange"`
	YRange           []float64 `json:"yRange"`
}

type PracticeProblems struct {
	Easy   []PracticeProblem `json:"easy"`
	Medium []PracticeProblem `json:"medium"`
	Hard   []PracticeProblem `json:"hard"`
}

type PracticeProblem struct {
	Problem  string `json:"problem"`
	Hint     string `json:"hint"`
	Solution string `json:"solution"`
}

type AptitudeProblem struct {
	Problem    string `json:"problem"`
	Solution   string `json:"solution"`
	Difficulty string `json:"difficulty"`
}

type ReferenceLink struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
