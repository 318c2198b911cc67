package worker

// CodeIssue is a single finding in a code review.
type CodeIssue struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Severity    string `json:"severity"`
}

type CodeResult struct {
	Summary                 string      `json:"summary"`
	Issues                  []CodeIssue `json:"issues"`
	FixExplanation          string      `json:"fix_explanation"`
	FixedCode               string      `json:"fixed_code"`
	OptimizationSuggestions []string    `json:"optimization_suggestions"`
	APIReference            []string    `json:"api_reference"`
	ContextSyncKey          string      `json:"context_sync_key"`
}

type ErrorResult struct {
	ErrorSummary   string   `json:"error_summary"`
	RootCause      string   `json:"root_cause"`
	Evidence       []string `json:"evidence"`
	FixSteps       []string `json:"fix_steps"`
	FixedCode      string   `json:"fixed_code"`
	RiskAnalysis   []string `json:"risk_analysis"`
	RelatedAPIDocs []string `json:"related_api_docs"`
	ContextSyncKey string   `json:"context_sync_key"`
}

// DiffEntry is one change made while porting.
type DiffEntry struct {
	Type string `json:"type"`
	From string `json:"from"`
	To   string `json:"to"`
}

// UnconvertedNote flags a segment that needs a manual port.
type UnconvertedNote struct {
	Segment    string `json:"segment"`
	Status     string `json:"status"`
	Suggestion string `json:"suggestion"`
}

type HipifyResult struct {
	HipCodeFinal     string            `json:"hip_code_final"`
	HipCodeStatic    string            `json:"hip_code_static"`
	DiffSummary      []DiffEntry       `json:"diff_summary"`
	UnconvertedNotes []UnconvertedNote `json:"unconverted_notes"`
	PortingRisks     []string          `json:"porting_risks"`
	Explanation      string            `json:"explanation"`
	ContextSyncKey   string            `json:"context_sync_key"`
}

type APIResult struct {
	APIName        string   `json:"api_name"`
	Description    string   `json:"description"`
	Parameters     []string `json:"parameters"`
	Return         string   `json:"return"`
	Usage          string   `json:"usage"`
	ExampleCode    string   `json:"example_code"`
	Pitfalls       []string `json:"pitfalls"`
	RelatedAPIs    []string `json:"related_apis"`
	Notes          string   `json:"notes"`
	ContextSyncKey string   `json:"context_sync_key"`
}
