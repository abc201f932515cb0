package probe

// Output raw result of one probe invocation
type Output struct {
	Stdout    string
	ElapsedMS int
}

// Job a sanitized target paired with its position in the input list
type Job struct {
	Index  int
	Target string
}

// Result represents the outcome of probing a single target
type Result struct {
	Target    string `json:"target"`
	Success   bool   `json:"success"`
	LatencyMS int    `json:"latency_ms"`
	Output    string `json:"output"`
}
