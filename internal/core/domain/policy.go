package domain

// PolicyPreamble is the fixed instruction block prepended to every policy question.
const PolicyPreamble = `SYSTEM CONTEXT: You are an Expert HR Policy Manager.
RULES:
1. Work Hours: 9:00 AM - 6:00 PM.
2. Leaves: 1.5 Paid Leaves per month (18/year).
3. WFH: Allowed 2 days/week with approval.
4. Probation: 3 Months.
5. Insurance: Starts from Day 1.
`

// ProbePrompt is the trivial prompt used to test a candidate model.
const ProbePrompt = "test"

// DefaultModelCandidates is the model priority list, free and stable first.
var DefaultModelCandidates = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-flash-001",
	"gemini-pro",
}

// BuildPolicyPrompt concatenates the preamble with the literal question.
func BuildPolicyPrompt(query string) string {
	return PolicyPreamble + "\nUSER QUESTION: " + query
}
