package models

// Eligibility columns of the cutoff table: one shared general column plus
// gender-specific columns for each reservation category.
const (
	ColGen  = "gen"
	ColMEWS = "mews"
	ColFEWS = "fews"
	ColMOBC = "mobc"
	ColFOBC = "fobc"
	ColMSC  = "msc"
	ColFSC  = "fsc"
	ColMST  = "mst"
	ColFST  = "fst"
)

// EligibilityColumns is the fixed schema of cutoff columns a well-formed
// catalog carries.
var EligibilityColumns = []string{
	ColGen, ColMEWS, ColFEWS, ColMOBC, ColFOBC, ColMSC, ColFSC, ColMST, ColFST,
}

// CutoffRecord is one row of the cutoff catalog. Cutoffs holds the raw cell
// value per eligibility column; empty or non-numeric cells mean "no published
// cutoff for this slot", not zero.
type CutoffRecord struct {
	Institute  string            `json:"institute"`
	Branch     string            `json:"branch"`
	GroupLabel string            `json:"group_label"`
	Cutoffs    map[string]string `json:"cutoffs"`
}

// EligibilityQuery is a candidate's predictor request.
type EligibilityQuery struct {
	Gender     string `json:"gender"`
	GroupLabel string `json:"group_label"`
	Category   string `json:"category"`
	Rank       int    `json:"rank"`
}

// EligibilityRow is one entry of a predictor result. Cutoff is nil when the
// catalog has no published cutoff for the resolved slot; such rows are still
// eligible ("cannot rule out").
type EligibilityRow struct {
	Institute string `json:"institute"`
	Branch    string `json:"branch"`
	Cutoff    *int   `json:"cutoff"`
}
