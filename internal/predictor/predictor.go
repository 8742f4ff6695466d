package predictor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"shikshamitra/internal/models"
)

// SchemaMismatchError reports that a query resolved to an eligibility column
// the catalog schema does not carry. It signals catalog/schema drift, not a
// user-correctable input problem.
type SchemaMismatchError struct {
	Column string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("eligibility column %q not found in catalog schema", e.Column)
}

// columnFor maps (category, gender) to the cutoff column that applies.
// General candidates share one column regardless of gender; every reserved
// category has male and female columns.
func columnFor(category, gender string) string {
	switch category {
	case "Gen":
		return models.ColGen
	case "EWS":
		if gender == "female" {
			return models.ColFEWS
		}
		return models.ColMEWS
	case "OBC":
		if gender == "female" {
			return models.ColFOBC
		}
		return models.ColMOBC
	case "SC":
		if gender == "female" {
			return models.ColFSC
		}
		return models.ColMSC
	case "ST":
		if gender == "female" {
			return models.ColFST
		}
		return models.ColMST
	}
	return ""
}

// ValidateQuery checks the user-supplied query fields. The engine itself
// assumes a validated query.
func ValidateQuery(q models.EligibilityQuery) error {
	if q.Gender != "male" && q.Gender != "female" {
		return fmt.Errorf("gender must be male or female")
	}
	if columnFor(q.Category, q.Gender) == "" {
		return fmt.Errorf("unknown reservation category %q", q.Category)
	}
	if q.Rank < 1 {
		return fmt.Errorf("rank must be a positive integer")
	}
	return nil
}

// Match filters the catalog rows against the query and returns the eligible
// rows in catalog order. It is pure: identical inputs yield identical
// results, and it never modifies its inputs.
//
// A row is eligible when its cutoff in the resolved column is greater than
// or equal to the query rank, or when the column holds no parseable number.
// A missing cutoff means "no published data", which must never silently
// exclude an institute; such rows carry a nil cutoff in the result.
func Match(records []models.CutoffRecord, q models.EligibilityQuery) ([]models.EligibilityRow, error) {
	column := columnFor(q.Category, q.Gender)
	if !knownColumn(column) {
		return nil, &SchemaMismatchError{Column: column}
	}

	group := strings.TrimSpace(q.GroupLabel)
	rows := []models.EligibilityRow{}
	for _, rec := range records {
		if strings.TrimSpace(rec.GroupLabel) != group {
			continue
		}
		cutoff, ok := parseCutoff(rec.Cutoffs[column])
		if ok && cutoff < q.Rank {
			continue
		}
		row := models.EligibilityRow{Institute: rec.Institute, Branch: rec.Branch}
		if ok {
			v := cutoff
			row.Cutoff = &v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func knownColumn(column string) bool {
	for _, c := range models.EligibilityColumns {
		if c == column {
			return true
		}
	}
	return false
}

// parseCutoff coerces a raw catalog cell to a rank. Non-numeric cells report
// ok=false and are treated as unknown, never as zero.
func parseCutoff(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n, true
	}
	// Some published tables carry cutoffs as floats (e.g. "4200.0").
	// ParseFloat also accepts "NaN" and "Inf", which are NA tokens in the
	// source data, not ranks.
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f), true
	}
	return 0, false
}
