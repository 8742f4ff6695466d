package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"shikshamitra/internal/models"
)

// Catalog holds the cutoff table. It is loaded once at startup and never
// mutated afterwards, so concurrent readers need no synchronization.
type Catalog struct {
	records []models.CutoffRecord
}

// Load reads the cutoff CSV from path. The header must carry institute,
// branch and category columns plus the nine eligibility columns; header
// matching is case-insensitive. Data rows keep their file order.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses catalog CSV content from r.
func Read(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"institute", "branch", "category"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("catalog header missing %q column", required)
		}
	}

	var records []models.CutoffRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row: %w", err)
		}
		cell := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}
		rec := models.CutoffRecord{
			Institute:  strings.TrimSpace(cell("institute")),
			Branch:     strings.TrimSpace(cell("branch")),
			GroupLabel: cell("category"),
			Cutoffs:    make(map[string]string, len(models.EligibilityColumns)),
		}
		for _, col := range models.EligibilityColumns {
			rec.Cutoffs[col] = cell(col)
		}
		records = append(records, rec)
	}

	return &Catalog{records: records}, nil
}

// Records returns the rows in catalog order. Callers must not modify the
// returned slice.
func (c *Catalog) Records() []models.CutoffRecord {
	return c.records
}

// GroupLabels returns the distinct trimmed group labels, sorted.
func (c *Catalog) GroupLabels() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, rec := range c.records {
		label := strings.TrimSpace(rec.GroupLabel)
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
