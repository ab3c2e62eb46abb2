package classify

import (
	"fmt"
	"strings"

	"triage/internal/sheet"
)

// Columns holds the resolved index of each required column role.
type Columns struct {
	Reference int
	Status    int
	Initial   int
	Updated   int
}

// ColumnNotFoundError reports a required column role with no matching header.
type ColumnNotFoundError struct {
	Role      string
	Terms     []string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("no column matches the %s role (looked for a name containing %s; columns are %s)",
		e.Role,
		strings.Join(e.Terms, " or "),
		strings.Join(e.Available, ", "))
}

// roleTerms maps each role to the case-insensitive substrings that identify
// it. Resolution scans columns left to right and the first match wins.
var roleTerms = []struct {
	role  string
	terms []string
}{
	{role: "reference", terms: []string{"ref", "reference"}},
	{role: "status", terms: []string{"status"}},
	{role: "initial date", terms: []string{"initial"}},
	{role: "updated date", terms: []string{"updated", "last"}},
}

// ResolveColumns locates the four required column roles in the table header.
// Column names are expected to be trimmed already.
func ResolveColumns(t *sheet.Table) (Columns, error) {
	indexes := make([]int, len(roleTerms))
	for r, role := range roleTerms {
		indexes[r] = -1
		for i, col := range t.Columns {
			if matchesAny(col, role.terms) {
				indexes[r] = i
				break
			}
		}
		if indexes[r] < 0 {
			return Columns{}, &ColumnNotFoundError{
				Role:      role.role,
				Terms:     role.terms,
				Available: t.Columns,
			}
		}
	}
	return Columns{
		Reference: indexes[0],
		Status:    indexes[1],
		Initial:   indexes[2],
		Updated:   indexes[3],
	}, nil
}

func matchesAny(column string, terms []string) bool {
	lowered := strings.ToLower(column)
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
