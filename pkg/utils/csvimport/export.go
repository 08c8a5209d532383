package csvimport

import "strings"

// ExportHeader is the fixed first line of a domain export.
const ExportHeader = "Domain,Forwarding URL,Status,Provider"

// ExportRow is one visible table row to export.
type ExportRow struct {
	Domain        string
	ForwardingURL string
	Status        string
	Provider      string
}

// Export renders rows as CSV text. Values are joined verbatim, so a value
// containing a comma shifts the columns of its line.
func Export(rows []ExportRow) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, ExportHeader)
	for _, r := range rows {
		lines = append(lines, strings.Join([]string{r.Domain, r.ForwardingURL, r.Status, r.Provider}, ","))
	}
	return strings.Join(lines, "\n")
}
