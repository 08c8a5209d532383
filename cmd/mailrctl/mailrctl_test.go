package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate(t *testing.T) {
	path := writeFile(t, "domains.csv", "domain,url\ngood.com,https://good.com\nbad,https://x.com\n")
	out, err := run(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, "ok       good.com -> https://good.com")
	require.Contains(t, out, "invalid  bad: invalid domain format")
	require.Contains(t, out, "2 rows, 1 valid, 1 invalid")
}

func TestValidate_DomainListHeader(t *testing.T) {
	path := writeFile(t, "domains.csv", "forwarding url\ngood.com,https://good.com\n")

	out, err := run(t, "validate", path)
	require.NoError(t, err)
	require.Contains(t, out, "2 rows, 1 valid, 1 invalid")

	out, err = run(t, "validate", "--domain-list", path)
	require.NoError(t, err)
	require.Contains(t, out, "1 rows, 1 valid, 0 invalid")
}

func TestValidate_NoValidRows(t *testing.T) {
	path := writeFile(t, "domains.csv", "domain\nnope\n")
	_, err := run(t, "validate", path)
	require.ErrorIs(t, err, errNoValidRows)

	_, err = run(t, "validate", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	require.NotErrorIs(t, err, errNoValidRows)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"domain inboxes", []string{"--plan", "domain-inboxes", "--domains", "10", "--inboxes", "3"}, "domain-inboxes: 30 inbox x $2.50 = $75.00"},
		{"microsoft per domain", []string{"--plan", "microsoft-inboxes", "--domains", "10", "--inboxes", "3"}, "microsoft-inboxes: 10 domain x $60.00 = $600.00"},
		{"explicit units", []string{"--plan", "domain-slots", "--units", "50"}, "domain-slots: 50 slot x $12.00 = $600.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"quote"}, tt.args...)...)
			require.NoError(t, err)
			require.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}

	_, err := run(t, "quote", "--plan", "gold")
	require.ErrorContains(t, err, "unknown --plan")
}

func TestExport(t *testing.T) {
	out, err := run(t, "export")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, "Domain,Forwarding URL,Status,Provider", lines[0])
	require.Equal(t, "growthleads.com,https://acme.com,Active,Google", lines[1])

	path := filepath.Join(t.TempDir(), "domains.xlsx")
	out, err = run(t, "export", "--xlsx", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote 12 domains")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Domains", "A2")
	require.NoError(t, err)
	require.Equal(t, "growthleads.com", v)
}
