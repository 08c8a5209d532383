package csvimport

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_HeaderAndMixedRows(t *testing.T) {
	rows := Parse("domain,url\nexample.com,https://example.com\nbad domain,not-a-url", HeaderDomain)
	require.Len(t, rows, 2)

	require.True(t, rows[0].Valid)
	require.Equal(t, "example.com", rows[0].Domain)
	require.Equal(t, "https://example.com", rows[0].URL)
	require.Equal(t, "example.com", rows[0].RegistrableDomain)
	require.Equal(t, 2, rows[0].Line)

	require.False(t, rows[1].Valid)
	require.Len(t, rows[1].Errors, 2)
	require.Equal(t, "invalid domain format", rows[1].Error)
}

func TestParse_NoHeader(t *testing.T) {
	rows := Parse("a.com,https://a.com", HeaderDomain)
	require.Len(t, rows, 1)
	require.True(t, rows[0].Valid)
	require.Equal(t, 1, rows[0].Line)
}

func TestParse_DomainListHeaderKeywords(t *testing.T) {
	text := "Site,Forwarding\nshop.io,https://shop.io"
	require.Len(t, Parse(text, HeaderDomainList), 1)
	// The plain mode only looks for "domain", so the first line is data.
	require.Len(t, Parse(text, HeaderDomain), 2)
}

func TestParse_BlankLinesMissingURLAndDuplicates(t *testing.T) {
	text := "a.com,https://a.com\r\n\n   \nb.com\na.com,https://a.com\n"
	rows := Parse(text, HeaderDomain)
	require.Len(t, rows, 3)

	require.Equal(t, "b.com", rows[1].Domain)
	require.Equal(t, "", rows[1].URL)
	require.False(t, rows[1].Valid)
	require.Equal(t, "forwarding URL is required", rows[1].Error)

	require.Equal(t, rows[0].Domain, rows[2].Domain)
	require.Equal(t, 5, rows[2].Line)
}

func TestParse_NaiveCommaSplit(t *testing.T) {
	rows := Parse(`"a.com","https://a.com"`, HeaderDomain)
	require.Len(t, rows, 1)
	require.False(t, rows[0].Valid)
	require.Equal(t, `"a.com"`, rows[0].Domain)
}

func TestSummarizeAndValidRows(t *testing.T) {
	rows := Parse("a.com,https://a.com\nb,https://b.com\nc.com,http://c.com", HeaderDomain)
	s := Summarize(rows)
	require.Equal(t, Summary{Total: 3, Valid: 1, Invalid: 2}, s)
	require.Len(t, ValidRows(rows), 1)
}

func TestReadAll_Limit(t *testing.T) {
	text, err := ReadAll(strings.NewReader("a.com,https://a.com"), 100)
	require.NoError(t, err)
	require.Equal(t, "a.com,https://a.com", text)

	_, err = ReadAll(strings.NewReader(strings.Repeat("x", 11)), 10)
	require.True(t, errors.Is(err, ErrTooLarge))

	_, err = ReadAll(strings.NewReader(strings.Repeat("x", 11)), 0)
	require.NoError(t, err)
}

func TestParseHeaderMode(t *testing.T) {
	m, err := ParseHeaderMode("domain-list")
	require.NoError(t, err)
	require.Equal(t, HeaderDomainList, m)

	m, err = ParseHeaderMode("")
	require.NoError(t, err)
	require.Equal(t, HeaderDomain, m)

	_, err = ParseHeaderMode("xml")
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	out := Export([]ExportRow{
		{Domain: "a.com", ForwardingURL: "https://a.com", Status: "Active", Provider: "Google"},
		{Domain: "b.com", ForwardingURL: "https://b.com/x,y", Status: "Pending", Provider: "Microsoft"},
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	require.Equal(t, ExportHeader, lines[0])
	require.Equal(t, "a.com,https://a.com,Active,Google", lines[1])
	require.Len(t, strings.Split(lines[2], ","), 5)
}
