package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vit0-9/mailr_api/pkg/utils/csvimport"
)

func TestExport(t *testing.T) {
	data, err := Export([]csvimport.ExportRow{
		{Domain: "a.com", ForwardingURL: "https://a.com/x,y", Status: "Active", Provider: "Google"},
		{Domain: "b.io", ForwardingURL: "https://b.io", Status: "Pending", Provider: "Microsoft"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Domain", "Forwarding URL", "Status", "Provider"},
		{"a.com", "https://a.com/x,y", "Active", "Google"},
		{"b.io", "https://b.io", "Pending", "Microsoft"},
	}, rows)
}

func TestExport_Empty(t *testing.T) {
	data, err := Export(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
