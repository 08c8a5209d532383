package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/csvimport"
	"github.com/vit0-9/mailr_api/pkg/utils/spreadsheet"
)

func newExportCmd() *cobra.Command {
	var xlsxPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the sample domain table as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := services.ExportRows(store.SeedDomains())
			if xlsxPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), csvimport.Export(rows))
				return nil
			}
			data, err := spreadsheet.Export(rows)
			if err != nil {
				return err
			}
			if err := os.WriteFile(xlsxPath, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d domains to %s\n", len(rows), xlsxPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Write an XLSX workbook to this path instead")
	return cmd
}
