package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vit0-9/mailr_api/pkg/utils/csvimport"
)

var errNoValidRows = errors.New("no valid domains found")

func newValidateCmd() *cobra.Command {
	var (
		domainList bool
		maxSize    int64
	)

	cmd := &cobra.Command{
		Use:   "validate <file.csv>",
		Short: "Validate a domain CSV and print the status of each row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			text, err := csvimport.ReadAll(f, maxSize)
			if err != nil {
				return err
			}
			mode := csvimport.HeaderDomain
			if domainList {
				mode = csvimport.HeaderDomainList
			}
			rows := csvimport.Parse(text, mode)

			out := cmd.OutOrStdout()
			for _, r := range rows {
				if r.Valid {
					fmt.Fprintf(out, "%4d  ok       %s -> %s\n", r.Line, r.Domain, r.URL)
					continue
				}
				fmt.Fprintf(out, "%4d  invalid  %s: %s\n", r.Line, r.Domain, r.Error)
			}
			s := csvimport.Summarize(rows)
			fmt.Fprintf(out, "%d rows, %d valid, %d invalid\n", s.Total, s.Valid, s.Invalid)
			if s.Valid == 0 {
				return errNoValidRows
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&domainList, "domain-list", false, "Also treat a first line mentioning forwarding or url as a header")
	cmd.Flags().Int64Var(&maxSize, "max-size", 5<<20, "Maximum file size in bytes (0 disables the check)")
	return cmd
}
