package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vedicvision/vvadmin/internal/collection"
	"github.com/vedicvision/vvadmin/internal/errors"
	"github.com/vedicvision/vvadmin/internal/ux"
)

var dbTableNames = []string{"users", "plans", "discounts"}

// rawRows renders arbitrary records with the columns of the first row
type rawRows []collection.Record

func (rows rawRows) columns() []string {
	if len(rows) == 0 {
		return nil
	}
	keys := make([]string, 0, len(rows[0]))
	for key := range rows[0] {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (rows rawRows) TableHeaders() []string {
	cols := rows.columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = strings.ToUpper(c)
	}
	return headers
}

func (rows rawRows) TableRows() [][]string {
	cols := rows.columns()
	out := make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = ux.Truncate(r.String(c), 40)
		}
		out[i] = cells
	}
	return out
}

var dbCmd = &cobra.Command{
	Use:       "db [table]",
	Short:     "Dump raw backend tables",
	ValidArgs: dbTableNames,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Long: `Inspect raw rows as stored by the backend: users come from the audit
endpoint with columns the user commands hide, plans and discounts
include inactive rows.

Without an argument every table is dumped.

Examples:
  vvadmin db
  vvadmin db users --output json
  vvadmin db plans --sort price --desc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := requireAdmin(cmd.Context())
		if err != nil {
			return err
		}

		tables := dbTableNames
		if len(args) == 1 {
			tables = args
		}

		dump := make(map[string][]collection.Record, len(tables))
		for _, table := range tables {
			records, err := fetchDBTable(cmd.Context(), s, table)
			if err != nil {
				return err
			}

			view := collection.NewView(nil)
			view, err = viewFromFlags(cmd, view)
			if err != nil {
				return err
			}
			view.SetRecords(records)
			dump[table] = view.Rows()
		}

		formatter, err := newFormatter()
		if err != nil {
			return err
		}
		if outputFormat() == "json" {
			if len(tables) == 1 {
				return formatter.Format(dump[tables[0]])
			}
			return formatter.Format(dump)
		}

		for _, table := range tables {
			fmt.Printf("%s (%d rows)\n", table, len(dump[table]))
			if err := formatter.Format(rawRows(dump[table])); err != nil {
				return err
			}
			fmt.Println()
		}
		return nil
	},
}

func fetchDBTable(ctx context.Context, s *adminSession, table string) ([]collection.Record, error) {
	switch table {
	case "users":
		rows, err := s.client.ListUsersSensitive(ctx)
		if err != nil {
			return nil, err
		}
		records := make([]collection.Record, len(rows))
		for i, row := range rows {
			records[i] = collection.Record(row)
		}
		return records, nil
	case "plans":
		plans, err := s.client.ListPlans(ctx)
		if err != nil {
			return nil, err
		}
		return collection.RecordsOf(plans)
	case "discounts":
		discounts, err := s.client.ListDiscounts(ctx)
		if err != nil {
			return nil, err
		}
		return collection.RecordsOf(discounts)
	}
	return nil, errors.New(errors.ErrCodeValidateRecord, fmt.Sprintf("unknown table %q", table))
}

func init() {
	dbCmd.Flags().String("sort", "", "sort field")
	dbCmd.Flags().Bool("desc", false, "sort descending")

	rootCmd.AddCommand(dbCmd)
}
