// ABOUTME: CLI command for deleting observations.
// ABOUTME: Three modes: by id, by date range with preview, or everything.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	deleteFrom string
	deleteTo   string
	deleteAll  bool
	deleteYes  bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id...]",
	Aliases: []string{"del", "rm"},
	Short:   "Delete observations",
	Long: `Delete observations by id, by date range, or all of them.

MODES:

  bodylog delete abc12345 def67890       # By id (full or 8-char prefix)
  bodylog delete --from 2025-01-01 --to 2025-01-07 --yes
  bodylog delete --all --yes

Range deletion previews the match count and requires --yes. Entries
whose timestamp does not parse are never matched by a range and can
only be removed by id or --all.

CAUTION:

  Deletion is permanent. There is no undo.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case deleteAll:
			if len(args) > 0 || deleteFrom != "" || deleteTo != "" {
				return fmt.Errorf("--all cannot be combined with ids or a range")
			}
			n := len(st.Entries())
			if !deleteYes {
				return fmt.Errorf("this deletes all %d entries; re-run with --yes to confirm", n)
			}
			if err := st.DeleteAll(); err != nil {
				return fmt.Errorf("failed to delete entries: %w", err)
			}
			color.Yellow("✗ %d건 삭제 완료", n)
			return nil

		case deleteFrom != "" || deleteTo != "":
			if len(args) > 0 {
				return fmt.Errorf("a range cannot be combined with ids")
			}
			start, end, err := windowFromFlags(deleteFrom, deleteTo, 0, 7)
			if err != nil {
				return err
			}
			if !deleteYes {
				n := st.CountInRange(start, end)
				fmt.Printf("삭제 대상 미리보기: %d건\n", n)
				return fmt.Errorf("re-run with --yes to confirm")
			}
			n, err := st.DeleteByRange(start, end)
			if err != nil {
				return fmt.Errorf("failed to delete entries: %w", err)
			}
			color.Yellow("✗ %d건 삭제 완료", n)
			return nil

		case len(args) > 0:
			ids, err := resolveIDs(args)
			if err != nil {
				return err
			}
			n, err := st.DeleteByIDs(ids)
			if err != nil {
				return fmt.Errorf("failed to delete entries: %w", err)
			}
			color.Yellow("✗ %d건 삭제 완료", n)
			return nil
		}

		return fmt.Errorf("specify ids, a range (--from/--to), or --all")
	},
}

// resolveIDs expands unique id prefixes to full ids.
func resolveIDs(args []string) ([]string, error) {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		var matches []string
		for _, e := range st.Entries() {
			if e.ID == arg {
				matches = []string{e.ID}
				break
			}
			if len(arg) < len(e.ID) && e.ID[:len(arg)] == arg {
				matches = append(matches, e.ID)
			}
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("not found: %s", arg)
		}
		if len(matches) > 1 {
			return nil, fmt.Errorf("ambiguous prefix %s: matches multiple entries", arg)
		}
		ids = append(ids, matches[0])
	}
	return ids, nil
}

func init() {
	deleteCmd.Flags().StringVar(&deleteFrom, "from", "", "range deletion start date (YYYY-MM-DD)")
	deleteCmd.Flags().StringVar(&deleteTo, "to", "", "range deletion end date (YYYY-MM-DD)")
	deleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete every entry")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "confirm a destructive deletion")
	rootCmd.AddCommand(deleteCmd)
}
