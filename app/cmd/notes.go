package main

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/ribgsilva/notes/business/v1/note"
	"github.com/spf13/cobra"
	"text/tabwriter"
	"time"
)

var listJSON bool

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Inspect the stored notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every note in creation order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		conn, cfg, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close(ctx)

		notes, err := note.NewCore(conn.Notes(cfg.Database.OperationTimeout)).List(ctx)
		if err != nil {
			return err
		}
		return printNotes(cmd, notes)
	},
}

func init() {
	notesListCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	notesCmd.AddCommand(notesListCmd)
	rootCmd.AddCommand(notesCmd)
}

func printNotes(cmd *cobra.Command, notes []note.Note) error {
	out := cmd.OutOrStdout()
	if listJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	if len(notes) == 0 {
		fmt.Fprintln(out, "no notes")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCREATED\tUPDATED")
	for _, n := range notes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.Id, n.Title, n.CreatedAt.Format(time.RFC3339), n.UpdatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}
