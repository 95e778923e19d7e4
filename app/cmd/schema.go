package main

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notes/persistence/v1/database"
	"github.com/ribgsilva/notes/persistence/v1/schema"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage the notes schema",
}

var schemaCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Creates the schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchema(cmd, "creating", "created", schema.Create, schema.CreateMongo)
	},
}

var schemaDropCmd = &cobra.Command{
	Use:     "drop",
	Aliases: []string{"delete"},
	Short:   "Drops the schema and every note in it",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSchema(cmd, "dropping", "dropped", schema.Drop, schema.DropMongo)
	},
}

func init() {
	schemaCmd.AddCommand(schemaCreateCmd, schemaDropCmd)
	rootCmd.AddCommand(schemaCmd)
}

// withSchema runs the sql or the mongo version of a schema change, depending on the configured database
func withSchema(cmd *cobra.Command, doing, done string,
	onSQL func(context.Context, *sql.DB) error,
	onMongo func(context.Context, *mongo.Database) error,
) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	conn, _, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s schema\n", doing)
	switch conn.Kind {
	case database.Mongo:
		err = onMongo(ctx, conn.Mongo)
	case database.MySQL:
		err = onSQL(ctx, conn.SQL)
	default:
		fmt.Fprintf(out, "%s database has no schema\n", conn.Kind)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s schema: %w", doing, err)
	}
	fmt.Fprintf(out, "%s schema\n", done)
	return nil
}
