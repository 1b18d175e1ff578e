package schema

import (
	"context"
	"fmt"
	"io"

	"github.com/ribgsilva/memo-api/persistence/v1/schema"
	"github.com/ribgsilva/memo-api/platform/database"
	"github.com/ribgsilva/memo-api/sys"
	"go.uber.org/zap"
)

func ListCommands(out io.Writer) {
	fmt.Fprintln(out, "Schema Commands")
	fmt.Fprintln(out, "\tcreate\t\t\t- Creates the schema")
	fmt.Fprintln(out, "\tdelete\t\t\t- Deletes the schema")
	fmt.Fprintln(out, "\thelp\t\t\t- Print the commands available")
}

// Run executes one schema command against the database configured in the environment
func Run(log *zap.SugaredLogger, out io.Writer, options []string) error {
	if len(options) == 0 || (options[0] != "create" && options[0] != "delete") {
		ListCommands(out)
		return nil
	}

	res := &sys.Resources{
		Configs: sys.LoadConfigs(log),
		Log:     log,
	}
	db, err := database.Open(context.Background(), database.Config{
		Driver:        res.Configs.Database.Driver,
		ConnectionURL: res.Configs.Database.ConnectionURL,
		PingTimeout:   res.Configs.Database.PingTimeout,
	})
	if err != nil {
		return err
	}
	defer database.Close(log, db)
	res.Database = db

	return Exec(context.Background(), res, out, options[0])
}

// Exec runs command on already opened resources
func Exec(ctx context.Context, r *sys.Resources, out io.Writer, command string) error {
	switch command {
	case "create":
		fmt.Fprintln(out, "creating schema")
		if err := schema.Create(ctx, r); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		fmt.Fprintln(out, "created schema")
	case "delete":
		fmt.Fprintln(out, "deleting schema")
		if err := schema.Drop(ctx, r); err != nil {
			return fmt.Errorf("failed to delete schema: %w", err)
		}
		fmt.Fprintln(out, "deleted schema")
	default:
		ListCommands(out)
	}
	return nil
}
