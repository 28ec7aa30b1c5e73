package commands

import (
	"Inkpot/internal/config"
	"context"
	"fmt"
)

type migrateCmd struct{}

func (migrateCmd) Name() string        { return "migrate" }
func (migrateCmd) Description() string { return "Create or update the database schema" }
func (migrateCmd) Usage() string       { return "migrate" }

func (migrateCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	// миграции применяет сам InitDB
	_, done, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer done()
	fmt.Fprintln(Out, "Schema is up to date")
	return nil
}

func init() { RegisterCmd(migrateCmd{}) }
