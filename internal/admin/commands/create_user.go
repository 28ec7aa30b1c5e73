package commands

import (
	"Inkpot/internal/config"
	"Inkpot/internal/repo"
	"Inkpot/internal/service"
	"context"
	"errors"
	"fmt"
	"strings"
)

type createUserCmd struct{}

func (createUserCmd) Name() string        { return "create-user" }
func (createUserCmd) Description() string { return "Register an author account" }
func (createUserCmd) Usage() string       { return "create-user <login> <password> <display name...>" }

func (createUserCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	displayName := strings.Join(args[2:], " ")
	if strings.TrimSpace(args[0]) == "" || strings.TrimSpace(displayName) == "" {
		return ErrUsage
	}

	db, done, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer done()

	svc := service.NewUserService(repo.NewUserRepository(db))
	user, err := svc.Register(ctx, args[0], args[1], displayName)
	if errors.Is(err, service.ErrLoginTaken) {
		return fmt.Errorf("login %q already in use", args[0])
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created user %d (%s)\n", user.ID, user.Login)
	return nil
}

func init() { RegisterCmd(createUserCmd{}) }
