package commands

import (
	"Inkpot/internal/config"
	"Inkpot/internal/repo"
	"Inkpot/internal/service"
	"Inkpot/internal/textutil"
	"context"
	"errors"
	"fmt"
	"time"
)

type listUsersCmd struct{}

func (listUsersCmd) Name() string        { return "list-users" }
func (listUsersCmd) Description() string { return "Show authors and their blogs" }
func (listUsersCmd) Usage() string       { return "list-users" }

func (listUsersCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	db, done, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer done()

	users := service.NewUserService(repo.NewUserRepository(db))
	blogs := service.NewBlogService(repo.NewBlogRepository(db))

	list, err := users.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No users")
		return nil
	}
	now := time.Now()
	for _, u := range list {
		blog := "(no blog)"
		info, err := blogs.GetByUser(ctx, u.ID)
		switch {
		case err == nil:
			blog = fmt.Sprintf("blog=%q", info.Title)
		case !errors.Is(err, service.ErrBlogNotFound):
			return err
		}
		fmt.Fprintf(Out, "- %d  %s  %q  %s  joined %s\n", u.ID, u.Login, u.DisplayName, blog, textutil.RelativeTime(u.CreatedAt, now))
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(listUsersCmd{}) }
