package commands

import (
	"Inkpot/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"regexp"
	"sort"
	"strings"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a blogctl subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "create-user".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "create-user <login> <password> <display name...>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// configKeys: настройки, общие с сервером (env / flag).
var configKeys = [][2]string{
	{"DATABASE_URI / -d", "database DSN: postgres://... or an sqlite file: DSN"},
	{"SUMMARY_LENGTH / -summary-length", "runes kept in article summaries"},
	{"DISPLAY_TZ / -tz", "time zone for dates"},
}

// FormatGlobalUsage builds a help text for all commands. With a non-nil cfg it also shows
// which database the commands will open.
func FormatGlobalUsage(cfg *config.Config) string {
	lines := []string{
		"Inkpot admin CLI",
		"",
		"Usage:",
		"  blogctl [-d <dsn>] <command> [args]",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-44s %s", c.Usage(), c.Description()))
	}
	lines = append(lines, "", "Configuration (shared with the server, .env is read too):")
	for _, kv := range configKeys {
		lines = append(lines, fmt.Sprintf("  %-44s %s", kv[0], kv[1]))
	}
	if cfg != nil && cfg.DatabaseDSN != "" {
		lines = append(lines, "", "Database: "+redactDSN(cfg.DatabaseDSN))
	}
	return strings.Join(lines, "\n") + "\n"
}

var keywordPassword = regexp.MustCompile(`password=\S+`)

// redactDSN прячет пароль в postgres DSN (URL или key=value), sqlite DSN печатаются как есть.
func redactDSN(dsn string) string {
	if strings.Contains(dsn, "password=") {
		return keywordPassword.ReplaceAllString(dsn, "password=xxxxx")
	}
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
