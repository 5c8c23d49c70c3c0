package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/tickmark/internal/config"
	"github.com/hpungsan/tickmark/internal/errors"
	"github.com/hpungsan/tickmark/internal/ops"
	tsync "github.com/hpungsan/tickmark/internal/sync"
	"github.com/hpungsan/tickmark/internal/vault"
	"github.com/hpungsan/tickmark/internal/web"
)

// appContext carries the vault and engine into commands that sync.
type appContext struct {
	vault  *vault.Dir
	engine *tsync.Engine
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config, app *appContext) *cli.App {
	a := &cli.App{
		Name:    "tickmark",
		Usage:   "Reminders synced into your daily notes",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(db),
			listCmd(db),
			doneCmd(db),
			rmCmd(db),
			syncCmd(app),
			watchCmd(app),
			serveCmd(db, cfg, app),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	a.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return a
}

// addCmd creates the add command.
func addCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a reminder",
		ArgsUsage: "<title>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Scheduled date (YYYY-MM-DD, default today)"},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "Source note (default: the date's daily note)"},
			&cli.IntFlag{Name: "priority", Aliases: []string{"p"}, Usage: "Sort priority; lower renders first"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return outputError(errors.NewInvalidRequest("title is required"))
			}

			date, err := ops.ParseDate(c.String("date"))
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Add(db, ops.AddInput{
				Title:      c.Args().First(),
				Date:       date,
				SourceFile: c.String("source"),
				Priority:   c.Int("priority"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List reminders for a date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Scheduled date (YYYY-MM-DD, default today)"},
			&cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "List every reminder regardless of date"},
		},
		Action: func(c *cli.Context) error {
			date, err := ops.ParseDate(c.String("date"))
			if err != nil {
				return outputError(err)
			}

			output, err := ops.List(db, ops.ListInput{Date: date, All: c.Bool("all")})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// doneCmd creates the done command.
func doneCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Mark a reminder done (or reopen it)",
		ArgsUsage: "[key]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Title prefix, used when no key is given"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Date scoping the title prefix (default today)"},
			&cli.BoolFlag{Name: "undo", Usage: "Reopen instead of completing"},
		},
		Action: func(c *cli.Context) error {
			date, err := ops.ParseDate(c.String("date"))
			if err != nil {
				return outputError(err)
			}

			input := ops.CompleteInput{
				Title: c.String("title"),
				Date:  date,
				Done:  !c.Bool("undo"),
			}
			if c.NArg() > 0 {
				input.Key = c.Args().First()
			}

			output, err := ops.Complete(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// rmCmd creates the rm command.
func rmCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Delete a reminder permanently",
		ArgsUsage: "[key]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Title prefix, used when no key is given"},
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Date scoping the title prefix (default today)"},
		},
		Action: func(c *cli.Context) error {
			date, err := ops.ParseDate(c.String("date"))
			if err != nil {
				return outputError(err)
			}

			input := ops.RemoveInput{
				Title: c.String("title"),
				Date:  date,
			}
			if c.NArg() > 0 {
				input.Key = c.Args().First()
			}

			output, err := ops.Remove(db, input)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// syncCmd creates the sync command.
func syncCmd(app *appContext) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Render a date's reminders into its daily note",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "Date to sync (YYYY-MM-DD, default today)"},
		},
		Action: func(c *cli.Context) error {
			date, err := ops.ParseDate(c.String("date"))
			if err != nil {
				return outputError(err)
			}

			output := ops.SyncNow(app.engine, ops.SyncInput{Date: date, Quiet: true})
			return outputJSON(output)
		},
	}
}

// watchCmd creates the watch command.
func watchCmd(app *appContext) *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Watch the vault and reconcile notes as they change",
		Action: func(c *cli.Context) error {
			watcher, err := vault.NewWatcher()
			if err != nil {
				return outputError(errors.NewInternal(err))
			}

			if err := watcher.Start(app.vault.Root()); err != nil {
				return outputError(errors.NewInternal(err))
			}
			defer watcher.Stop()

			log.Printf("watching %s", app.vault.Root())

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case event, ok := <-watcher.Events():
					if !ok {
						return nil
					}
					if event.Op == vault.OpDelete {
						continue
					}
					doc, err := app.vault.Stat(event.Name)
					if err != nil {
						continue
					}
					if err := app.engine.OnDocumentModified(doc); err != nil {
						log.Printf("watch: %s: %v", event.Name, err)
					}
				case err, ok := <-watcher.Errors():
					if !ok {
						return nil
					}
					log.Printf("watch: %v", err)
				case <-sigCh:
					return nil
				}
			}
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config, app *appContext) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 7997, Usage: "Port"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(db, app.engine, app.vault, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if tErr, ok := err.(*errors.TickError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", tErr.Code, tErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
