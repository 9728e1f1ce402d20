package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/npillmayer/doctree/internal/config"
)

type envKey struct{}

// env is the state shared between commands.
type env struct {
	cfg *config.Config
	log *zap.Logger
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop()}
}

// initializeAppContext prepares configuration and logging after the command
// line has been parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := envFromContext(ctx)
	var err error
	configFile := cmd.String("config")
	if e.cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	e.log = e.cfg.Logging.Prepare()
	e.log.Debug("Program started", zap.Strings("args", os.Args), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		e.log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) error {
	e := envFromContext(ctx)
	_ = e.log.Sync()
	return nil
}

var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	e := envFromContext(ctx)
	if e.cfg != nil {
		e.log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func main() {
	ctx := context.WithValue(context.Background(), envKey{}, &env{log: zap.NewNop()})
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            "doctree",
		Usage:           "builds styled document trees from HTML",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
		},
		Commands: []*cli.Command{
			{
				Name:         "dump",
				Usage:        "Prints the styled document tree of an HTML file",
				OnUsageError: usageErrorHandler,
				Action:       dump,
				ArgsUsage:    "SOURCE",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "property", Aliases: []string{"p"},
						Usage: "print computed `PROPERTY` for every element (repeatable)"},
					&cli.StringFlag{Name: "dot", Usage: "write a GraphViz diagram to `FILE`"},
					&cli.IntFlag{Name: "width", Usage: "override the configured viewport width"},
					&cli.StringFlag{Name: "media", Usage: "override the configured media `TYPE`"},
				},
			},
			{
				Name:         "config",
				Usage:        "Prints either the default or the actual configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
			},
		},
	}

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	var (
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(e.cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
