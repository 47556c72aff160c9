package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/internal/production"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "fsmx",
		Version: Version,
		Usage:   "Inspect and drive finite state machine configurations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			newStatesCmd(),
			newRunCmd(),
			newDotCmd(),
		},
	}
}

func newStatesCmd() *cli.Command {
	return &cli.Command{
		Name:      "states",
		Usage:     "List the states of a configuration",
		ArgsUsage: "<config>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "event",
				Usage: "only list states with a transition for this event",
			},
		},
		Action: statesAction,
	}
}

func newRunCmd() *cli.Command {
	return &cli.Command{
		Name:        "run",
		Usage:       "Replay steps against a configuration and print the active state after each",
		ArgsUsage:   "<config> <step>...",
		Description: `Steps:
   trigger:<event>   follow the transition for event
   change:<state>    move directly to state
   undo, redo        one-level history
   reset             back to the initial state
   clear             forget undo/redo history`,
		Action: runAction,
	}
}

func newDotCmd() *cli.Command {
	return &cli.Command{
		Name:      "dot",
		Usage:     "Print a configuration as Graphviz DOT",
		ArgsUsage: "<config>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "state",
				Usage: "state to highlight",
			},
		},
		Action: dotAction,
	}
}

func loadConfig(cmd *cli.Command) (*fsmx.Config, error) {
	if cmd.Args().Len() < 1 {
		return nil, errors.New("config file path required")
	}
	cfg, err := fsmx.LoadFile(cmd.Args().First())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func statesAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := fsmx.New(cfg)
	if err != nil {
		return err
	}

	states := m.States()
	if event := cmd.String("event"); event != "" {
		states = m.StatesFor(fsmx.EventID(event))
	}
	for _, id := range states {
		fmt.Fprintln(cmd.Root().Writer, id)
	}
	return nil
}

func runAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.String("log-level"), cmd.Root().ErrWriter)
	m, err := fsmx.New(cfg, fsmx.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "start -> %s\n", m.State())
	for i, step := range cmd.Args().Tail() {
		result, err := applyStep(m, step)
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step, err)
		}
		fmt.Fprintf(out, "%s%s -> %s\n", step, result, m.State())
	}
	return nil
}

// applyStep runs one step. The returned string annotates undo/redo with
// whether they had any effect.
func applyStep(m *fsmx.StateMachine, step string) (string, error) {
	verb, arg, hasArg := strings.Cut(step, ":")
	if hasArg && arg == "" {
		return "", fmt.Errorf("missing argument for %q", verb)
	}

	switch verb {
	case "trigger":
		if !hasArg {
			return "", errors.New("trigger needs an event")
		}
		return "", m.Trigger(fsmx.EventID(arg))
	case "change":
		if !hasArg {
			return "", errors.New("change needs a state")
		}
		return "", m.ChangeState(fsmx.StateID(arg))
	case "undo":
		return fmt.Sprintf(" (%t)", m.Undo()), nil
	case "redo":
		return fmt.Sprintf(" (%t)", m.Redo()), nil
	case "reset":
		m.Reset()
		return "", nil
	case "clear":
		m.ClearHistory()
		return "", nil
	default:
		return "", fmt.Errorf("unknown step %q", step)
	}
}

func dotAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	v := &production.DefaultVisualizer{}
	fmt.Fprint(cmd.Root().Writer, v.ExportDOT(cfg, fsmx.StateID(cmd.String("state"))))
	return nil
}
