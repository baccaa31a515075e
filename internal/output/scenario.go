package output

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"carddrawer/internal/config"
	"carddrawer/internal/drawer"
	"carddrawer/internal/widget"
)

// ActionKind is one user gesture.
type ActionKind string

const (
	ActionToggle ActionKind = "toggle"
	ActionSelect ActionKind = "select"
	ActionTap    ActionKind = "tap"
)

type Action struct {
	Kind  ActionKind
	Index int
}

func (a Action) String() string {
	if a.Kind == ActionToggle {
		return string(a.Kind)
	}
	return fmt.Sprintf("%s:%d", a.Kind, a.Index)
}

// ParseAction reads "toggle", "select:N" or "tap:N".
func ParseAction(raw string) (Action, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(raw), ":")
	kind := ActionKind(strings.ToLower(name))

	switch kind {
	case ActionToggle:
		if hasArg {
			return Action{}, fmt.Errorf("action %q takes no index", raw)
		}
		return Action{Kind: kind}, nil
	case ActionSelect, ActionTap:
		if !hasArg {
			return Action{}, fmt.Errorf("action %q needs an index", raw)
		}
		i, err := strconv.Atoi(arg)
		if err != nil {
			return Action{}, fmt.Errorf("action %q: %w", raw, err)
		}
		return Action{Kind: kind, Index: i}, nil
	}
	return Action{}, fmt.Errorf("unknown action %q", raw)
}

func ParseActions(raw []string) ([]Action, error) {
	actions := make([]Action, 0, len(raw))
	for _, r := range raw {
		a, err := ParseAction(r)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, nil
}

// Driver is the part of a mounted widget a scenario needs.
type Driver interface {
	Toggle()
	Select(i int) bool
	TapCard(i int) bool
	Settle(maxFrames int) int
	Frame() widget.Frame
	Targets() drawer.Snapshot
}

var _ Driver = (*widget.Widget)(nil)

// StepResult is the outcome of one scripted action.
type StepResult struct {
	Action   Action
	Accepted bool
	Report   Report
}

// RunScenario applies each action, lets the animations settle and reports
// the resulting frame: Apply -> Settle -> Snapshot -> Bundle.
func RunScenario(
	ctx context.Context,
	d Driver,
	actions []Action,
	cfg config.Config,
	labels []string,
	maxFrames int,
) ([]StepResult, error) {
	results := make([]StepResult, 0, len(actions))

	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("scenario interrupted at %s: %w", a, err)
		}

		// 1. Apply the gesture
		accepted := true
		switch a.Kind {
		case ActionToggle:
			d.Toggle()
		case ActionSelect:
			accepted = d.Select(a.Index)
		case ActionTap:
			accepted = d.TapCard(a.Index)
		default:
			return results, fmt.Errorf("unknown action %q", a.Kind)
		}

		// 2. Settle
		frames := d.Settle(maxFrames)

		// 3. Snapshot and bundle
		r := BuildReport(a.String(), cfg, d.Frame(), d.Targets(), labels)
		r.Frames = frames
		results = append(results, StepResult{Action: a, Accepted: accepted, Report: r})
	}
	return results, nil
}
