package cli

import (
	"context"

	"carddrawer/internal/output"
	"carddrawer/internal/widget"
	"carddrawer/ui/console"

	"github.com/spf13/cobra"
)

// defaultScript opens the drawer and picks the third entry.
var defaultScript = []string{"toggle", "select:2"}

func newTargetsCmd(opts *options) *cobra.Command {
	var maxFrames int

	cmd := &cobra.Command{
		Use:   "targets [action...]",
		Short: "Replay taps and print the settled layout",
		Long: `Mounts a drawer without a screen, applies each action, lets the
animations settle and prints state, per-card targets and styles.

Actions are "toggle", "select:N" (menu row N) and "tap:N" (card N).
Without actions the drawer is opened and the third entry selected.`,
		Example: "  carddrawer targets toggle select:1 tap:1",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = defaultScript
			}
			actions, err := output.ParseActions(args)
			if err != nil {
				return err
			}

			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			w := widget.New(e.cfg, e.log)
			defer w.Unmount()
			w.Settle(maxFrames)

			labels := make([]string, len(w.Entries()))
			for i, entry := range w.Entries() {
				labels[i] = e.tr.Label(entry.Label)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			results, err := output.RunScenario(ctx, w, actions, e.cfg, labels, maxFrames)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range results {
				if !r.Accepted {
					e.log.Warn("action ignored", "action", r.Action.String())
				}
				console.Print(out, r.Report)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxFrames, "frames", 600, "maximum frames to settle after each action")
	return cmd
}
