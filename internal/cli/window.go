package cli

import (
	"carddrawer/ui/mobile"

	"github.com/spf13/cobra"
)

func newWindowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Run the drawer in a desktop window",
		Long: `Opens a window sized to the configured viewport. Click the hamburger
to open the menu, a menu row to select it and a card to close the drawer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			return mobile.Run(e.cfg, e.tr, e.log)
		},
	}
}
