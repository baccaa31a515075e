package views

import (
	"carddrawer/ui/tui/state"
	"carddrawer/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// RenderDrawer lays out the drawer, the optional trace panel and the footer.
func RenderDrawer(s state.AppState, props ViewProps) string {
	footer := styles.FooterStyle.Render(props.HelpView)
	footerH := lipgloss.Height(footer)

	drawerProps := props
	drawerProps.Height = props.Height - footerH
	if s.ShowTrace && props.TraceView != "" {
		drawerProps.Width = props.Width - lipgloss.Width(props.TraceView)
	}

	body := DrawerView{}.Render(s, drawerProps)
	if s.ShowTrace && props.TraceView != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, props.TraceView)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, body, footer))
}
