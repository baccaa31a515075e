package drawer

// MenuEntry is one menu row and the card it reveals. Index is the card's
// position in the stack and in the menu.
type MenuEntry struct {
	Label string
	Index int
}

// Entries numbers labels in order.
func Entries(labels ...string) []MenuEntry {
	out := make([]MenuEntry, len(labels))
	for i, l := range labels {
		out[i] = MenuEntry{Label: l, Index: i}
	}
	return out
}
