package control

// NoSelection marks a menu the user dismissed without choosing.
const NoSelection = -1

// MenuItem is one entry of a popup or context menu.
type MenuItem struct {
	Text      string
	Checked   bool
	Disabled  bool
	Separator bool
	// Tag carries caller-defined identity through the selection callback.
	Tag int
}

// Menu is the data model behind prompt and context menus. Constructing the
// on-screen menu from it is the UI collaborator's job; the core only reads
// the chosen index back.
type Menu struct {
	title  string
	items  []*MenuItem
	chosen int
}

// NewMenu returns an empty menu with the given title.
func NewMenu(title string) *Menu {
	return &Menu{title: title, chosen: NoSelection}
}

// Title returns the menu's title.
func (m *Menu) Title() string { return m.title }

// AddItem appends an entry and returns it for further configuration.
func (m *Menu) AddItem(text string) *MenuItem {
	item := &MenuItem{Text: text}
	m.items = append(m.items, item)
	return item
}

// AddSeparator appends a separator entry.
func (m *Menu) AddSeparator() {
	m.items = append(m.items, &MenuItem{Separator: true})
}

// NumItems returns the number of entries, separators included.
func (m *Menu) NumItems() int { return len(m.items) }

// Item returns the entry at index, or nil when out of range.
func (m *Menu) Item(index int) *MenuItem {
	if index < 0 || index >= len(m.items) {
		return nil
	}
	return m.items[index]
}

// SetChosen records the index the user selected. The UI collaborator calls
// this before invoking the selection hook; NoSelection means dismissed.
func (m *Menu) SetChosen(index int) {
	if index < 0 || index >= len(m.items) {
		m.chosen = NoSelection
		return
	}
	m.chosen = index
}

// ChosenIdx returns the selected index, or NoSelection.
func (m *Menu) ChosenIdx() int { return m.chosen }

// Chosen returns the selected item, or nil.
func (m *Menu) Chosen() *MenuItem { return m.Item(m.chosen) }
