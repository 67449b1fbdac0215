package model

// Document is the root of a LibRML rights expression for one item.
type Document struct {
	ID         string // Item identifier, required
	Tenant     string // Institution the item belongs to
	Mention    bool   // Attribution is required
	ShareAlike bool   // Derivatives must be shared alike
	UsageGuide string // Free-text usage guide
	Template   string // Template the document was derived from

	// Actions are kept in insertion order, which is visible in encoded output.
	Actions *List[*Action]
}

// New creates a document for the given item identifier.
func New(id string) *Document {
	return &Document{
		ID:      id,
		Actions: NewList[*Action](),
	}
}

// AddAction appends an action.
func (d *Document) AddAction(a *Action) *Document {
	d.Actions.Add(a)
	return d
}

// ActionsByType returns every action of the given kind in order. The result
// is empty, never nil, when no action matches.
func (d *Document) ActionsByType(kind ActionType) []*Action {
	matched := make([]*Action, 0)
	for _, a := range d.Actions.All() {
		if a.Type() == kind {
			matched = append(matched, a)
		}
	}
	return matched
}

// RestrictionCount returns the number of restrictions across all actions.
func (d *Document) RestrictionCount() int {
	n := 0
	for _, a := range d.Actions.All() {
		n += a.Restrictions.Len()
	}
	return n
}
