package model

import "fmt"

// Action is a usage kind granted or denied on the item, optionally narrowed
// by restrictions.
type Action struct {
	kind ActionType

	// Permission is nil when the action states no explicit permission.
	Permission *bool

	// Restrictions are evaluated in order. Repeated kinds are allowed.
	Restrictions *List[Restriction]
}

// NewAction creates an action of the given kind. It panics if kind is not a
// member of ActionType; use ParseActionType to validate untrusted names.
func NewAction(kind ActionType, restrictions ...Restriction) *Action {
	if !kind.Valid() {
		panic(fmt.Sprintf("librml: invalid action type %d", int(kind)))
	}
	a := &Action{
		kind:         kind,
		Restrictions: NewList[Restriction](),
	}
	for _, r := range restrictions {
		a.Restrictions.Add(r)
	}
	return a
}

// Type returns the action kind.
func (a *Action) Type() ActionType {
	return a.kind
}

// AddRestriction appends a restriction.
func (a *Action) AddRestriction(r Restriction) *Action {
	a.Restrictions.Add(r)
	return a
}

// WithPermission sets an explicit permission flag.
func (a *Action) WithPermission(permitted bool) *Action {
	a.Permission = &permitted
	return a
}

// Permitted reports whether the permission flag is explicitly true.
func (a *Action) Permitted() bool {
	return a.Permission != nil && *a.Permission
}

// RestrictionsByType returns the restrictions of the given kind in order.
func (a *Action) RestrictionsByType(kind RestrictionType) []Restriction {
	var matched []Restriction
	for _, r := range a.Restrictions.All() {
		if r.Type() == kind {
			matched = append(matched, r)
		}
	}
	return matched
}
