// Package model defines the LibRML data model: a Document for one item, its
// Actions, and the Restrictions that narrow each action.
//
// # Core Types
//
// Document: item identifier, tenant, attribution flags and ordered actions
//
// Action: an ActionType, an optional permission flag and ordered restrictions
//
// Restriction: a sealed interface with one struct per RestrictionType, each
// carrying only the fields that are meaningful for that kind
//
// List: an ordered collection that rejects elements of the wrong type
//
// # Basic Usage
//
//	doc := model.New("id-123456")
//	doc.Tenant = "http://slub-dresden.de"
//	doc.AddAction(model.NewAction(model.ActionRead,
//	    &model.DateRestriction{From: model.Ptr(model.NewDate(2026, time.February, 11))},
//	).WithPermission(true))
//
//	for _, read := range doc.ActionsByType(model.ActionRead) {
//	    fmt.Println(read.Type(), read.Restrictions.Len())
//	}
//
// # Structure
//
//	Document
//	├── ID, Tenant, Mention, ShareAlike, UsageGuide, Template
//	└── Actions (*List[*Action])
//	    ├── Type, Permission
//	    └── Restrictions (*List[Restriction])
//	        └── PartsRestriction | GroupRestriction | AgeRestriction | ...
//
// Encoding and decoding live in the codec package. Field and tag names shared
// by both wire formats are declared in names.go.
package model
