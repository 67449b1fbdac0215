package model

import (
	"strings"

	rmlErrors "slub/librml/pkg/librml/errors"
)

// ActionType identifies a usage kind of an item.
type ActionType int

const (
	ActionDisplayMetadata ActionType = iota + 1
	ActionRead
	ActionRun
	ActionLend
	ActionDownload
	ActionPrint
	ActionReproduce
	ActionModify
	ActionReuse
	ActionDistribute
	ActionPublish
	ActionArchive
	ActionIndex
	ActionMove
)

var actionNames = []string{
	ActionDisplayMetadata: "DISPLAYMETADATA",
	ActionRead:            "READ",
	ActionRun:             "RUN",
	ActionLend:            "LEND",
	ActionDownload:        "DOWNLOAD",
	ActionPrint:           "PRINT",
	ActionReproduce:       "REPRODUCE",
	ActionModify:          "MODIFY",
	ActionReuse:           "REUSE",
	ActionDistribute:      "DISTRIBUTE",
	ActionPublish:         "PUBLISH",
	ActionArchive:         "ARCHIVE",
	ActionIndex:           "INDEX",
	ActionMove:            "MOVE",
}

// ActionTypes returns every action type in declaration order.
func ActionTypes() []ActionType {
	types := make([]ActionType, 0, len(actionNames)-1)
	for t := ActionDisplayMetadata; t <= ActionMove; t++ {
		types = append(types, t)
	}
	return types
}

// ParseActionType looks up an action type by name, ignoring case.
func ParseActionType(name string) (ActionType, error) {
	for t := ActionDisplayMetadata; t <= ActionMove; t++ {
		if strings.EqualFold(actionNames[t], name) {
			return t, nil
		}
	}
	return 0, rmlErrors.NewUnknownKindError(rmlErrors.FamilyAction, name, wireNames(ActionTypes()))
}

// Name returns the upper-case member name.
func (t ActionType) Name() string {
	if !t.Valid() {
		return ""
	}
	return actionNames[t]
}

// String returns the lower-case wire name, e.g. "read".
func (t ActionType) String() string {
	return strings.ToLower(t.Name())
}

// Valid reports whether t is a member of the enumeration.
func (t ActionType) Valid() bool {
	return t >= ActionDisplayMetadata && t <= ActionMove
}

// RestrictionType identifies the kind of a restriction and thereby its fields.
type RestrictionType int

const (
	RestrictionParts RestrictionType = iota + 1
	RestrictionGroup
	RestrictionAge
	RestrictionLocation
	RestrictionDate
	RestrictionDuration
	RestrictionCount
	RestrictionConcurrent
	RestrictionWatermark
	RestrictionCommercialUse
	RestrictionQuality
)

var restrictionNames = []string{
	RestrictionParts:         "PARTS",
	RestrictionGroup:         "GROUP",
	RestrictionAge:           "AGE",
	RestrictionLocation:      "LOCATION",
	RestrictionDate:          "DATE",
	RestrictionDuration:      "DURATION",
	RestrictionCount:         "COUNT",
	RestrictionConcurrent:    "CONCURRENT",
	RestrictionWatermark:     "WATERMARK",
	RestrictionCommercialUse: "COMMERCIALUSE",
	RestrictionQuality:       "QUALITY",
}

// RestrictionTypes returns every restriction type in declaration order.
func RestrictionTypes() []RestrictionType {
	types := make([]RestrictionType, 0, len(restrictionNames)-1)
	for t := RestrictionParts; t <= RestrictionQuality; t++ {
		types = append(types, t)
	}
	return types
}

// ParseRestrictionType looks up a restriction type by name, ignoring case.
func ParseRestrictionType(name string) (RestrictionType, error) {
	for t := RestrictionParts; t <= RestrictionQuality; t++ {
		if strings.EqualFold(restrictionNames[t], name) {
			return t, nil
		}
	}
	return 0, rmlErrors.NewUnknownKindError(rmlErrors.FamilyRestriction, name, wireNames(RestrictionTypes()))
}

// Name returns the upper-case member name.
func (t RestrictionType) Name() string {
	if !t.Valid() {
		return ""
	}
	return restrictionNames[t]
}

// String returns the lower-case wire name, e.g. "date".
func (t RestrictionType) String() string {
	return strings.ToLower(t.Name())
}

// Valid reports whether t is a member of the enumeration.
func (t RestrictionType) Valid() bool {
	return t >= RestrictionParts && t <= RestrictionQuality
}

func wireNames[T interface{ String() string }](types []T) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
