package model

import (
	"fmt"

	rmlErrors "slub/librml/pkg/librml/errors"
)

// Restriction narrows when or how an action applies. Each restriction kind is
// its own type carrying only the fields that are meaningful for that kind.
//
// A field counts as set when a string or list is non-empty, an integer pointer
// is non-nil (zero is a legal value) or a flag is true.
type Restriction interface {
	// Type returns the restriction kind. It never changes.
	Type() RestrictionType

	// IsEmpty reports whether none of the kind's fields is set. Empty
	// restrictions are dropped from structured documents.
	IsEmpty() bool

	isRestriction()
}

// NewRestriction returns an empty restriction of the given kind.
func NewRestriction(kind RestrictionType) (Restriction, error) {
	switch kind {
	case RestrictionParts:
		return &PartsRestriction{}, nil
	case RestrictionGroup:
		return &GroupRestriction{}, nil
	case RestrictionAge:
		return &AgeRestriction{}, nil
	case RestrictionLocation:
		return &LocationRestriction{}, nil
	case RestrictionDate:
		return &DateRestriction{}, nil
	case RestrictionDuration:
		return &DurationRestriction{}, nil
	case RestrictionCount:
		return &CountRestriction{}, nil
	case RestrictionConcurrent:
		return &ConcurrentRestriction{}, nil
	case RestrictionWatermark:
		return &WatermarkRestriction{}, nil
	case RestrictionCommercialUse:
		return &CommercialUseRestriction{}, nil
	case RestrictionQuality:
		return &QualityRestriction{}, nil
	default:
		return nil, rmlErrors.NewUnknownKindError(rmlErrors.FamilyRestriction,
			fmt.Sprintf("%d", int(kind)), wireNames(RestrictionTypes()))
	}
}

// Ptr returns a pointer to v. It is a shorthand for the optional integer and
// date fields of restrictions.
func Ptr[T any](v T) *T {
	return &v
}

// PartsRestriction limits an action to the listed parts of the item.
type PartsRestriction struct {
	Parts []string
}

func (r *PartsRestriction) Type() RestrictionType { return RestrictionParts }
func (r *PartsRestriction) IsEmpty() bool         { return len(r.Parts) == 0 }
func (r *PartsRestriction) isRestriction()        {}

// GroupRestriction limits an action to members of the listed groups.
type GroupRestriction struct {
	Groups []string
}

func (r *GroupRestriction) Type() RestrictionType { return RestrictionGroup }
func (r *GroupRestriction) IsEmpty() bool         { return len(r.Groups) == 0 }
func (r *GroupRestriction) isRestriction()        {}

// AgeRestriction requires a minimum age of the user.
type AgeRestriction struct {
	MinAge *int
}

func (r *AgeRestriction) Type() RestrictionType { return RestrictionAge }
func (r *AgeRestriction) IsEmpty() bool         { return r.MinAge == nil }
func (r *AgeRestriction) isRestriction()        {}

// LocationRestriction limits an action by zone, subnet or machine.
type LocationRestriction struct {
	Inside   string   // Zone the user must be inside
	Outside  string   // Zone the user must be outside
	Subnets  []string // Allowed subnets, e.g. "141.76.0.0/16"
	Machines []string // Allowed machine identifiers
}

func (r *LocationRestriction) Type() RestrictionType { return RestrictionLocation }
func (r *LocationRestriction) isRestriction()        {}

func (r *LocationRestriction) IsEmpty() bool {
	return r.Inside == "" && r.Outside == "" && len(r.Subnets) == 0 && len(r.Machines) == 0
}

// DateRestriction limits an action to a date range. Either bound may be open.
type DateRestriction struct {
	From *Date
	To   *Date
}

func (r *DateRestriction) Type() RestrictionType { return RestrictionDate }
func (r *DateRestriction) IsEmpty() bool         { return r.From == nil && r.To == nil }
func (r *DateRestriction) isRestriction()        {}

// Contains reports whether d lies within the range. Bounds are inclusive.
func (r *DateRestriction) Contains(d Date) bool {
	t := d.Time()
	if r.From != nil && t.Before(r.From.Time()) {
		return false
	}
	if r.To != nil && t.After(r.To.Time()) {
		return false
	}
	return true
}

// DurationRestriction limits how long an action may last. The unit is
// agreed between producer and consumer.
type DurationRestriction struct {
	Duration *int
}

func (r *DurationRestriction) Type() RestrictionType { return RestrictionDuration }
func (r *DurationRestriction) IsEmpty() bool         { return r.Duration == nil }
func (r *DurationRestriction) isRestriction()        {}

// CountRestriction limits how often an action may be taken.
type CountRestriction struct {
	Count *int
}

func (r *CountRestriction) Type() RestrictionType { return RestrictionCount }
func (r *CountRestriction) IsEmpty() bool         { return r.Count == nil }
func (r *CountRestriction) isRestriction()        {}

// ConcurrentRestriction limits the number of concurrent sessions.
type ConcurrentRestriction struct {
	Sessions *int
}

func (r *ConcurrentRestriction) Type() RestrictionType { return RestrictionConcurrent }
func (r *ConcurrentRestriction) IsEmpty() bool         { return r.Sessions == nil }
func (r *ConcurrentRestriction) isRestriction()        {}

// WatermarkRestriction requires a watermark on delivered copies.
type WatermarkRestriction struct {
	Value string
}

func (r *WatermarkRestriction) Type() RestrictionType { return RestrictionWatermark }
func (r *WatermarkRestriction) IsEmpty() bool         { return r.Value == "" }
func (r *WatermarkRestriction) isRestriction()        {}

// CommercialUseRestriction states whether commercial and noncommercial use
// are allowed.
type CommercialUseRestriction struct {
	Commercial    bool
	NonCommercial bool
}

func (r *CommercialUseRestriction) Type() RestrictionType { return RestrictionCommercialUse }
func (r *CommercialUseRestriction) IsEmpty() bool         { return !r.Commercial && !r.NonCommercial }
func (r *CommercialUseRestriction) isRestriction()        {}

// QualityRestriction caps the quality of delivered media.
type QualityRestriction struct {
	MaxResolution *int
	MaxBitrate    *int
}

func (r *QualityRestriction) Type() RestrictionType { return RestrictionQuality }
func (r *QualityRestriction) IsEmpty() bool         { return r.MaxResolution == nil && r.MaxBitrate == nil }
func (r *QualityRestriction) isRestriction()        {}
