package codec

import (
	"fmt"

	rmlErrors "slub/librml/pkg/librml/errors"
	"slub/librml/pkg/librml/model"
)

// EncodeRestriction converts r into its structured form: the wire name under
// "type" plus every field that is set. It returns false when r is empty, in
// which case the caller drops it.
func EncodeRestriction(r model.Restriction) (map[string]any, bool) {
	if r == nil || r.IsEmpty() {
		return nil, false
	}

	out := map[string]any{model.FieldType: r.Type().String()}
	switch r := r.(type) {
	case *model.PartsRestriction:
		out[model.FieldParts] = stringsToAny(r.Parts)
	case *model.GroupRestriction:
		out[model.FieldGroups] = stringsToAny(r.Groups)
	case *model.AgeRestriction:
		out[model.FieldMinAge] = *r.MinAge
	case *model.LocationRestriction:
		if r.Inside != "" {
			out[model.FieldInside] = r.Inside
		}
		if r.Outside != "" {
			out[model.FieldOutside] = r.Outside
		}
		if len(r.Subnets) > 0 {
			out[model.FieldSubnet] = stringsToAny(r.Subnets)
		}
		if len(r.Machines) > 0 {
			out[model.FieldMachines] = stringsToAny(r.Machines)
		}
	case *model.DateRestriction:
		if r.From != nil {
			out[model.FieldFromDate] = r.From.String()
		}
		if r.To != nil {
			out[model.FieldToDate] = r.To.String()
		}
	case *model.DurationRestriction:
		out[model.FieldDuration] = *r.Duration
	case *model.CountRestriction:
		out[model.FieldCount] = *r.Count
	case *model.ConcurrentRestriction:
		out[model.FieldSessions] = *r.Sessions
	case *model.WatermarkRestriction:
		out[model.FieldWatermark] = r.Value
	case *model.CommercialUseRestriction:
		if r.Commercial {
			out[model.FieldCommercial] = true
		}
		if r.NonCommercial {
			out[model.FieldNonCommercial] = true
		}
	case *model.QualityRestriction:
		if r.MaxResolution != nil {
			out[model.FieldMaxResolution] = *r.MaxResolution
		}
		if r.MaxBitrate != nil {
			out[model.FieldMaxBitrate] = *r.MaxBitrate
		}
	}
	return out, true
}

// DecodeRestriction builds a restriction of the given kind from its
// structured form. Only the fields of that kind are read; absent fields stay
// unset and unknown keys are ignored.
func DecodeRestriction(kind model.RestrictionType, data map[string]any) (model.Restriction, error) {
	return decodeRestriction("", kind, data)
}

func decodeRestriction(path string, kind model.RestrictionType, data map[string]any) (model.Restriction, error) {
	var err error
	switch kind {
	case model.RestrictionParts:
		r := &model.PartsRestriction{}
		r.Parts, err = optionalStrings(path, model.FieldParts, data)
		return r, err
	case model.RestrictionGroup:
		r := &model.GroupRestriction{}
		r.Groups, err = optionalStrings(path, model.FieldGroups, data)
		return r, err
	case model.RestrictionAge:
		r := &model.AgeRestriction{}
		r.MinAge, err = optionalInt(path, model.FieldMinAge, data)
		return r, err
	case model.RestrictionLocation:
		r := &model.LocationRestriction{}
		if r.Inside, err = optionalString(path, model.FieldInside, data); err != nil {
			return nil, err
		}
		if r.Outside, err = optionalString(path, model.FieldOutside, data); err != nil {
			return nil, err
		}
		if r.Subnets, err = optionalStrings(path, model.FieldSubnet, data); err != nil {
			return nil, err
		}
		if r.Machines, err = optionalStrings(path, model.FieldMachines, data); err != nil {
			return nil, err
		}
		return r, nil
	case model.RestrictionDate:
		r := &model.DateRestriction{}
		if r.From, err = optionalDate(path, model.FieldFromDate, data); err != nil {
			return nil, err
		}
		if r.To, err = optionalDate(path, model.FieldToDate, data); err != nil {
			return nil, err
		}
		return r, nil
	case model.RestrictionDuration:
		r := &model.DurationRestriction{}
		r.Duration, err = optionalInt(path, model.FieldDuration, data)
		return r, err
	case model.RestrictionCount:
		r := &model.CountRestriction{}
		r.Count, err = optionalInt(path, model.FieldCount, data)
		return r, err
	case model.RestrictionConcurrent:
		r := &model.ConcurrentRestriction{}
		r.Sessions, err = optionalInt(path, model.FieldSessions, data)
		return r, err
	case model.RestrictionWatermark:
		r := &model.WatermarkRestriction{}
		r.Value, err = optionalString(path, model.FieldWatermark, data)
		return r, err
	case model.RestrictionCommercialUse:
		r := &model.CommercialUseRestriction{}
		if r.Commercial, err = optionalBool(path, model.FieldCommercial, data); err != nil {
			return nil, err
		}
		if r.NonCommercial, err = optionalBool(path, model.FieldNonCommercial, data); err != nil {
			return nil, err
		}
		return r, nil
	case model.RestrictionQuality:
		r := &model.QualityRestriction{}
		if r.MaxResolution, err = optionalInt(path, model.FieldMaxResolution, data); err != nil {
			return nil, err
		}
		if r.MaxBitrate, err = optionalInt(path, model.FieldMaxBitrate, data); err != nil {
			return nil, err
		}
		return r, nil
	default:
		return model.NewRestriction(kind)
	}
}

// EncodeAction converts a into its structured form. Permission is written
// only when true; restrictions only when the action has any, with empty
// restrictions filtered out.
func EncodeAction(a *model.Action) map[string]any {
	out := map[string]any{model.FieldType: a.Type().String()}
	if a.Permitted() {
		out[model.FieldPermission] = true
	}
	if a.Restrictions.Len() > 0 {
		restrictions := make([]any, 0, a.Restrictions.Len())
		for _, r := range a.Restrictions.All() {
			if encoded, ok := EncodeRestriction(r); ok {
				restrictions = append(restrictions, encoded)
			}
		}
		out[model.FieldRestrictions] = restrictions
	}
	return out
}

// DecodeAction builds an action from its structured form.
func DecodeAction(data map[string]any) (*model.Action, error) {
	return decodeAction("", data)
}

func decodeAction(path string, data map[string]any) (*model.Action, error) {
	rawType, _ := data[model.FieldType].(string)
	kind, err := model.ParseActionType(rawType)
	if err != nil {
		return nil, err
	}

	action := model.NewAction(kind)
	if raw, ok := data[model.FieldPermission]; ok {
		permitted, err := coerceBool(path, model.FieldPermission, raw)
		if err != nil {
			return nil, err
		}
		action.WithPermission(permitted)
	}

	raw, ok := data[model.FieldRestrictions]
	if !ok || raw == nil {
		return action, nil
	}
	entries, err := coerceList(path, model.FieldRestrictions, raw)
	if err != nil {
		return nil, err
	}
	for i, entry := range entries {
		entryPath := indexPath(path, model.FieldRestrictions, i)
		fields, err := coerceMap(path, fmt.Sprintf("%s[%d]", model.FieldRestrictions, i), entry)
		if err != nil {
			return nil, err
		}
		rawKind, ok := fields[model.FieldType].(string)
		if !ok {
			return nil, rmlErrors.NewNotValidError(entryPath, "restriction has no type")
		}
		kind, err := model.ParseRestrictionType(rawKind)
		if err != nil {
			return nil, err
		}
		r, err := decodeRestriction(entryPath, kind, fields)
		if err != nil {
			return nil, err
		}
		action.AddRestriction(r)
	}
	return action, nil
}

// EncodeDocument converts doc into its structured form. Optional keys are
// written only when set.
func EncodeDocument(doc *model.Document) map[string]any {
	out := map[string]any{model.FieldID: doc.ID}
	if doc.Tenant != "" {
		out[model.FieldTenant] = doc.Tenant
	}
	if doc.Mention {
		out[model.FieldMention] = true
	}
	if doc.ShareAlike {
		out[model.FieldShareAlike] = true
	}
	if doc.UsageGuide != "" {
		out[model.FieldUsageGuide] = doc.UsageGuide
	}
	if doc.Template != "" {
		out[model.FieldTemplate] = doc.Template
	}
	if doc.Actions.Len() > 0 {
		actions := make([]any, 0, doc.Actions.Len())
		for _, a := range doc.Actions.All() {
			actions = append(actions, EncodeAction(a))
		}
		out[model.FieldActions] = actions
	}
	return out
}

// DecodeDocument builds a document from its structured form. The "id" key is
// required; unknown keys are ignored.
func DecodeDocument(data map[string]any) (*model.Document, error) {
	rawID, ok := data[model.FieldID]
	if !ok || rawID == nil {
		return nil, rmlErrors.NewNotValidError("", "document has no %s", model.FieldID)
	}
	id, err := coerceString("", model.FieldID, rawID)
	if err != nil {
		return nil, err
	}

	doc := model.New(id)
	if doc.Tenant, err = optionalString("", model.FieldTenant, data); err != nil {
		return nil, err
	}
	if doc.Mention, err = optionalBool("", model.FieldMention, data); err != nil {
		return nil, err
	}
	if doc.ShareAlike, err = optionalBool("", model.FieldShareAlike, data); err != nil {
		return nil, err
	}
	if doc.UsageGuide, err = optionalString("", model.FieldUsageGuide, data); err != nil {
		return nil, err
	}
	if doc.Template, err = optionalString("", model.FieldTemplate, data); err != nil {
		return nil, err
	}

	raw, ok := data[model.FieldActions]
	if !ok || raw == nil {
		return doc, nil
	}
	entries, err := coerceList("", model.FieldActions, raw)
	if err != nil {
		return nil, err
	}
	for i, entry := range entries {
		entryPath := indexPath("", model.FieldActions, i)
		fields, err := coerceMap("", entryPath, entry)
		if err != nil {
			return nil, err
		}
		action, err := decodeAction(entryPath, fields)
		if err != nil {
			return nil, err
		}
		doc.AddAction(action)
	}
	return doc, nil
}

func indexPath(parent, field string, i int) string {
	if parent == "" {
		return fmt.Sprintf("%s[%d]", field, i)
	}
	return fmt.Sprintf("%s.%s[%d]", parent, field, i)
}

func optionalString(path, field string, data map[string]any) (string, error) {
	raw, ok := data[field]
	if !ok || raw == nil {
		return "", nil
	}
	return coerceString(path, field, raw)
}

func optionalBool(path, field string, data map[string]any) (bool, error) {
	raw, ok := data[field]
	if !ok || raw == nil {
		return false, nil
	}
	return coerceBool(path, field, raw)
}

func optionalInt(path, field string, data map[string]any) (*int, error) {
	raw, ok := data[field]
	if !ok || raw == nil {
		return nil, nil
	}
	n, err := coerceInt(path, field, raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func optionalDate(path, field string, data map[string]any) (*model.Date, error) {
	raw, ok := data[field]
	if !ok || raw == nil {
		return nil, nil
	}
	d, err := coerceDate(path, field, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func optionalStrings(path, field string, data map[string]any) ([]string, error) {
	raw, ok := data[field]
	if !ok || raw == nil {
		return nil, nil
	}
	return coerceStrings(path, field, raw)
}
