package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	rmlErrors "slub/librml/pkg/librml/errors"
	"slub/librml/pkg/librml/model"
)

// MarkupComment is the comment written below the root element.
const MarkupComment = " This XML is created using the libRML Go library "

// Element is a generic markup element. Attribute order is preserved on
// encode; children keep document order on decode.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Comment  string     `xml:",comment"`
	Text     string     `xml:",chardata"`
	Children []*Element `xml:",any"`
}

// NewElement creates an element with the given tag.
func NewElement(tag string) *Element {
	return &Element{XMLName: xml.Name{Local: tag}}
}

// Tag returns the local name of the element.
func (e *Element) Tag() string {
	return e.XMLName.Local
}

// SetAttr appends an attribute.
func (e *Element) SetAttr(name, value string) {
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// AddChild appends a child element.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// Child returns the first child with the given tag, or nil.
func (e *Element) Child(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag() == tag {
			return c
		}
	}
	return nil
}

// ChildrenByTag returns the direct children with the given tag in order.
func (e *Element) ChildrenByTag(tag string) []*Element {
	var matched []*Element
	for _, c := range e.Children {
		if c.Tag() == tag {
			matched = append(matched, c)
		}
	}
	return matched
}

// ParseElement parses a single markup element.
func ParseElement(data []byte) (*Element, error) {
	var root Element
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return &root, nil
}

// EncodeRestrictionMarkup converts r into a restriction element. Scalars
// become attributes and lists become child elements. Unset fields are left
// out. A nil restriction yields nil.
func EncodeRestrictionMarkup(r model.Restriction) *Element {
	if r == nil {
		return nil
	}
	el := NewElement(model.TagRestriction)
	el.SetAttr(model.FieldType, r.Type().String())

	switch r := r.(type) {
	case *model.PartsRestriction:
		addTextChildren(el, model.TagPart, r.Parts)
	case *model.GroupRestriction:
		addTextChildren(el, model.TagGroup, r.Groups)
	case *model.AgeRestriction:
		setIntAttr(el, model.FieldMinAge, r.MinAge)
	case *model.LocationRestriction:
		if r.Inside != "" {
			el.SetAttr(model.FieldInside, r.Inside)
		}
		if r.Outside != "" {
			el.SetAttr(model.FieldOutside, r.Outside)
		}
		addTextChildren(el, model.TagSubnet, r.Subnets)
		addTextChildren(el, model.TagMachine, r.Machines)
	case *model.DateRestriction:
		if r.From != nil {
			el.SetAttr(model.FieldFromDate, r.From.String())
		}
		if r.To != nil {
			el.SetAttr(model.FieldToDate, r.To.String())
		}
	case *model.DurationRestriction:
		setIntAttr(el, model.FieldDuration, r.Duration)
	case *model.CountRestriction:
		setIntAttr(el, model.FieldCount, r.Count)
	case *model.ConcurrentRestriction:
		setIntAttr(el, model.FieldSessions, r.Sessions)
	case *model.WatermarkRestriction:
		if r.Value != "" {
			el.SetAttr(model.FieldWatermark, r.Value)
		}
	case *model.CommercialUseRestriction:
		if r.Commercial {
			el.SetAttr(model.FieldCommercial, "true")
		}
		if r.NonCommercial {
			el.SetAttr(model.FieldNonCommercial, "true")
		}
	case *model.QualityRestriction:
		setIntAttr(el, model.FieldMaxResolution, r.MaxResolution)
		setIntAttr(el, model.FieldMaxBitrate, r.MaxBitrate)
	}
	return el
}

// DecodeRestrictionMarkup builds a restriction of the given kind from a
// restriction element. Booleans are true only for the exact value "true".
func DecodeRestrictionMarkup(kind model.RestrictionType, el *Element) (model.Restriction, error) {
	return decodeRestrictionMarkup("", kind, el)
}

func decodeRestrictionMarkup(path string, kind model.RestrictionType, el *Element) (model.Restriction, error) {
	var err error
	switch kind {
	case model.RestrictionParts:
		return &model.PartsRestriction{Parts: childTexts(el, model.TagPart)}, nil
	case model.RestrictionGroup:
		return &model.GroupRestriction{Groups: childTexts(el, model.TagGroup)}, nil
	case model.RestrictionAge:
		r := &model.AgeRestriction{}
		if r.MinAge, err = intAttr(path, el, model.FieldMinAge); err != nil {
			return nil, err
		}
		return r, nil
	case model.RestrictionLocation:
		r := &model.LocationRestriction{
			Subnets:  childTexts(el, model.TagSubnet),
			Machines: childTexts(el, model.TagMachine),
		}
		r.Inside, _ = el.Attr(model.FieldInside)
		r.Outside, _ = el.Attr(model.FieldOutside)
		return r, nil
	case model.RestrictionDate:
		r := &model.DateRestriction{}
		if r.From, err = dateAttr(path, el, model.FieldFromDate); err != nil {
			return nil, err
		}
		if r.To, err = dateAttr(path, el, model.FieldToDate); err != nil {
			return nil, err
		}
		return r, nil
	case model.RestrictionDuration:
		r := &model.DurationRestriction{}
		if r.Duration, err = intAttr(path, el, model.FieldDuration); err != nil {
			return nil, err
		}
		return r, nil
	case model.RestrictionCount:
		r := &model.CountRestriction{}
		if r.Count, err = intAttr(path, el, model.FieldCount); err != nil {
			return nil, err
		}
		return r, nil
	case model.RestrictionConcurrent:
		r := &model.ConcurrentRestriction{}
		if r.Sessions, err = intAttr(path, el, model.FieldSessions); err != nil {
			return nil, err
		}
		return r, nil
	case model.RestrictionWatermark:
		r := &model.WatermarkRestriction{}
		r.Value, _ = el.Attr(model.FieldWatermark)
		return r, nil
	case model.RestrictionCommercialUse:
		return &model.CommercialUseRestriction{
			Commercial:    boolAttr(el, model.FieldCommercial),
			NonCommercial: boolAttr(el, model.FieldNonCommercial),
		}, nil
	case model.RestrictionQuality:
		r := &model.QualityRestriction{}
		if r.MaxResolution, err = intAttr(path, el, model.FieldMaxResolution); err != nil {
			return nil, err
		}
		if r.MaxBitrate, err = intAttr(path, el, model.FieldMaxBitrate); err != nil {
			return nil, err
		}
		return r, nil
	default:
		return model.NewRestriction(kind)
	}
}

// EncodeActionMarkup converts a into an action element with one restriction
// child per restriction.
func EncodeActionMarkup(a *model.Action) *Element {
	el := NewElement(model.TagAction)
	el.SetAttr(model.FieldType, a.Type().String())
	if a.Permitted() {
		el.SetAttr(model.FieldPermission, "true")
	}
	for _, r := range a.Restrictions.All() {
		if r == nil {
			continue
		}
		el.AddChild(EncodeRestrictionMarkup(r))
	}
	return el
}

// DecodeActionMarkup builds an action from an action element.
func DecodeActionMarkup(el *Element) (*model.Action, error) {
	return decodeActionMarkup(model.TagAction, el)
}

// DecodeActionXML parses a standalone action element.
func DecodeActionXML(data []byte) (*model.Action, error) {
	el, err := ParseElement(data)
	if err != nil {
		return nil, err
	}
	if el.Tag() != model.TagAction {
		return nil, rmlErrors.NewNotValidError(el.Tag(), "expected <%s> element", model.TagAction)
	}
	return DecodeActionMarkup(el)
}

func decodeActionMarkup(path string, el *Element) (*model.Action, error) {
	rawType, ok := el.Attr(model.FieldType)
	if !ok {
		return nil, rmlErrors.NewNotValidError(path, "action has no %s attribute", model.FieldType)
	}
	kind, err := model.ParseActionType(rawType)
	if err != nil {
		return nil, err
	}

	action := model.NewAction(kind)
	if _, ok := el.Attr(model.FieldPermission); ok {
		action.WithPermission(boolAttr(el, model.FieldPermission))
	}

	for i, child := range el.ChildrenByTag(model.TagRestriction) {
		childPath := fmt.Sprintf("%s.%s[%d]", path, model.TagRestriction, i)
		rawKind, ok := child.Attr(model.FieldType)
		if !ok {
			return nil, rmlErrors.NewNotValidError(childPath, "restriction has no %s attribute", model.FieldType)
		}
		kind, err := model.ParseRestrictionType(rawKind)
		if err != nil {
			return nil, err
		}
		r, err := decodeRestrictionMarkup(childPath, kind, child)
		if err != nil {
			return nil, err
		}
		action.AddRestriction(r)
	}
	return action, nil
}

// EncodeMarkupElement converts doc into its root element.
func EncodeMarkupElement(doc *model.Document) *Element {
	root := NewElement(model.TagRoot)
	root.SetAttr(model.AttrVersion, model.Version)
	root.Comment = MarkupComment

	item := root.AddChild(NewElement(model.TagItem))
	item.SetAttr(model.FieldID, doc.ID)
	if doc.Tenant != "" {
		item.SetAttr(model.FieldTenant, doc.Tenant)
	}
	if doc.UsageGuide != "" {
		item.SetAttr(model.FieldUsageGuide, doc.UsageGuide)
	}
	if doc.Template != "" {
		item.SetAttr(model.FieldTemplate, doc.Template)
	}
	if doc.Mention {
		item.SetAttr(model.FieldMention, "true")
	}
	if doc.ShareAlike {
		item.SetAttr(model.FieldShareAlike, "true")
	}
	for _, a := range doc.Actions.All() {
		item.AddChild(EncodeActionMarkup(a))
	}
	return root
}

// EncodeMarkup serializes doc as a markup document with an XML declaration.
func EncodeMarkup(doc *model.Document) ([]byte, error) {
	return EncodeMarkupIndent(doc, "")
}

// EncodeMarkupIndent is like EncodeMarkup but indents nested elements with
// indent. An empty indent produces compact output.
func EncodeMarkupIndent(doc *model.Document, indent string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if indent != "" {
		enc.Indent("", indent)
	}
	if err := enc.Encode(EncodeMarkupElement(doc)); err != nil {
		return nil, fmt.Errorf("failed to encode markup: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode markup: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeMarkup parses a markup document. The root must be libRML and its
// first item must carry both id and tenant.
func DecodeMarkup(data []byte) (*model.Document, error) {
	root, err := ParseElement(data)
	if err != nil {
		return nil, err
	}
	return DecodeMarkupElement(root)
}

// DecodeMarkupElement builds a document from a parsed root element.
func DecodeMarkupElement(root *Element) (*model.Document, error) {
	if root.Tag() != model.TagRoot {
		return nil, rmlErrors.NewNotValidError(root.Tag(), "root element must be <%s>", model.TagRoot)
	}
	item := root.Child(model.TagItem)
	if item == nil {
		return nil, rmlErrors.NewNotValidError(model.TagRoot, "document has no <%s> element", model.TagItem)
	}

	id, ok := item.Attr(model.FieldID)
	if !ok {
		return nil, rmlErrors.NewNotValidError(model.TagItem, "item has no %s attribute", model.FieldID)
	}
	tenant, ok := item.Attr(model.FieldTenant)
	if !ok {
		return nil, rmlErrors.NewNotValidError(model.TagItem, "item has no %s attribute", model.FieldTenant)
	}

	doc := model.New(id)
	doc.Tenant = tenant
	doc.UsageGuide, _ = item.Attr(model.FieldUsageGuide)
	doc.Template, _ = item.Attr(model.FieldTemplate)
	doc.Mention = boolAttr(item, model.FieldMention)
	doc.ShareAlike = boolAttr(item, model.FieldShareAlike)

	for i, child := range item.ChildrenByTag(model.TagAction) {
		action, err := decodeActionMarkup(fmt.Sprintf("%s.%s[%d]", model.TagItem, model.TagAction, i), child)
		if err != nil {
			return nil, err
		}
		doc.AddAction(action)
	}
	return doc, nil
}

func addTextChildren(el *Element, tag string, values []string) {
	for _, v := range values {
		child := NewElement(tag)
		child.Text = v
		el.AddChild(child)
	}
}

func childTexts(el *Element, tag string) []string {
	var out []string
	for _, c := range el.ChildrenByTag(tag) {
		out = append(out, c.Text)
	}
	return out
}

func setIntAttr(el *Element, name string, v *int) {
	if v != nil {
		el.SetAttr(name, strconv.Itoa(*v))
	}
}

func boolAttr(el *Element, name string) bool {
	v, _ := el.Attr(name)
	return v == "true"
}

func intAttr(path string, el *Element, name string) (*int, error) {
	raw, ok := el.Attr(name)
	if !ok {
		return nil, nil
	}
	n, err := parseInt(path, name, raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func dateAttr(path string, el *Element, name string) (*model.Date, error) {
	raw, ok := el.Attr(name)
	if !ok {
		return nil, nil
	}
	d, err := parseDate(path, name, raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
