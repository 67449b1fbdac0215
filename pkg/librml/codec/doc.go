// Package codec converts LibRML documents to and from their serialized
// forms.
//
// Two representations exist. The structured form is a tree of
// map[string]any, []any and scalars that JSON, YAML and CBOR encoders
// consume directly (EncodeDocument, DecodeDocument). The markup form is an
// XML element tree rooted at <libRML version="0.2"> (EncodeMarkup,
// DecodeMarkup).
//
// # Structured form
//
// Optional keys are written only when set. Empty restrictions are dropped.
// Decoders accept the numeric types produced by each serializer, so a JSON
// float64 with an integral value, a YAML int and a CBOR uint64 all decode to
// the same integer field.
//
// # Markup form
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<libRML version="0.2"><!-- ... --><item id="..." tenant="...">
//	  <action type="read" permission="true">
//	    <restriction type="date" fromdate="2026-02-11"></restriction>
//	  </action>
//	</item></libRML>
//
// Scalars are attributes and lists are child elements. Markup decoding
// requires both id and tenant on the item.
//
// # Errors
//
// Decoders never return a partially built document. Structural problems are
// reported as *errors.NotValidError, unknown kinds as
// *errors.UnknownKindError and malformed values as *errors.CoercionError.
// Parse errors of the underlying serializer are wrapped.
package codec
