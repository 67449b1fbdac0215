// Package librml provides convenience entry points for reading, writing and
// converting LibRML rights expressions.
//
// LibRML describes, for one item, which actions (read, print, download and
// so on) are permitted and under which restrictions. The data model lives in
// package model, the serializations in package codec:
//
//	doc, err := librml.FromJSON(data)
//	if err != nil {
//	    return err
//	}
//	markup, err := librml.ToXML(doc)
//
// Files are read and written with the format inferred from their extension
// (.json, .yaml, .yml, .cbor, .xml).
package librml
