// Librml converts, validates and creates LibRML rights expressions.
//
// A LibRML document describes what may be done with a library item (read,
// download, print, ...) and under which restrictions. Documents are read and
// written as JSON, YAML, CBOR or LibRML XML markup.
//
// Usage:
//
//	# Convert a JSON document to markup
//	librml convert --in doc.json --out doc.xml
//
//	# Check a batch of documents
//	librml validate records/*.json
//
//	# Create a document from the command line
//	librml new --id item-1 --tenant slub --action read --action download
//
//	# Render a document from a template
//	librml template render embargo --item item-1 --tenant slub --set fromdate=2030-01-01
package main

func main() {
	Execute()
}
