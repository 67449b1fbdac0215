// Package errors provides the error types raised while building, encoding and
// decoding LibRML documents.
//
// Every distinct failure has its own type so callers can branch with errors.As:
//
// UnknownKindError: an action or restriction kind name outside the closed set
//
// TypeMismatchError: an element of the wrong type was inserted into a typed list
//
// NotValidError: structural validation failed (missing root tag, item, id,
// tenant, or a missing type on an action or restriction)
//
// CoercionError: a field value could not be converted (malformed integer,
// ISO date, boolean or markup)
//
// # Basic Usage
//
//	doc, err := codec.DecodeMarkup(data)
//	var notValid *errors.NotValidError
//	if stderrors.As(err, &notValid) {
//	    fmt.Println("invalid document at", notValid.Path)
//	}
//
// # Suggestions
//
// Unknown kinds carry a suggestion computed with Levenshtein distance:
//
//	[unknown_kind] unknown action type "raed"
//	  = suggestion: Did you mean 'read'?
package errors
