// Package errors provides structured, coded errors for htmlnode.
//
// Every error carries a registered code (e.g., "H001") that maps to a short
// message and a longer explanation. Errors raised while decoding a tree
// document also carry the file, line and column of the offending node, and
// the surrounding lines taken from the bytes that were decoded.
//
// # Error Categories
//
//   - validation: node construction contract violations
//   - runtime: rendering a form that cannot render
//   - document: tree document decoding
//   - config: htmlnode.json loading
//   - cli: output and metrics writing
//
// # Matching
//
// Two NodeErrors match under errors.Is when their codes are equal, so a
// freshly built error with extra detail still matches its sentinel:
//
//	err := errors.New(errors.CodeMissingTag).WithDetail("parent at index 2")
//	stderrors.Is(err, htmlnode.ErrMissingTag) // true
//
// # Usage
//
//	err := errors.New("H022").
//	    WithLocation("page.yaml", 4, 7).
//	    WithSource(data).
//	    WithSuggestion("children must be a sequence")
//
//	fmt.Println(err.Format())     // terminal, with source lines
//	fmt.Println(err.FormatJSON()) // one JSON object
package errors
