package htmlnode

import "github.com/vango-dev/htmlnode/internal/errors"

// Sentinel errors for the node contracts. Returned errors carry extra detail
// but match these under errors.Is.
var (
	// ErrMissingContent: a Leaf has neither a tag nor a value.
	ErrMissingContent error = errors.New(errors.CodeMissingContent)

	// ErrMissingTag: a Parent was constructed without a tag.
	ErrMissingTag error = errors.New(errors.CodeMissingTag)

	// ErrMissingChildren: a Parent was constructed without children.
	ErrMissingChildren error = errors.New(errors.CodeMissingChildren)

	// ErrNotImplemented: Render was called on a Base.
	ErrNotImplemented error = errors.New(errors.CodeNotImplemented)
)
