package errors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryRuntime    Category = "runtime"
	CategoryDocument   Category = "document"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// Location represents a source location inside a tree document or config file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// NodeError is a structured error with a registered code, optional source
// location and a fix suggestion.
type NodeError struct {
	// Code is a unique error identifier (e.g., "H001").
	Code string

	// Category is the error type (validation, document, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the source location where the error occurred.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// ContextStart is the line number of Context[0].
	ContextStart int

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is a snippet showing the correct form.
	Example string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *NodeError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a NodeError carrying the same code.
// Errors without a code only match themselves.
func (e *NodeError) Is(target error) bool {
	t, ok := target.(*NodeError)
	if !ok {
		return false
	}
	if e.Code == "" || t.Code == "" {
		return e == t
	}
	return e.Code == t.Code
}

// WithLocation sets the source location of the error.
func (e *NodeError) WithLocation(file string, line, column int) *NodeError {
	e.Location = &Location{File: file, Line: line, Column: column}
	return e
}

// WithSource fills Context with the lines of src around the error's
// location. It does nothing when no location is set.
func (e *NodeError) WithSource(src []byte) *NodeError {
	if e.Location == nil || e.Location.Line <= 0 {
		return e
	}
	e.Context, e.ContextStart = contextLines(src, e.Location.Line, contextSize)
	return e
}

// yamlLineRe matches the line prefix yaml.v3 puts on syntax errors.
var yamlLineRe = regexp.MustCompile(`line (\d+):`)

// WithLocationFromError extracts a line number from a YAML decoder error
// ("yaml: line 3: mapping values are not allowed in this context").
func (e *NodeError) WithLocationFromError(file string, err error) *NodeError {
	if err == nil {
		return e
	}
	m := yamlLineRe.FindStringSubmatch(err.Error())
	if m == nil {
		return e
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil || line <= 0 {
		return e
	}
	return e.WithLocation(file, line, 0)
}

// LineColumn converts a byte offset in src to a 1-based line and column.
func LineColumn(src []byte, offset int64) (line, column int) {
	switch {
	case offset < 0:
		offset = 0
	case offset > int64(len(src)):
		offset = int64(len(src))
	}
	line, column = 1, 1
	for _, c := range src[:offset] {
		if c == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}

// WithSuggestion adds a fix suggestion to the error.
func (e *NodeError) WithSuggestion(s string) *NodeError {
	e.Suggestion = s
	return e
}

// WithExample adds an example to the error.
func (e *NodeError) WithExample(ex string) *NodeError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *NodeError) WithDetail(d string) *NodeError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *NodeError) Wrap(err error) *NodeError {
	e.Wrapped = err
	return e
}

// contextSize is the number of source lines shown around an error.
const contextSize = 5

// contextLines returns up to size lines of src centred on target, and the
// line number of the first one.
func contextLines(src []byte, target, size int) ([]string, int) {
	start := target - size/2
	if start < 1 {
		start = 1
	}
	end := target + size/2

	var lines []string
	for i, line := range strings.Split(strings.TrimSuffix(string(src), "\n"), "\n") {
		n := i + 1
		if n > end {
			break
		}
		if n >= start {
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
	}
	if len(lines) == 0 {
		return nil, 0
	}
	return lines, start
}

// New creates a NodeError from a registered error code.
func New(code string) *NodeError {
	entry, ok := registry[code]
	if !ok {
		return &NodeError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &NodeError{
		Code:     code,
		Category: entry.Category,
		Message:  entry.Message,
		Detail:   entry.Detail,
	}
}

// Newf creates a new NodeError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *NodeError {
	return &NodeError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}
