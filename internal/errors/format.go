package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
	colorWhite = "\033[37m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

func paint(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

// detailWidth is the column at which Detail text wraps.
const detailWidth = 70

// Format renders the error for a terminal: a header, the location with
// numbered source lines, then detail, hint and example blocks.
func (e *NodeError) Format() string {
	var b strings.Builder
	b.WriteString("\n")
	e.writeHeader(&b)
	b.WriteString("\n\n")

	if e.Location != nil {
		fmt.Fprintf(&b, "  %s\n\n", paint(colorCyan, e.Location.String()))
		if len(e.Context) > 0 {
			e.writeContext(&b)
			b.WriteString("\n")
		}
	}

	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, detailWidth) {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		b.WriteString("\n")
	}

	if e.Suggestion != "" {
		fmt.Fprintf(&b, "  %s%s\n\n", paint(colorCyan, "Hint: "), e.Suggestion)
	}

	if e.Example != "" {
		fmt.Fprintf(&b, "  %s\n", paint(colorCyan, "Example:"))
		for _, line := range strings.Split(e.Example, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (e *NodeError) writeHeader(b *strings.Builder) {
	label := "ERROR: "
	if e.Code != "" {
		label = "ERROR "
	}
	b.WriteString(paint(colorRed, paint(colorBold, label)))
	if e.Code != "" {
		b.WriteString(paint(colorWhite, paint(colorBold, e.Code+": ")))
	}
	b.WriteString(paint(colorWhite, e.Message))
}

// writeContext prints the numbered source lines, marking the error line
// with an arrow and its column with a caret.
func (e *NodeError) writeContext(b *strings.Builder) {
	gutter := paint(colorGray, " │ ")
	for i, line := range e.Context {
		n := e.ContextStart + i
		if n != e.Location.Line {
			fmt.Fprintf(b, "    %4d%s%s\n", n, gutter, line)
			continue
		}

		fmt.Fprintf(b, "  %s%4d%s%s\n", paint(colorRed, "→ "), n, gutter, line)
		if e.Location.Column > 0 {
			fmt.Fprintf(b, "       %s%s%s\n",
				paint(colorGray, "│ "),
				strings.Repeat(" ", e.Location.Column-1),
				paint(colorRed, "^"))
		}
	}
}

// FormatCompact returns the error on one line: location, code, message.
func (e *NodeError) FormatCompact() string {
	parts := make([]string, 0, 3)
	if e.Location != nil {
		parts = append(parts, e.Location.String())
	}
	if e.Code != "" {
		parts = append(parts, e.Code)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

type jsonLocation struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type jsonError struct {
	Code       string        `json:"code,omitempty"`
	Category   Category      `json:"category"`
	Message    string        `json:"message"`
	Detail     string        `json:"detail,omitempty"`
	Location   *jsonLocation `json:"location,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	Cause      string        `json:"cause,omitempty"`
}

// FormatJSON returns the error as a single-line JSON object.
func (e *NodeError) FormatJSON() string {
	out := jsonError{
		Code:       e.Code,
		Category:   e.Category,
		Message:    e.Message,
		Detail:     e.Detail,
		Suggestion: e.Suggestion,
	}
	if e.Location != nil {
		out.Location = &jsonLocation{File: e.Location.File, Line: e.Location.Line, Column: e.Location.Column}
	}
	if e.Wrapped != nil {
		out.Cause = e.Wrapped.Error()
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, e.Error())
	}
	return string(data)
}

// wrapText breaks text into lines of at most width columns, splitting on
// whitespace. A single word longer than width gets its own line.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}
	if len(text) <= width {
		return []string{text}
	}

	var (
		lines   []string
		current []string
		length  int
	)
	for _, word := range strings.Fields(text) {
		if len(current) > 0 && length+1+len(word) > width {
			lines = append(lines, strings.Join(current, " "))
			current, length = nil, 0
		}
		if len(current) > 0 {
			length++
		}
		current = append(current, word)
		length += len(word)
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// PrintError writes err to w in the terminal format. Errors that are not
// NodeErrors print as a bare ERROR line.
func PrintError(w io.Writer, err error) {
	var ne *NodeError
	if stderrors.As(err, &ne) {
		fmt.Fprint(w, ne.Format())
		return
	}
	fmt.Fprintf(w, "\n%s %s\n\n", paint(colorRed, paint(colorBold, "ERROR:")), err.Error())
}

// PrintErrorJSON writes err to w as one JSON object per line, for use
// alongside JSON logs.
func PrintErrorJSON(w io.Writer, err error) {
	var ne *NodeError
	if !stderrors.As(err, &ne) {
		ne = &NodeError{Message: err.Error()}
	}
	fmt.Fprintln(w, ne.FormatJSON())
}
