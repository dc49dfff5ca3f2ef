package loc

import "strconv"

// DiagnosticCode identifies the specific condition a diagnostic reports.
// The front-end pass is total (spec.md §7): every code below is reachable
// only through Handler.AppendWarning, never a hard failure.
type DiagnosticCode int

const (
	WARNING                            DiagnosticCode = 2000
	WARNING_MULTIPLE_LIST_SIBLINGS     DiagnosticCode = 2001
	WARNING_LIST_MISSING_KEY           DiagnosticCode = 2002
	WARNING_MALFORMED_ATTRIBUTE        DiagnosticCode = 2003
	WARNING_MAP_CALLBACK_NOT_JSX       DiagnosticCode = 2004
	WARNING_COMPONENT_LOOKUP_MISS      DiagnosticCode = 2005
	WARNING_FRAGMENT_WHERE_ELEMENT     DiagnosticCode = 2006
	WARNING_ENTRY_COMPONENT_NOT_FOUND  DiagnosticCode = 2007
)

var diagnosticCodeNames = map[DiagnosticCode]string{
	WARNING:                           "WARNING",
	WARNING_MULTIPLE_LIST_SIBLINGS:    "WARNING_MULTIPLE_LIST_SIBLINGS",
	WARNING_LIST_MISSING_KEY:          "WARNING_LIST_MISSING_KEY",
	WARNING_MALFORMED_ATTRIBUTE:       "WARNING_MALFORMED_ATTRIBUTE",
	WARNING_MAP_CALLBACK_NOT_JSX:      "WARNING_MAP_CALLBACK_NOT_JSX",
	WARNING_COMPONENT_LOOKUP_MISS:     "WARNING_COMPONENT_LOOKUP_MISS",
	WARNING_FRAGMENT_WHERE_ELEMENT:    "WARNING_FRAGMENT_WHERE_ELEMENT",
	WARNING_ENTRY_COMPONENT_NOT_FOUND: "WARNING_ENTRY_COMPONENT_NOT_FOUND",
}

// String renders a DiagnosticCode as its constant name, for callers (metrics
// labels, log lines) that want a stable symbolic identifier rather than the
// bare numeric value.
func (c DiagnosticCode) String() string {
	if name, ok := diagnosticCodeNames[c]; ok {
		return name
	}
	return strconv.Itoa(int(c))
}

// DiagnosticSeverity classifies a DiagnosticMessage for display purposes.
// The pass itself only ever produces WarningType messages (see spec.md §7);
// ErrorType exists so callers embedding this pass alongside other passes
// have a single message shape to sort by.
type DiagnosticSeverity int

const (
	ErrorType DiagnosticSeverity = iota
	WarningType
	InformationType
	HintType
)

// DiagnosticLocation is a human-readable position for a DiagnosticMessage.
type DiagnosticLocation struct {
	File   string
	Line   int
	Column int
	Length int
}

// DiagnosticMessage is the rendered form of a warning collected during
// compilation, suitable for printing to a terminal or serializing to JSON.
type DiagnosticMessage struct {
	Code     DiagnosticCode      `json:"code"`
	Text     string              `json:"text"`
	Severity DiagnosticSeverity  `json:"severity"`
	Location *DiagnosticLocation `json:"location,omitempty"`
}

// ErrorWithRange is an error that carries the byte range of the source
// construct that triggered it, so a Handler can resolve it to a line/column.
type ErrorWithRange struct {
	Code  DiagnosticCode
	Text  string
	Range Range
}

func (e *ErrorWithRange) Error() string {
	return e.Text
}
