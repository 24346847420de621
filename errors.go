package cxf

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Markup well-formedness
	CodeMalformedMarkup = "malformed_markup"
	// Structural schema conformance
	CodeUnexpectedRoot   = "unexpected_root"
	CodeWrongNamespace   = "wrong_namespace"
	CodeUnknownElement   = "unknown_element"
	CodeUnknownAttribute = "unknown_attribute"
	CodeElementOrder     = "element_order"
	CodeRequired         = "required"
	CodeEmptyValue       = "empty_value"
	CodeInvalidChoice    = "invalid_choice"
	CodeUnexpectedText   = "unexpected_text"
	CodeInvalidNumber    = "invalid_number"
	CodeInvalidDateTime  = "invalid_datetime"
	// Value domains (enumerations, numeric ranges)
	CodeInvalidEnum   = "invalid_enum"
	CodeDomainRange   = "domain_range"
	CodeInvalidGUID   = "invalid_guid"
	CodeInvalidBase64 = "invalid_base64"
	// Cross-reference integrity
	CodeReferenceUnresolved = "reference_unresolved"
	CodeDuplicateID         = "duplicate_id"
)

// Category groups issue codes into the coarse failure classes callers
// typically branch on.
type Category int

const (
	CategoryUnknown Category = iota
	MalformedMarkup
	SchemaViolation
	DomainViolation
	ReferenceIntegrity
	DuplicateKey
)

func (c Category) String() string {
	switch c {
	case MalformedMarkup:
		return "malformed markup"
	case SchemaViolation:
		return "schema violation"
	case DomainViolation:
		return "domain violation"
	case ReferenceIntegrity:
		return "reference integrity"
	case DuplicateKey:
		return "duplicate key"
	default:
		return "unknown"
	}
}

// CategoryOf maps an issue code to its Category.
func CategoryOf(code string) Category {
	switch code {
	case CodeMalformedMarkup:
		return MalformedMarkup
	case CodeUnexpectedRoot, CodeWrongNamespace, CodeUnknownElement,
		CodeUnknownAttribute, CodeElementOrder, CodeRequired,
		CodeEmptyValue, CodeInvalidChoice, CodeUnexpectedText,
		CodeInvalidNumber, CodeInvalidDateTime:
		return SchemaViolation
	case CodeInvalidEnum, CodeDomainRange, CodeInvalidGUID, CodeInvalidBase64:
		return DomainViolation
	case CodeReferenceUnresolved:
		return ReferenceIntegrity
	case CodeDuplicateID:
		return DuplicateKey
	default:
		return CategoryUnknown
	}
}

// Issue represents a single validation entry.
type Issue struct {
	Path    string // Slash path into the document (for example: /CxF/Resources/ObjectCollection/Object[2]/@Id).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
}

// Category returns the failure class of the issue's code.
func (it Issue) Category() Category { return CategoryOf(it.Code) }

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_enum at /CxF/Resources/ObjectCollection/Object[1]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCategory reports whether err carries at least one issue of the given
// category.
func HasCategory(err error, c Category) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Category() == c {
			return true
		}
	}
	return false
}

func issueAt(path, code, msg string) Issues {
	return Issues{{Path: path, Code: code, Message: msg}}
}

func issueCaused(path, code, msg string, cause error) Issues {
	return Issues{{Path: path, Code: code, Message: msg, Cause: cause}}
}
