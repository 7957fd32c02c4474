// Package evalerr defines the diagnostics produced while loading and scoring
// benchmark files. File-level problems (MalformedInput, LengthMismatch) abort a
// task; record-level problems (IDMismatch, EmptyField) are collected per position.
package evalerr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Code is a machine-readable diagnostic code.
type Code string

const (
	// MalformedInput means one or more lines of a file had too few columns.
	MalformedInput Code = "MALFORMED_INPUT"
	// LengthMismatch means submission and reference hold a different number of records.
	LengthMismatch Code = "LENGTH_MISMATCH"
	// IDMismatch means the identifiers at one position disagree.
	IDMismatch Code = "ID_MISMATCH"
	// EmptyField means a field needed for scoring is empty or missing.
	EmptyField Code = "EMPTY_FIELD"
)

var fatalCodes = map[Code]bool{
	MalformedInput: true,
	LengthMismatch: true,
}

// NoLine marks a diagnostic that is not tied to a record position.
const NoLine = -1

// Error is a single diagnostic. Error() returns the message exactly as it is
// written to the report.
type Error struct {
	Code    Code
	Line    int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Fatal reports whether the diagnostic aborts scoring of the whole task.
func (e *Error) Fatal() bool { return fatalCodes[e.Code] }

// Malformed builds the file-level error for a file with bad lines.
func Malformed(path string, lines []int) *Error {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = strconv.Itoa(l)
	}
	return &Error{
		Code: MalformedInput,
		Line: NoLine,
		Message: fmt.Sprintf("Errors when reading %s : wrong number of parts in line(s): %s",
			path, strings.Join(parts, ",")),
	}
}

// MissingColumns builds the file-level error for a columnar file lacking required columns.
func MissingColumns(path string, columns []string) *Error {
	return &Error{
		Code:    MalformedInput,
		Line:    NoLine,
		Message: fmt.Sprintf("Errors when reading %s : missing column(s): %s", path, strings.Join(columns, ",")),
	}
}

// Lengths builds the error for sequences of different length.
func Lengths(submission, reference int) *Error {
	return &Error{
		Code: LengthMismatch,
		Line: NoLine,
		Message: fmt.Sprintf("The test data length (%d) does not match the golden data length (%d)",
			submission, reference),
	}
}

// IDs builds the positional identifier mismatch diagnostic.
func IDs(line int, submissionID, referenceID string) *Error {
	return &Error{
		Code:    IDMismatch,
		Line:    line,
		Message: fmt.Sprintf("Line %d: utterance ids do not match (%s and %s)", line, submissionID, referenceID),
	}
}

// Empty builds an EmptyField diagnostic; what names the missing value.
func Empty(line int, what, id string) *Error {
	return &Error{
		Code:    EmptyField,
		Line:    line,
		Message: fmt.Sprintf("Line %d: %s for utterance %s", line, what, id),
	}
}

// Is reports whether err is, or wraps, a diagnostic with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
