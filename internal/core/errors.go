package core

// errors.go defines the conversion error taxonomy and the mapping from
// technical errors to user-facing messages with support codes.
//
// There are only two ways a run fails:
//   - MissingColumnsError: required columns absent, detected before the
//     row loop, named in full.
//   - ProcessingError: anything that goes wrong during row mapping,
//     caught once at the Convert boundary.
//
// Unparseable numeric cells are deliberately NOT errors; they coerce to
// zero because the source is a hand-edited spreadsheet.

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports every required column absent from the
// upload header, not just the first one found.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// ProcessingError wraps an unexpected failure during row mapping. The
// run is aborted and any partially built tables are discarded.
type ProcessingError struct {
	Row   int // 1-based data row, 0 if unknown
	Cause error
}

func (e *ProcessingError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("unexpected error processing row %d: %v", e.Row, e.Cause)
	}
	return fmt.Sprintf("unexpected processing error: %v", e.Cause)
}

func (e *ProcessingError) Unwrap() error { return e.Cause }

// UserMessage is a user-friendly rendering of an error with an
// actionable hint and a code users can quote to support.
type UserMessage struct {
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error substrings (case-insensitive) to
// user messages. First match wins, so specific patterns come first.
var errorPatterns = []errorPattern{
	{
		pattern: "missing required columns",
		msg: UserMessage{
			Message: "The file is missing required columns",
			Action:  "Add the named columns to the spreadsheet header and re-upload",
			Code:    "VAL001",
		},
	},
	{
		pattern: "unexpected error processing row",
		msg: UserMessage{
			Message: "A row could not be converted",
			Action:  "Check the named row for malformed data and re-upload",
			Code:    "VAL002",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The uploaded file has no data rows",
			Action:  "Upload a file with a header row and at least one item",
			Code:    "FILE001",
		},
	},
	{
		pattern: "unsupported file type",
		msg: UserMessage{
			Message: "The file type is not supported",
			Action:  "Upload a .csv or .xlsx file",
			Code:    "FILE002",
		},
	},
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The file exceeds the size limit",
			Action:  "Export only the inventory sheet and try again",
			Code:    "FILE003",
		},
	},
	{
		pattern: "no file provided",
		msg: UserMessage{
			Message: "No file was selected",
			Action:  "Choose the source spreadsheet before submitting",
			Code:    "FILE004",
		},
	},
	{
		pattern: "run not found",
		msg: UserMessage{
			Message: "This conversion has expired",
			Action:  "Upload the file again to regenerate the downloads",
			Code:    "RUN001",
		},
	},
	{
		pattern: "incorrect password",
		msg: UserMessage{
			Message: "Password incorrect",
			Action:  "Check with the team for the current password",
			Code:    "AUTH001",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is the ERR000 fallback; the original error goes to the
// server log, not to the user.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message. The
// search is case-insensitive substring matching; no match falls back to
// ERR000.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders an error as "Message (Code: XXX). Action" for
// plain-text display.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
