// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldVault = "vault"

	// Decoration fields.
	FieldMode        = "mode"
	FieldCursor      = "cursor"
	FieldDecorations = "decorations"
	FieldDropped     = "dropped"
	FieldWidgets     = "widgets"

	// Document fields.
	FieldBytes = "bytes"
	FieldLines = "lines"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
