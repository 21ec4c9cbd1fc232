// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldPaths  = "paths"
	FieldFiles  = "files"
	FieldInput  = "input"
	FieldOutput = "output"

	// Decoder fields.
	FieldEncoding  = "encoding"
	FieldAlignment = "alignment"
	FieldJustify   = "justify"
	FieldFormatted = "formatted"
	FieldPTS       = "pts"
	FieldDuration  = "duration"

	// Statistics fields.
	FieldPacketsDecoded = "packets_decoded"
	FieldPacketsDropped = "packets_dropped"
	FieldSegments       = "segments"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Listing fields.
	FieldName        = "name"
	FieldDescription = "description"
)
