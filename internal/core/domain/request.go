package domain

import "strings"

// AlreadyImportedPrefix tags the filename of a suppressed repeat import.
const AlreadyImportedPrefix = "already-imported:"

// ImportRequest is one @import as seen by the compiler.
type ImportRequest struct {
	// URI is the slash-delimited reference as written in the stylesheet.
	URI string
	// OriginatingFile is the absolute path of the importing file.
	// It may not exist when compiling from an in-memory string.
	OriginatingFile string
}

// ResolvedFile is the first candidate that could be read.
type ResolvedFile struct {
	AbsolutePath string
	RawBytes     []byte
}

// ImportResult is handed back to the compiler.
//
// A successful import sets Contents and File. A suppressed repeat has empty
// Contents and a Filename carrying AlreadyImportedPrefix. The zero value means
// no import was performed.
type ImportResult struct {
	Contents string
	File     string
	Filename string
}

// DuplicateResult builds the result for an already-delivered path.
func DuplicateResult(path string) ImportResult {
	return ImportResult{Filename: AlreadyImportedPrefix + path}
}

// IsDuplicate reports whether r is a suppressed repeat.
func (r ImportResult) IsDuplicate() bool {
	return r.Contents == "" && strings.HasPrefix(r.Filename, AlreadyImportedPrefix)
}

// IsEmpty reports whether r is the "no import performed" fallback.
func (r ImportResult) IsEmpty() bool {
	return r == ImportResult{}
}

// Path returns the resolved file path for both delivered and duplicate results.
func (r ImportResult) Path() string {
	if r.File != "" {
		return r.File
	}
	return strings.TrimPrefix(r.Filename, AlreadyImportedPrefix)
}
