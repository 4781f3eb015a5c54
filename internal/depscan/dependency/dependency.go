// Package dependency defines the records produced by the manifest analyzers
// and the caller-owned collection they are registered into.
package dependency

import (
	"encoding/json"
	"path/filepath"
)

// EvidenceType classifies what aspect of a package a piece of evidence
// supports.
type EvidenceType string

const (
	EvidenceVendor  EvidenceType = "vendor"
	EvidenceProduct EvidenceType = "product"
	EvidenceVersion EvidenceType = "version"
)

// Confidence rates how strongly a piece of evidence or an identifier is
// believed to describe the package it is attached to.
type Confidence int

const (
	ConfidenceLow Confidence = iota
	ConfidenceMedium
	ConfidenceHigh
	ConfidenceHighest
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceLow:
		return "low"
	case ConfidenceMedium:
		return "medium"
	case ConfidenceHigh:
		return "high"
	case ConfidenceHighest:
		return "highest"
	}

	return "unknown"
}

func (c Confidence) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Evidence is a single provenance-tagged observation extracted from a file,
// kept for later matching stages. Entries are append-only and never
// deduplicated by the analyzers.
type Evidence struct {
	Type       EvidenceType `json:"type"`
	Source     string       `json:"source"`
	Field      string       `json:"field"`
	Value      string       `json:"value"`
	Confidence Confidence   `json:"confidence"`
}

// IdentifierKind says whether an identifier is a canonical package URL or the
// generic tagged fallback used when purl construction is not possible.
type IdentifierKind string

const (
	IdentifierPURL    IdentifierKind = "purl"
	IdentifierGeneric IdentifierKind = "generic"
)

// Identifier is a software identifier usable for cross-system lookup.
type Identifier struct {
	Value      string         `json:"value"`
	Kind       IdentifierKind `json:"kind"`
	Confidence Confidence     `json:"confidence"`
}

// Dependency represents one discovered unit of software.
//
// A record starts out as a placeholder for a file found on disk and is
// populated by the analyzer that claims the file. Records for packages pinned
// in a lock file are virtual: their file fields reference the lock file they
// were found in, but they do not represent that file itself.
type Dependency struct {
	FilePath       string       `json:"filePath"`
	ActualFilePath string       `json:"actualFilePath"`
	FileName       string       `json:"fileName"`
	Virtual        bool         `json:"virtual,omitempty"`
	Ecosystem      string       `json:"ecosystem,omitempty"`
	Name           string       `json:"name,omitempty"`
	Version        string       `json:"version,omitempty"`
	PackagePath    string       `json:"packagePath,omitempty"`
	DisplayName    string       `json:"displayName,omitempty"`
	Identifiers    []Identifier `json:"identifiers,omitempty"`
	Evidence       []Evidence   `json:"evidence,omitempty"`
	SHA1Sum        string       `json:"sha1,omitempty"`
	SHA256Sum      string       `json:"sha256,omitempty"`
	MD5Sum         string       `json:"md5,omitempty"`
}

// New creates a placeholder record for a file discovered on disk.
func New(actualFilePath string) *Dependency {
	return &Dependency{
		FilePath:       actualFilePath,
		ActualFilePath: actualFilePath,
		FileName:       filepath.Base(actualFilePath),
	}
}

// NewVirtual creates a record for a package that was described by the given
// file rather than being the file itself.
func NewVirtual(actualFilePath string) *Dependency {
	d := New(actualFilePath)
	d.Virtual = true

	return d
}

// AddEvidence appends one evidence entry to the record.
func (d *Dependency) AddEvidence(evidenceType EvidenceType, source, field, value string, confidence Confidence) {
	d.Evidence = append(d.Evidence, Evidence{
		Type:       evidenceType,
		Source:     source,
		Field:      field,
		Value:      value,
		Confidence: confidence,
	})
}

// AddIdentifier appends one software identifier to the record.
func (d *Dependency) AddIdentifier(id Identifier) {
	d.Identifiers = append(d.Identifiers, id)
}
