package models

import "github.com/google/uuid"

// ReportKind discriminates the two report variants. File attachments and
// activity logs hang off either variant through a (kind, id) pair instead of
// per-table foreign keys.
type ReportKind string

const (
	ComplaintReport ReportKind = "complaint"
	IncidentReport  ReportKind = "incident"
)

// ReportRef is a typed reference to one report of either variant.
type ReportRef struct {
	Kind ReportKind
	ID   uuid.UUID
}

func (k ReportKind) Valid() bool {
	return k == ComplaintReport || k == IncidentReport
}

func ComplaintRef(id uuid.UUID) ReportRef {
	return ReportRef{Kind: ComplaintReport, ID: id}
}

func IncidentRef(id uuid.UUID) ReportRef {
	return ReportRef{Kind: IncidentReport, ID: id}
}
