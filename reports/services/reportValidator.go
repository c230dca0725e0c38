package services

import "time"

// Submission shapes as they arrive from the multipart forms, before redaction.
// Validation runs on the raw fields: non-anonymous reports must carry name and
// phone even though an anonymous submission would have them stripped.

type ComplaintSubmission struct {
	ComplainantName    string
	ComplainantEmail   string
	ComplainantPhone   string
	ComplainantAddress string
	ComplaintType      string
	Subject            string
	Description        string
	OtherDescription   string
	Location           string
	Purok              string
	Landmark           string
	IsAnonymous        bool
}

type IncidentSubmission struct {
	ReporterName     string
	ReporterEmail    string
	ReporterPhone    string
	ReporterAddress  string
	IncidentType     string
	Title            string
	Description      string
	OtherDescription string
	Location         string
	Purok            string
	Landmark         string
	IncidentDate     string
	IsAnonymous      bool
}

// incidentDateLayouts covers the formats the portal's date picker produces.
var incidentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// ValidateComplaintSubmission returns a ValidationError listing every missing
// required field, or nil when the submission is storable.
func ValidateComplaintSubmission(s ComplaintSubmission) *ValidationError {
	var missing []string
	if s.Subject == "" {
		missing = append(missing, "subject")
	}
	if s.Description == "" {
		missing = append(missing, "description")
	}
	if s.Location == "" {
		missing = append(missing, "location")
	}
	if s.Purok == "" {
		missing = append(missing, "purok")
	}
	if !s.IsAnonymous {
		if s.ComplainantName == "" {
			missing = append(missing, "complainant_name")
		}
		if s.ComplainantPhone == "" {
			missing = append(missing, "complainant_phone")
		}
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	return nil
}

// ValidateIncidentSubmission validates the raw incident form and parses the
// occurrence date. A malformed date counts as a missing field.
func ValidateIncidentSubmission(s IncidentSubmission) (time.Time, *ValidationError) {
	var missing []string
	if s.Title == "" {
		missing = append(missing, "title")
	}
	if s.Description == "" {
		missing = append(missing, "description")
	}
	if s.Location == "" {
		missing = append(missing, "location")
	}
	if s.Purok == "" {
		missing = append(missing, "purok")
	}

	var incidentDate time.Time
	if s.IncidentDate == "" {
		missing = append(missing, "incident_date")
	} else {
		parsed := false
		for _, layout := range incidentDateLayouts {
			if t, err := time.Parse(layout, s.IncidentDate); err == nil {
				incidentDate = t
				parsed = true
				break
			}
		}
		if !parsed {
			missing = append(missing, "incident_date")
		}
	}

	if !s.IsAnonymous {
		if s.ReporterName == "" {
			missing = append(missing, "reporter_name")
		}
		if s.ReporterPhone == "" {
			missing = append(missing, "reporter_phone")
		}
	}

	if len(missing) > 0 {
		return time.Time{}, &ValidationError{MissingFields: missing}
	}
	return incidentDate, nil
}
