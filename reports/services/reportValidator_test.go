package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validComplaintSubmission() ComplaintSubmission {
	return ComplaintSubmission{
		ComplainantName:  "Juan Dela Cruz",
		ComplainantPhone: "09171234567",
		Subject:          "Loud karaoke",
		Description:      "Karaoke past midnight",
		Location:         "Near the court",
		Purok:            "Purok 2",
	}
}

func TestValidateComplaintSubmission(t *testing.T) {
	t.Run("valid identified submission", func(t *testing.T) {
		assert.Nil(t, ValidateComplaintSubmission(validComplaintSubmission()))
	})

	t.Run("anonymous submission needs no identity", func(t *testing.T) {
		s := validComplaintSubmission()
		s.ComplainantName = ""
		s.ComplainantPhone = ""
		s.IsAnonymous = true
		assert.Nil(t, ValidateComplaintSubmission(s))
	})

	t.Run("identified submission requires name and phone", func(t *testing.T) {
		s := validComplaintSubmission()
		s.ComplainantName = ""
		s.ComplainantPhone = ""
		verr := ValidateComplaintSubmission(s)
		require.NotNil(t, verr)
		assert.ElementsMatch(t, []string{"complainant_name", "complainant_phone"}, verr.MissingFields)
	})

	t.Run("collects every missing field", func(t *testing.T) {
		verr := ValidateComplaintSubmission(ComplaintSubmission{IsAnonymous: true})
		require.NotNil(t, verr)
		assert.ElementsMatch(t, []string{"subject", "description", "location", "purok"}, verr.MissingFields)
	})
}

func validIncidentSubmission() IncidentSubmission {
	return IncidentSubmission{
		ReporterName:  "Maria Santos",
		ReporterPhone: "09181234567",
		Title:         "Tricycle collision",
		Description:   "Two tricycles collided",
		Location:      "Main junction",
		Purok:         "Purok 1",
		IncidentDate:  "2026-08-20T22:30",
	}
}

func TestValidateIncidentSubmission(t *testing.T) {
	t.Run("valid submission parses the date", func(t *testing.T) {
		incidentDate, verr := ValidateIncidentSubmission(validIncidentSubmission())
		require.Nil(t, verr)
		assert.Equal(t, time.Date(2026, 8, 20, 22, 30, 0, 0, time.UTC), incidentDate)
	})

	t.Run("accepts date-only input", func(t *testing.T) {
		s := validIncidentSubmission()
		s.IncidentDate = "2026-08-20"
		incidentDate, verr := ValidateIncidentSubmission(s)
		require.Nil(t, verr)
		assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), incidentDate)
	})

	t.Run("accepts RFC3339 input", func(t *testing.T) {
		s := validIncidentSubmission()
		s.IncidentDate = "2026-08-20T22:30:00+08:00"
		_, verr := ValidateIncidentSubmission(s)
		assert.Nil(t, verr)
	})

	t.Run("malformed date counts as missing", func(t *testing.T) {
		s := validIncidentSubmission()
		s.IncidentDate = "20/08/2026"
		_, verr := ValidateIncidentSubmission(s)
		require.NotNil(t, verr)
		assert.Contains(t, verr.MissingFields, "incident_date")
	})

	t.Run("anonymous submission needs no reporter identity", func(t *testing.T) {
		s := validIncidentSubmission()
		s.ReporterName = ""
		s.ReporterPhone = ""
		s.IsAnonymous = true
		_, verr := ValidateIncidentSubmission(s)
		assert.Nil(t, verr)
	})

	t.Run("identified submission requires reporter name and phone", func(t *testing.T) {
		s := validIncidentSubmission()
		s.ReporterName = ""
		s.ReporterPhone = ""
		_, verr := ValidateIncidentSubmission(s)
		require.NotNil(t, verr)
		assert.ElementsMatch(t, []string{"reporter_name", "reporter_phone"}, verr.MissingFields)
	})
}
