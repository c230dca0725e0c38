package repositories

import (
	"strings"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"

	"github.com/blevesearch/bleve/v2"
	"go.uber.org/zap"
)

// Both report variants share one "reports" index, discriminated by the
// report_type field. Documents are built from already-redacted records, so an
// anonymous report can never leak identity through a search hit.

const reportsIndexName = "reports"

type bleveReportDoc struct {
	ID              string `json:"id"`
	ReportType      string `json:"report_type"`
	ReferenceNumber string `json:"reference_number"`
	Subject         string `json:"subject"`
	Description     string `json:"description"`
	SubmitterName   string `json:"submitter_name,omitempty"`
	Status          string `json:"status"`
	Location        string `json:"location"`
	Purok           string `json:"purok"`
	IsAnonymous     bool   `json:"is_anonymous"`
}

func complaintDoc(complaint models.Complaint) bleveReportDoc {
	return bleveReportDoc{
		ID:              complaint.ID.String(),
		ReportType:      string(models.ComplaintReport),
		ReferenceNumber: complaint.ReferenceNumber,
		Subject:         complaint.Subject,
		Description:     complaint.Description,
		SubmitterName:   complaint.ComplainantName,
		Status:          string(complaint.Status),
		Location:        complaint.Location,
		Purok:           complaint.Purok,
		IsAnonymous:     complaint.IsAnonymous,
	}
}

func incidentDoc(incident models.Incident) bleveReportDoc {
	doc := bleveReportDoc{
		ID:              incident.ID.String(),
		ReportType:      string(models.IncidentReport),
		ReferenceNumber: incident.ReferenceNumber,
		Subject:         incident.Title,
		Description:     incident.Description,
		Status:          string(incident.Status),
		Location:        incident.Location,
		Purok:           incident.Purok,
		IsAnonymous:     incident.IsAnonymous,
	}
	if incident.ReporterName != nil {
		doc.SubmitterName = *incident.ReporterName
	}
	return doc
}

func (r *BleveRepository) IndexSingleComplaint(complaint models.Complaint) error {
	doc := complaintDoc(complaint)
	if err := r.indexer.IndexDocument(reportsIndexName, doc.ID, doc); err != nil {
		config.Logger.Error("Failed to index complaint into Bleve",
			zap.Error(err),
			zap.String("complaint_id", doc.ID))
		return err
	}
	return nil
}

func (r *BleveRepository) IndexSingleIncident(incident models.Incident) error {
	doc := incidentDoc(incident)
	if err := r.indexer.IndexDocument(reportsIndexName, doc.ID, doc); err != nil {
		config.Logger.Error("Failed to index incident into Bleve",
			zap.Error(err),
			zap.String("incident_id", doc.ID))
		return err
	}
	return nil
}

// IndexExistingComplaints rebuilds the complaint half of the index on startup.
func (r *BleveRepository) IndexExistingComplaints(complaints []models.Complaint) error {
	docs := make(map[string]interface{}, len(complaints))
	for _, complaint := range complaints {
		doc := complaintDoc(complaint)
		docs[doc.ID] = doc
	}
	if len(docs) == 0 {
		config.Logger.Info("No complaints to index into Bleve")
		return nil
	}

	if err := r.indexer.BulkIndexDocuments(reportsIndexName, docs); err != nil {
		config.Logger.Error("Failed to bulk index complaints into Bleve", zap.Error(err))
		return err
	}
	return nil
}

// IndexExistingIncidents rebuilds the incident half of the index on startup.
func (r *BleveRepository) IndexExistingIncidents(incidents []models.Incident) error {
	docs := make(map[string]interface{}, len(incidents))
	for _, incident := range incidents {
		doc := incidentDoc(incident)
		docs[doc.ID] = doc
	}
	if len(docs) == 0 {
		config.Logger.Info("No incidents to index into Bleve")
		return nil
	}

	if err := r.indexer.BulkIndexDocuments(reportsIndexName, docs); err != nil {
		config.Logger.Error("Failed to bulk index incidents into Bleve", zap.Error(err))
		return err
	}
	return nil
}

func (r *BleveRepository) UpdateComplaint(complaint models.Complaint) error {
	if err := r.indexer.DeleteDocument(reportsIndexName, complaint.ID.String()); err != nil {
		config.Logger.Error("Failed to delete complaint document for update",
			zap.Error(err),
			zap.String("complaint_id", complaint.ID.String()))
		return err
	}
	return r.IndexSingleComplaint(complaint)
}

func (r *BleveRepository) UpdateIncident(incident models.Incident) error {
	if err := r.indexer.DeleteDocument(reportsIndexName, incident.ID.String()); err != nil {
		config.Logger.Error("Failed to delete incident document for update",
			zap.Error(err),
			zap.String("incident_id", incident.ID.String()))
		return err
	}
	return r.IndexSingleIncident(incident)
}

func (r *BleveRepository) DeleteComplaint(complaintID string) error {
	return r.indexer.DeleteDocument(reportsIndexName, complaintID)
}

func (r *BleveRepository) DeleteIncident(incidentID string) error {
	return r.indexer.DeleteDocument(reportsIndexName, incidentID)
}

// SearchReports runs the admin full-text search. Reference numbers and
// subjects rank highest, prefix and fuzzy matches catch partial input and
// typos, and the optional filters narrow by status, purok and variant.
func (r *BleveRepository) SearchReports(queryString, status, purok, reportType string) (*bleve.SearchResult, error) {
	booleanQuery := bleve.NewBooleanQuery()
	queryString = strings.TrimSpace(queryString)
	queryStringLower := strings.ToLower(queryString)

	if queryString != "" {
		exactMatch := bleve.NewBooleanQuery()

		refExact := bleve.NewTermQuery(queryString)
		refExact.SetField("reference_number")
		refExact.SetBoost(10.0)
		exactMatch.AddShould(refExact)

		refExactLower := bleve.NewTermQuery(queryStringLower)
		refExactLower.SetField("reference_number")
		refExactLower.SetBoost(9.0)
		exactMatch.AddShould(refExactLower)

		subjectMatch := bleve.NewMatchQuery(queryString)
		subjectMatch.SetField("subject")
		subjectMatch.SetBoost(8.0)
		exactMatch.AddShould(subjectMatch)

		nameMatch := bleve.NewMatchQuery(queryString)
		nameMatch.SetField("submitter_name")
		nameMatch.SetBoost(7.0)
		exactMatch.AddShould(nameMatch)

		descriptionMatch := bleve.NewMatchQuery(queryString)
		descriptionMatch.SetField("description")
		descriptionMatch.SetBoost(5.0)
		exactMatch.AddShould(descriptionMatch)

		prefixMatch := bleve.NewBooleanQuery()

		refPrefix := bleve.NewPrefixQuery(queryStringLower)
		refPrefix.SetField("reference_number")
		refPrefix.SetBoost(6.0)
		prefixMatch.AddShould(refPrefix)

		subjectPrefix := bleve.NewPrefixQuery(queryStringLower)
		subjectPrefix.SetField("subject")
		subjectPrefix.SetBoost(4.0)
		prefixMatch.AddShould(subjectPrefix)

		fuzzyQuery := bleve.NewFuzzyQuery(queryStringLower)
		fuzzyQuery.SetField("subject")
		fuzzyQuery.SetBoost(3.0)
		fuzzyQuery.SetFuzziness(1)
		prefixMatch.AddShould(fuzzyQuery)

		booleanQuery.AddShould(exactMatch)
		booleanQuery.AddShould(prefixMatch)
	}

	finalQuery := bleve.NewBooleanQuery()
	if queryString != "" {
		finalQuery.AddMust(booleanQuery)
	}

	if status != "" && status != "all" {
		statusQuery := bleve.NewTermQuery(strings.ToLower(status))
		statusQuery.SetField("status")
		finalQuery.AddMust(statusQuery)
	}

	if purok != "" && purok != "all" {
		purokQuery := bleve.NewMatchQuery(purok)
		purokQuery.SetField("purok")
		finalQuery.AddMust(purokQuery)
	}

	if reportType != "" && reportType != "all" {
		typeQuery := bleve.NewTermQuery(strings.ToLower(reportType))
		typeQuery.SetField("report_type")
		finalQuery.AddMust(typeQuery)
	}

	return r.indexer.SearchIndex(reportsIndexName, finalQuery, 20)
}

func (r *BleveRepository) GetReportDocument(id string) (interface{}, error) {
	return r.indexer.GetDocument(reportsIndexName, id)
}
