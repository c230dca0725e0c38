package repositories

import (
	"os"
	"testing"
	"time"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"
	"barangay-mancruz-backend/reports/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	os.Exit(m.Run())
}

const complaintLastReferenceQuery = `SELECT "reference_number" FROM "complaints" WHERE reference_number LIKE .* ORDER BY length\(reference_number\) DESC, reference_number DESC`

func complaintReference(sequence int) string {
	return services.FormatReferenceNumber(services.ComplaintReferencePrefix, time.Now().Year(), sequence)
}

func storableComplaint() *models.Complaint {
	return &models.Complaint{
		ComplainantName: models.AnonymousName,
		ComplaintType:   models.NoiseComplaint,
		Subject:         "Loud karaoke",
		Description:     "Karaoke past midnight",
		Location:        "Near the court",
		Purok:           "Purok 2",
		IsAnonymous:     true,
		Status:          models.ComplaintPending,
	}
}

func TestCreateComplaintContinuesPastThreeDigitSequences(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewComplaintRepository(db)

	// With length-aware ordering the year's max is 1000, not the
	// lexicographic 999, so allocation moves on to 1001
	mock.ExpectBegin()
	mock.ExpectQuery(complaintLastReferenceQuery).
		WillReturnRows(sqlmock.NewRows([]string{"reference_number"}).AddRow(complaintReference(1000)))
	mock.ExpectExec(`INSERT INTO "complaints"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	complaint := storableComplaint()
	require.NoError(t, repo.CreateComplaintWithReference(complaint))
	assert.Equal(t, complaintReference(1001), complaint.ReferenceNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComplaintRetriesWithRefreshedSequence(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewComplaintRepository(db)

	// First attempt loses the 999->1000 race to a concurrent submission
	mock.ExpectBegin()
	mock.ExpectQuery(complaintLastReferenceQuery).
		WillReturnRows(sqlmock.NewRows([]string{"reference_number"}).AddRow(complaintReference(999)))
	mock.ExpectExec(`INSERT INTO "complaints"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	// The retry re-reads the max and sees the winner's reference
	mock.ExpectBegin()
	mock.ExpectQuery(complaintLastReferenceQuery).
		WillReturnRows(sqlmock.NewRows([]string{"reference_number"}).AddRow(complaintReference(1000)))
	mock.ExpectExec(`INSERT INTO "complaints"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	complaint := storableComplaint()
	require.NoError(t, repo.CreateComplaintWithReference(complaint))
	assert.Equal(t, complaintReference(1001), complaint.ReferenceNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComplaintExhaustsRetries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewComplaintRepository(db)

	for i := 0; i < 3; i++ {
		mock.ExpectBegin()
		mock.ExpectQuery(complaintLastReferenceQuery).
			WillReturnRows(sqlmock.NewRows([]string{"reference_number"}).AddRow(complaintReference(42)))
		mock.ExpectExec(`INSERT INTO "complaints"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()
	}

	err := repo.CreateComplaintWithReference(storableComplaint())
	var refErr *services.ReferenceAllocationError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, 3, refErr.Attempts)
	require.NoError(t, mock.ExpectationsWereMet())
}
