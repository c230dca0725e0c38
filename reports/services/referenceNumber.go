package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Reference numbers are the public tracking codes handed to residents, shaped
// {PREFIX}-{YEAR}-{SEQUENCE} (e.g. CMP-2026-014). Sequences restart each year
// and are per variant; the unique index on reference_number is the final
// authority, and allocation retries under it.

const (
	ComplaintReferencePrefix = "CMP"
	IncidentReferencePrefix  = "INC"

	// ReferenceMaxAttempts bounds the allocation retry loop before the
	// submission fails with a ReferenceAllocationError.
	ReferenceMaxAttempts = 3
)

// FormatReferenceNumber renders a reference code. Sequences are zero-padded
// to three digits but keep growing past 999.
func FormatReferenceNumber(prefix string, year, sequence int) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, sequence)
}

// NextSequence derives the follow-up sequence from the latest reference
// issued this year. An empty or foreign-shaped reference starts the year at 1.
func NextSequence(lastReference, prefix string, year int) int {
	expected := fmt.Sprintf("%s-%d-", prefix, year)
	if !strings.HasPrefix(lastReference, expected) {
		return 1
	}
	seq, err := strconv.Atoi(strings.TrimPrefix(lastReference, expected))
	if err != nil || seq < 0 {
		return 1
	}
	return seq + 1
}

// IsUniqueViolation reports whether err is the store rejecting a duplicate
// reference number (or any other unique constraint).
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
