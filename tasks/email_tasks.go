package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeReportConfirmation delivers the reference-number confirmation email
// after a submission commits. Delivery is best-effort: asynq retries
// transient SMTP failures and a final failure is only a diagnostic.
const TypeReportConfirmation = "email:report_confirmation"

type ReportConfirmationPayload struct {
	Email           string `json:"email"`
	RecipientName   string `json:"recipient_name"`
	ReferenceNumber string `json:"reference_number"`
	ReportType      string `json:"report_type"`
}

func NewReportConfirmationTask(payload ReportConfirmationPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal confirmation payload: %w", err)
	}
	return asynq.NewTask(TypeReportConfirmation, data,
		asynq.MaxRetry(5),
		asynq.Timeout(time.Minute),
	), nil
}

func HandleReportConfirmationTask(ctx context.Context, t *asynq.Task) error {
	var payload ReportConfirmationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal confirmation payload: %w", err)
	}
	return utils.SendReportConfirmation(payload.Email, payload.RecipientName, payload.ReferenceNumber, payload.ReportType)
}

// EnqueueReportConfirmation queues the confirmation email post-commit. An
// enqueue failure is logged and swallowed; it never affects the HTTP
// response for the submission.
func EnqueueReportConfirmation(client *asynq.Client, payload ReportConfirmationPayload) {
	task, err := NewReportConfirmationTask(payload)
	if err != nil {
		config.Logger.Error("Failed to build confirmation email task", zap.Error(err))
		return
	}
	if _, err := client.Enqueue(task); err != nil {
		config.Logger.Error("Failed to enqueue confirmation email",
			zap.String("reference_number", payload.ReferenceNumber),
			zap.Error(err),
		)
	}
}
