package controllers

import (
	"strings"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"
	"barangay-mancruz-backend/reports/services"
	"barangay-mancruz-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// storeSubmittedImages walks the image_0..image_2 form slots, stores any
// accepted image and links it to the report. The report is already committed
// when this runs, so every failure is downgraded to a warning and the slot is
// simply skipped.
func (rc *ReportController) storeSubmittedImages(c *fiber.Ctx, ref models.ReportRef) int {
	uploaded := 0
	for i := 0; i < maxAttachmentsPerReport; i++ {
		field := "image_" + string(rune('0'+i))
		header, err := c.FormFile(field)
		if err != nil || header == nil {
			continue
		}

		mimeType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(mimeType, "image/") {
			config.Logger.Warn("Skipping non-image attachment",
				zap.String("field", field),
				zap.String("mime_type", mimeType),
			)
			continue
		}
		if header.Size > maxAttachmentSize {
			config.Logger.Warn("Skipping oversized attachment",
				zap.String("field", field),
				zap.Int64("size", header.Size),
			)
			continue
		}

		file, err := header.Open()
		if err != nil {
			config.Logger.Warn("Failed to open submitted image",
				zap.String("field", field),
				zap.Error(err),
			)
			continue
		}

		storageName := utils.GenerateAttachmentName(string(ref.Kind)+"s", header.Filename)
		storedPath, err := rc.FileStorage.UploadFile(file, storageName)
		file.Close()
		if err != nil {
			uploadErr := &services.UploadError{FileName: header.Filename, Reason: err.Error()}
			config.Logger.Warn("Failed to store submitted image",
				zap.String("entity_id", ref.ID.String()),
				zap.Error(uploadErr),
			)
			continue
		}

		attachment := &models.FileAttachment{
			EntityType: ref.Kind,
			EntityID:   ref.ID,
			FileName:   header.Filename,
			FilePath:   storedPath,
			FileURL:    rc.FileStorage.PublicURL(storedPath),
			MimeType:   mimeType,
			FileSize:   header.Size,
			IsImage:    true,
		}
		if err := rc.AttachmentRepo.CreateAttachment(attachment); err != nil {
			config.Logger.Warn("Failed to link attachment record",
				zap.String("entity_id", ref.ID.String()),
				zap.Error(err),
			)
			if delErr := rc.FileStorage.DeleteFile(storedPath); delErr != nil {
				config.Logger.Warn("Failed to remove orphaned upload", zap.Error(delErr))
			}
			continue
		}
		uploaded++
	}
	return uploaded
}
