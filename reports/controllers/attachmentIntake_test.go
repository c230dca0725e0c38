package controllers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type imagePart struct {
	field       string
	fileName    string
	contentType string
	content     []byte
}

// multipartFormWithFiles builds a form with both text fields and file parts.
// CreateFormFile hard-codes application/octet-stream, so parts are written by
// hand to carry a real Content-Type.
func multipartFormWithFiles(t *testing.T, fields map[string]string, files []imagePart) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, file.field, file.fileName))
		header.Set("Content-Type", file.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func validComplaintFields() map[string]string {
	return map[string]string{
		"subject":      "Blocked drainage",
		"description":  "Water pooling after rain",
		"location":     "Near the chapel",
		"purok":        "Purok 3",
		"is_anonymous": "true",
	}
}

func postComplaint(t *testing.T, app *fiber.App, body *bytes.Buffer, contentType string) map[string]interface{} {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/reports/complaints", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	return decodeBody(t, resp)
}

func TestCreateComplaintStoresAtMostThreeImages(t *testing.T) {
	app, controller, _, _, _ := newTestApp()

	// Four slots submitted; only image_0 through image_2 are read
	files := make([]imagePart, 0, 4)
	for i := 0; i < 4; i++ {
		files = append(files, imagePart{
			field:       fmt.Sprintf("image_%d", i),
			fileName:    fmt.Sprintf("drainage-%d.png", i),
			contentType: "image/png",
			content:     []byte("png-bytes"),
		})
	}

	body, contentType := multipartFormWithFiles(t, validComplaintFields(), files)
	result := postComplaint(t, app, body, contentType)
	assert.Equal(t, float64(3), result["uploaded_files"])

	attachments := controller.AttachmentRepo.(*fakeAttachmentRepo).attachments
	require.Len(t, attachments, 3)
	for _, attachment := range attachments {
		assert.Equal(t, "image/png", attachment.MimeType)
		assert.True(t, attachment.IsImage)
	}
	assert.Len(t, controller.FileStorage.(*fakeFileStorage).stored, 3)
}

func TestCreateComplaintSkipsNonImageAttachment(t *testing.T) {
	app, controller, _, _, _ := newTestApp()

	body, contentType := multipartFormWithFiles(t, validComplaintFields(), []imagePart{
		{field: "image_0", fileName: "notes.txt", contentType: "text/plain", content: []byte("not a picture")},
		{field: "image_1", fileName: "drainage.jpg", contentType: "image/jpeg", content: []byte("jpeg-bytes")},
	})

	result := postComplaint(t, app, body, contentType)
	assert.Equal(t, float64(1), result["uploaded_files"])

	attachments := controller.AttachmentRepo.(*fakeAttachmentRepo).attachments
	require.Len(t, attachments, 1)
	assert.Equal(t, "drainage.jpg", attachments[0].FileName)
}

func TestCreateComplaintSkipsOversizedAttachment(t *testing.T) {
	app, controller, _, _, _ := newTestApp()

	body, contentType := multipartFormWithFiles(t, validComplaintFields(), []imagePart{
		{
			field:       "image_0",
			fileName:    "huge.png",
			contentType: "image/png",
			content:     bytes.Repeat([]byte("a"), maxAttachmentSize+1),
		},
	})

	// The submission still succeeds, the oversized slot is just dropped
	result := postComplaint(t, app, body, contentType)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, float64(0), result["uploaded_files"])
	assert.Empty(t, controller.AttachmentRepo.(*fakeAttachmentRepo).attachments)
}
