package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/myvegiz/backend/internal/application/uploads"
	"github.com/myvegiz/backend/internal/domain/shared"
	"github.com/myvegiz/backend/internal/interfaces/http/dto"
)

// uuidParam parses the :id path parameter. On failure it writes the error
// envelope and reports false.
func uuidParam(c *gin.Context, base *BaseHandler) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		base.BadRequest(c, "Invalid identifier")
		return uuid.Nil, false
	}
	return id, true
}

// listQuery binds the common pagination query parameters
func listQuery(c *gin.Context, base *BaseHandler) (dto.ListRequest, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		base.BadRequest(c, "Invalid pagination parameters")
		return req, false
	}
	return req, true
}

// formImage reads an optional multipart image field. A missing field
// returns (nil, nil); type and size limits are enforced downstream by the
// upload service.
func formImage(c *gin.Context, field string) (*uploads.Image, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, shared.NewValidationError("Invalid file upload")
	}
	return readImage(fileHeader)
}

// formImages reads every file under a repeated multipart field
func formImages(c *gin.Context, field string) ([]uploads.Image, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File[field]
	images := make([]uploads.Image, 0, len(files))
	for _, fileHeader := range files {
		image, err := readImage(fileHeader)
		if err != nil {
			return nil, err
		}
		images = append(images, *image)
	}
	return images, nil
}

func readImage(fileHeader *multipart.FileHeader) (*uploads.Image, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, shared.NewValidationError("Invalid file upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, shared.NewValidationError("Failed to read uploaded file")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &uploads.Image{Data: data, ContentType: contentType}, nil
}
