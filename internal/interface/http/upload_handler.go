package handlers

import (
	"errors"
	"net/http"
	"path/filepath"

	"cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/interface/middleware"
	"github.com/oksasatya/store-admin-api/pkg/helpers"
	"github.com/oksasatya/store-admin-api/pkg/response"
)

// UploadHandler stores billboard/product images in GCS and hands back the
// public URL the admin UI then submits as imageUrl. Same subject/ownership
// contract as the catalog writes.
type UploadHandler struct {
	GCS    *storage.Client
	Bucket string
	Guard  *application.OwnershipGuard
	Logger *logrus.Logger
}

func NewUploadHandler(gcs *storage.Client, bucket string, guard *application.OwnershipGuard, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{GCS: gcs, Bucket: bucket, Guard: guard, Logger: logger}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	subject := c.GetString(middleware.CtxUserIDKey)
	if subject == "" {
		response.PlainError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.PlainError(c, http.StatusUnprocessableEntity, "File is required")
		return
	}

	storeID := c.Param("storeId")
	if storeID == "" {
		response.PlainError(c, http.StatusUnprocessableEntity, "Store ID is required")
		return
	}

	if _, err := h.Guard.Authorize(c.Request.Context(), subject, storeID); err != nil {
		if ae, ok := application.AsError(err); ok {
			response.PlainError(c, ae.Status, ae.Message)
			return
		}
		h.fail(c, err)
		return
	}

	if h.GCS == nil || h.Bucket == "" {
		h.fail(c, errNoObjectStorage)
		return
	}

	src, err := file.Open()
	if err != nil {
		h.fail(c, err)
		return
	}
	defer func() { _ = src.Close() }()

	objectPath := "stores/" + storeID + "/" + uuid.NewString() + filepath.Ext(file.Filename)
	contentType := file.Header.Get("Content-Type")
	url, err := helpers.UploadObject(c.Request.Context(), h.GCS, h.Bucket, objectPath, contentType, src)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.JSON(c, gin.H{"url": url})
}

func (h *UploadHandler) fail(c *gin.Context, err error) {
	h.Logger.WithError(err).WithFields(logrus.Fields{
		"handler":    "upload",
		"request_id": c.GetString("request_id"),
	}).Error("unhandled error")
	response.InternalError(c)
}

var errNoObjectStorage = errors.New("object storage not configured")
