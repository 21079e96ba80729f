package handlers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SpinCityEvents/gig-manager/internal/httperr"
	"github.com/SpinCityEvents/gig-manager/internal/httpresp"
	"github.com/SpinCityEvents/gig-manager/internal/middleware"
	"github.com/SpinCityEvents/gig-manager/internal/models"
	"github.com/SpinCityEvents/gig-manager/internal/storage"
)

const maxUploadBytes = 25 << 20 // 25 MiB

type FileHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewFileHandler(db *gorm.DB, uploader *storage.Uploader) *FileHandler {
	return &FileHandler{db: db, uploader: uploader}
}

func (h *FileHandler) List(c *gin.Context) {
	q := dbc(c, h.db).Preload("DocumentType")

	if gigID := c.Query("gig_id"); gigID != "" {
		q = q.Where("gig_id = ?", gigID)
	}
	if venueID := c.Query("venue_id"); venueID != "" {
		q = q.Where("venue_id = ?", venueID)
	}
	if personnelID := c.Query("personnel_id"); personnelID != "" {
		q = q.Where("personnel_id = ?", personnelID)
	}

	var files []models.FileRecord
	if err := q.Order("created_at DESC").Find(&files).Error; err != nil {
		httperr.Internal(c, "failed_to_list_files", "could not list files")
		return
	}

	httpresp.List(c, files)
}

func (h *FileHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var file models.FileRecord
	if err := dbc(c, h.db).Preload("DocumentType").First(&file, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "file")
		return
	}

	httpresp.OK(c, file)
}

// Upload takes a multipart form: the file plus optional document_type_id
// and gig_id/venue_id/personnel_id attachment targets. Image uploads get a
// webp thumbnail alongside the original.
func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "multipart field 'file' is required")
		return
	}
	if header.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "file exceeds the upload limit")
		return
	}

	src, err := header.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "could not read upload")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil || int64(len(data)) > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "file exceeds the upload limit")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	fileID := uuid.New()
	key := fmt.Sprintf("files/%s%s", fileID, strings.ToLower(filepath.Ext(header.Filename)))

	url, err := h.uploader.Put(c.Request.Context(), key, contentType, data)
	if err != nil {
		httperr.Internal(c, "upload_failed", "could not store file")
		return
	}

	record := models.FileRecord{
		Base:        models.Base{ID: fileID},
		Name:        header.Filename,
		ContentType: contentType,
		SizeBytes:   int64(len(data)),
		StorageKey:  key,
		URL:         url,
	}

	if storage.IsImage(contentType) {
		if thumb, ok := storage.Thumbnail(data); ok {
			thumbKey := fmt.Sprintf("files/%s_thumb.webp", fileID)
			if thumbURL, err := h.uploader.Put(c.Request.Context(), thumbKey, "image/webp", thumb); err == nil {
				record.ThumbnailURL = &thumbURL
			}
		}
	}

	if userID, ok := c.Get(middleware.ContextUserID); ok {
		if uid, ok := userID.(uuid.UUID); ok {
			record.UploadedByUserID = &uid
		}
	}

	record.DocumentTypeID = parseOptionalUUIDForm(c, "document_type_id")
	record.GigID = parseOptionalUUIDForm(c, "gig_id")
	record.VenueID = parseOptionalUUIDForm(c, "venue_id")
	record.PersonnelID = parseOptionalUUIDForm(c, "personnel_id")

	if err := dbc(c, h.db).Create(&record).Error; err != nil {
		httperr.FromDB(c, err, "file")
		return
	}

	httpresp.Created(c, record)
}

// Delete removes the stored object(s) first, then the row.
func (h *FileHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var file models.FileRecord
	if err := dbc(c, h.db).First(&file, "id = ?", id).Error; err != nil {
		httperr.FromDB(c, err, "file")
		return
	}

	if err := h.uploader.Delete(c.Request.Context(), file.StorageKey); err != nil {
		httperr.Internal(c, "delete_failed", "could not remove stored file")
		return
	}
	if file.ThumbnailURL != nil {
		_ = h.uploader.Delete(c.Request.Context(), fmt.Sprintf("files/%s_thumb.webp", file.ID))
	}

	if err := dbc(c, h.db).Delete(&file).Error; err != nil {
		httperr.FromDB(c, err, "file")
		return
	}

	httpresp.OK(c, gin.H{"deleted": id})
}

func parseOptionalUUIDForm(c *gin.Context, field string) *uuid.UUID {
	v := c.PostForm(field)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}
