package videos

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/devfolio/backend/internal/models"
	"github.com/devfolio/backend/pkg/response"
	"github.com/devfolio/backend/pkg/storage"
)

const defaultListLimit = 50

// VideoOut is the public video shape returned by upload and listing.
// Optional fields are omitted when the stored document lacks them.
type VideoOut struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	URL         string  `json:"url"`
	MimeType    *string `json:"mime_type,omitempty"`
	SizeBytes   *int64  `json:"size_bytes,omitempty"`
	CreatedAt   *string `json:"created_at,omitempty"`
}

// Handler handles video HTTP endpoints.
type Handler struct {
	repo   *Repository
	files  *storage.Local
	logger *zap.Logger
}

// NewHandler creates a videos handler.
func NewHandler(repo *Repository, files *storage.Local, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{repo: repo, files: files, logger: logger}
}

// Upload handles POST /api/videos (multipart: file, title, description?).
// The payload is written to the upload directory under a generated unique
// name before the metadata record is inserted; if the insert fails the file
// is removed again so no record exists without its file.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file (form field: file)")
		return
	}
	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		response.BadRequest(c, "title is required")
		return
	}
	description := c.PostForm("description")

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "unreadable file: "+err.Error())
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		response.BadRequest(c, "unreadable file: "+err.Error())
		return
	}

	name := storage.UniqueName(fileHeader.Filename)
	if _, err := h.files.Save(name, data); err != nil {
		h.logger.Error("save upload failed", zap.Error(err), zap.String("filename", name))
		response.Internal(c, err.Error())
		return
	}

	video := &models.Video{
		Title:       title,
		Description: description,
		Filename:    name,
		URL:         storage.PublicURL(name),
		MimeType:    fileHeader.Header.Get("Content-Type"),
		SizeBytes:   int64(len(data)),
		CreatedAt:   time.Now().UTC(),
	}
	id, err := h.repo.Insert(c.Request.Context(), video)
	if err != nil {
		// Keep the file/record invariant: no record means no file.
		if rmErr := h.files.Remove(name); rmErr != nil {
			h.logger.Warn("cleanup after failed insert", zap.Error(rmErr), zap.String("filename", name))
		}
		h.logger.Error("insert video failed", zap.Error(err))
		response.Internal(c, err.Error())
		return
	}

	out := VideoOut{
		ID:        id,
		Title:     video.Title,
		URL:       video.URL,
		SizeBytes: &video.SizeBytes,
	}
	if video.Description != "" {
		out.Description = &video.Description
	}
	if video.MimeType != "" {
		out.MimeType = &video.MimeType
	}
	createdAt := video.CreatedAt.Format(time.RFC3339Nano)
	out.CreatedAt = &createdAt
	c.JSON(http.StatusOK, out)
}

// List handles GET /api/videos?limit=N. Returns up to limit records in
// store-default order; no pagination cursor and no sort guarantee.
func (h *Handler) List(c *gin.Context) {
	limit := int64(defaultListLimit)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "limit must be an integer")
			return
		}
		limit = n
	}

	docs, err := h.repo.List(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("list videos failed", zap.Error(err))
		response.Internal(c, err.Error())
		return
	}

	out := make([]VideoOut, 0, len(docs))
	for _, d := range docs {
		out = append(out, videoFromDocument(d))
	}
	c.JSON(http.StatusOK, out)
}

// videoFromDocument maps a raw stored document into the public shape,
// tolerating records written by earlier versions with missing fields.
func videoFromDocument(d bson.M) VideoOut {
	out := VideoOut{ID: documentID(d), Title: "Untitled"}
	if s, ok := d["title"].(string); ok && s != "" {
		out.Title = s
	}
	if s, ok := d["url"].(string); ok {
		out.URL = s
	}
	if s, ok := d["description"].(string); ok && s != "" {
		out.Description = &s
	}
	if s, ok := d["mime_type"].(string); ok && s != "" {
		out.MimeType = &s
	}
	if n, ok := asInt64(d["size_bytes"]); ok {
		out.SizeBytes = &n
	}
	if t, ok := documentTime(d["created_at"]); ok {
		s := t.UTC().Format(time.RFC3339Nano)
		out.CreatedAt = &s
	}
	return out
}

func documentID(d bson.M) string {
	switch id := d["_id"].(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}

func documentTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time(), true
	case time.Time:
		return t, true
	}
	return time.Time{}, false
}

func asInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}
