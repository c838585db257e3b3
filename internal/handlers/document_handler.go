package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PrassV/Propo-Staging-sub002/internal/repositories"
	"github.com/PrassV/Propo-Staging-sub002/internal/responses"
	"github.com/PrassV/Propo-Staging-sub002/internal/services"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// UploadDocument handles POST /api/v1/documents (multipart/form-data)
func (h *DocumentHandler) UploadDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Missing file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Could not read file")
		return
	}
	defer file.Close()

	req := services.UploadDocumentRequest{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
	}
	if v := c.PostForm("property_id"); v != "" {
		req.PropertyID = &v
	}
	if v := c.PostForm("tenant_id"); v != "" {
		req.TenantID = &v
	}

	doc, err := h.documentService.Upload(userID, req, file)
	if err != nil {
		failFor(c, err, "Failed to upload document")
		return
	}

	responses.Success(c, http.StatusCreated, doc, "Document uploaded successfully")
}

// GetDocument handles GET /api/v1/documents/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid document id")
		return
	}

	doc, err := h.documentService.Get(id, userID)
	if err != nil {
		failFor(c, err, "Document not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, doc, "Document retrieved successfully")
}

// ListDocuments handles GET /api/v1/documents
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	var filter repositories.DocumentFilter
	if v := c.Query("property_id"); v != "" {
		filter.PropertyID, _ = uuid.Parse(v)
	}
	if v := c.Query("tenant_id"); v != "" {
		filter.TenantID, _ = uuid.Parse(v)
	}

	docs, err := h.documentService.List(userID, filter)
	if err != nil {
		failFor(c, err, "Failed to retrieve documents")
		return
	}

	responses.Success(c, http.StatusOK, docs, "Documents retrieved successfully")
}

// GetDownloadURL handles GET /api/v1/documents/:id/url
func (h *DocumentHandler) GetDownloadURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid document id")
		return
	}

	token, err := h.documentService.SignedToken(c.Request.Context(), id, userID)
	if err != nil {
		failFor(c, err, "Failed to sign download url")
		return
	}

	res := gin.H{
		"url": "/api/v1/documents/download?token=" + token,
	}

	responses.Success(c, http.StatusOK, res, "Download url issued successfully")
}

// Download handles GET /api/v1/documents/download?token=...
// The signed token carries the authorization, so this route is public.
func (h *DocumentHandler) Download(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		responses.Fail(c, http.StatusBadRequest, nil, "Missing token")
		return
	}

	doc, content, err := h.documentService.OpenByToken(token)
	if err != nil {
		failFor(c, err, "Invalid or expired download token")
		return
	}
	defer content.Close()

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Header("Content-Length", strconv.FormatInt(doc.SizeBytes, 10))
	c.DataFromReader(http.StatusOK, doc.SizeBytes, doc.ContentType, content, nil)
}

// DeleteDocument handles DELETE /api/v1/documents/:id
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		responses.Fail(c, http.StatusUnauthorized, nil, "Unauthorized")
		return
	}

	id, err := pathID(c, "id")
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Invalid document id")
		return
	}

	if err := h.documentService.Delete(c.Request.Context(), id, userID); err != nil {
		failFor(c, err, "Document not found or access denied")
		return
	}

	responses.Success(c, http.StatusOK, nil, "Document deleted successfully")
}
