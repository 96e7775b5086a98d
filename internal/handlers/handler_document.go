package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/docflow_backend/internal/core/ports/services"
	"github.com/SscSPs/docflow_backend/internal/dto"
	"github.com/SscSPs/docflow_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests related to documents.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// RegisterDocumentRoutes registers routes related to documents.
func RegisterDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("", h.listDocuments)
		documents.GET("/:id", h.getDocument)
		documents.PATCH("/:id", h.updateDocument)
		documents.DELETE("/:id", h.deleteDocument)
		documents.POST("/:id/transitions", h.transitionDocument)
		documents.GET("/:id/actions", h.allowedActions)
	}
}

// createDocument godoc
// @Summary Create a document
// @Description Creates a document of the given type in its workflow's initial status and assigns the next document number.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.CreateDocumentRequest true "Document type, payload and line items"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]interface{} "Invalid input, with per-field messages"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Document number collision"
// @Failure 500 {object} map[string]string "Failed to create document"
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	doc, err := h.documentService.CreateDocument(c.Request.Context(), req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to create document")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary Query documents
// @Description Filters documents with AND-combined predicates, sorts them stably and returns one page.
// @Description Filters use bracketed keys: q[field] (contains), eq[field] (equals), from[field] and to[field] (inclusive date range).
// @Tags documents
// @Produce  json
// @Param   type query string false "Document type" Enums(PAYMENT_VOUCHER, REIMBURSEMENT, TANDA_TERIMA, PURCHASE_REQUEST, STOCK_OPNAME, REQUEST_FOR_INSPECTION)
// @Param   sort query string false "Field to sort by"
// @Param   order query string false "Sort direction" Enums(asc, desc)
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to query documents"
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListDocuments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	params.Contains = c.QueryMap("q")
	params.Equals = c.QueryMap("eq")
	params.From = c.QueryMap("from")
	params.To = c.QueryMap("to")

	res, err := h.documentService.QueryDocuments(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to query documents")
		return
	}

	logger.Debug("Documents listed", slog.Int("count", len(res.Documents)))
	c.JSON(http.StatusOK, res)
}

// getDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document_id", c.Param("id")))

	doc, err := h.documentService.GetDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// updateDocument godoc
// @Summary Update a document
// @Description Merges payload fields (JSON merge patch) and optionally replaces the line items of a non-terminal document.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   document body dto.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]interface{} "Invalid input, with per-field messages"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document is in a terminal status"
// @Failure 500 {object} map[string]string "Failed to update document"
// @Security BearerAuth
// @Router /documents/{id} [patch]
func (h *documentHandler) updateDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document_id", c.Param("id")))
	var req dto.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	doc, err := h.documentService.UpdateDocument(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to update document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// deleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Param   id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to delete document"
// @Security BearerAuth
// @Router /documents/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document_id", c.Param("id")))

	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.documentService.DeleteDocument(c.Request.Context(), c.Param("id"), actor); err != nil {
		respondError(c, logger, err, "Failed to delete document")
		return
	}

	c.Status(http.StatusNoContent)
}

// transitionDocument godoc
// @Summary Perform a workflow action
// @Description Moves the document along its workflow. Some actions need supplementary fields, e.g. paying a voucher needs metodeBayar, detailBayar and tanggalBayar.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   id path string true "Document ID"
// @Param   transition body dto.TransitionRequest true "Action, note and supplementary fields"
// @Success 200 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]interface{} "Missing or invalid supplementary fields"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Action not allowed from the current status"
// @Failure 500 {object} map[string]string "Failed to transition document"
// @Security BearerAuth
// @Router /documents/{id}/transitions [post]
func (h *documentHandler) transitionDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("document_id", c.Param("id")))
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransitionDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	doc, err := h.documentService.TransitionDocument(c.Request.Context(), c.Param("id"), req, actor)
	if err != nil {
		respondError(c, logger, err, "Failed to transition document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// allowedActions godoc
// @Summary List allowed actions
// @Description Lists the workflow actions legal from the document's current status.
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.AllowedActionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to list actions"
// @Security BearerAuth
// @Router /documents/{id}/actions [get]
func (h *documentHandler) allowedActions(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(ctx).With(slog.String("document_id", id))

	doc, err := h.documentService.GetDocument(ctx, id)
	if err != nil {
		respondError(c, logger, err, "Failed to list actions")
		return
	}
	actions, err := h.documentService.AllowedActions(ctx, id)
	if err != nil {
		respondError(c, logger, err, "Failed to list actions")
		return
	}

	c.JSON(http.StatusOK, dto.AllowedActionsResponse{DocumentID: doc.DocumentID, Status: doc.Status, Actions: actions})
}
