package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/searchlite/searchlite/internal/errors"
	"github.com/searchlite/searchlite/model"
)

// AddDocumentsHandler indexes a batch of documents.
// Request Body: a JSON array of documents.
func (api *API) AddDocumentsHandler(c *gin.Context) {
	var docs []model.Document
	if err := c.ShouldBindJSON(&docs); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(docs) == 0 {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Request body must contain at least one document")
		return
	}

	validation := &ValidationResult{Valid: true}
	for i, doc := range docs {
		if doc.ID == "" {
			validation.AddError("id", "Document at position "+strconv.Itoa(i)+" is missing an ID")
		}
		if doc.Content == "" {
			validation.AddError("content", "Document at position "+strconv.Itoa(i)+" is missing content")
		}
	}
	if validation.HasErrors() {
		SendValidationError(c, validation)
		return
	}

	if err := api.engine.AddDocuments(docs); err != nil {
		if errors.Is(err, internalErrors.ErrDuplicateDocument) {
			SendError(c, http.StatusConflict, ErrorCodeDocumentExists, err.Error())
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeIndexingFailed, "Indexing failed: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"indexed": len(docs)})
}

// GetDocumentHandler returns a single document by ID.
func (api *API) GetDocumentHandler(c *gin.Context) {
	documentID := c.Param("documentId")
	if result := ValidateDocumentID(documentID); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	doc, err := api.engine.GetDocument(documentID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrDocumentNotFound) {
			SendDocumentNotFoundError(c, documentID)
			return
		}
		SendInternalError(c, "get document", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListDocumentsHandler returns the full corpus.
func (api *API) ListDocumentsHandler(c *gin.Context) {
	docs := api.engine.Documents()
	c.JSON(http.StatusOK, gin.H{
		"total":     len(docs),
		"documents": docs,
	})
}

// RandomDocumentsHandler returns a uniform sample of documents.
// Query params: count (optional, default 5).
func (api *API) RandomDocumentsHandler(c *gin.Context) {
	count := 5
	if rawCount := c.Query("count"); rawCount != "" {
		parsed, err := strconv.Atoi(rawCount)
		if err != nil || parsed < 1 {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "count must be a positive integer")
			return
		}
		count = parsed
	}
	c.JSON(http.StatusOK, gin.H{"documents": api.engine.RandomDocuments(count)})
}

// ScrapeRequest defines the body of a scrape-and-index request.
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ScrapeHandler fetches a URL, indexes the extracted document, and
// returns it.
func (api *API) ScrapeHandler(c *gin.Context) {
	var req ScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}
	if result := ValidateURL(req.URL); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	doc, err := api.engine.ScrapeAndIndex(c.Request.Context(), req.URL)
	if err != nil {
		if errors.Is(err, internalErrors.ErrDuplicateDocument) {
			SendError(c, http.StatusConflict, ErrorCodeDocumentExists, err.Error())
			return
		}
		SendError(c, http.StatusBadGateway, ErrorCodeScrapeFailed, "Scrape failed: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, doc)
}
