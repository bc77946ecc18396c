package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query    string `json:"query"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
}

// SearchHandler handles ranked search requests.
// Request Body: SearchRequest. Zero hits are a 200 with an empty hit
// list, never an error.
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateQuery(req.Query); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	results, err := api.engine.Search(c.Request.Context(), req.Query, req.Page, req.PageSize)
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, "Search failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, results)
}

// AutocompleteHandler handles prefix completion requests.
// Query params: prefix (required), limit (optional, default 10).
func (api *API) AutocompleteHandler(c *gin.Context) {
	prefix := c.Query("prefix")
	if result := ValidatePrefix(prefix); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	limit := 10
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 1 {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	suggestions, err := api.engine.Autocomplete(c.Request.Context(), prefix, limit)
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, "Autocomplete failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"prefix":      prefix,
		"suggestions": suggestions,
	})
}
