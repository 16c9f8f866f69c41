package handlers

import (
	"net/http"

	"projectmart_backend/internal/services"
	"projectmart_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

const defaultListingKind = "freelance"

// ListingHandler serves the marketplace read side: browse, search, and detail
// lookup by project title.
type ListingHandler struct {
	*BaseHandler
	listings services.ListingQueryService
}

func NewListingHandler(v *validator.Validator, listings services.ListingQueryService) *ListingHandler {
	return &ListingHandler{
		BaseHandler: NewBaseHandler(v),
		listings:    listings,
	}
}

func (h *ListingHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/listings", h.ListAll)
	router.GET("/listings/search", h.Search)
	router.GET("/listings/detail/:title", h.GetByTitle)

	// Routes the old frontend still calls.
	router.GET("/api/freelance/projects", h.ListAll)
	router.GET("/api/freelance/search", h.Search)
	router.GET("/api/viewdetail/:title", h.GetByTitle)
}

type searchQuery struct {
	SearchTerm string `form:"searchTerm" json:"searchTerm" validate:"required"`
	Kind       string `form:"kind" json:"kind"`
}

func (h *ListingHandler) ListAll(c *gin.Context) {
	kind := c.DefaultQuery("kind", defaultListingKind)

	projects, err := h.listings.ListAll(c.Request.Context(), h.GetDB(c), kind)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ListingHandler) Search(c *gin.Context) {
	var query searchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	if query.Kind == "" {
		query.Kind = defaultListingKind
	}

	projects, err := h.listings.Search(c.Request.Context(), h.GetDB(c), query.Kind, query.SearchTerm)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *ListingHandler) GetByTitle(c *gin.Context) {
	kind := c.DefaultQuery("kind", defaultListingKind)

	project, err := h.listings.GetByTitle(c.Request.Context(), h.GetDB(c), kind, c.Param("title"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}
