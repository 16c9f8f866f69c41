package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"projectmart_backend/internal/forms"
	"projectmart_backend/internal/services"
	"projectmart_backend/internal/validator"
	"projectmart_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// legacySubmitPaths maps the routes the old frontends still post to onto the
// canonical submission kinds.
var legacySubmitPaths = map[string]string{
	"/api/submit-freelance":  "freelance",
	"/api/freelance":         "freelance",
	"/submit-selling-form":   "selling-project",
	"/submit-college-form":   "college",
	"/submit-school-form":    "school",
	"/submit-office-form":    "office",
	"/submit-hospital-form":  "hospital",
	"/submit-form1":          "project",
	"/submit-form2":          "paper-work",
	"/submit-form3":          "hackathon",
	"/submit-form4":          "hardware-modification",
	"/submit-form5":          "software-modification",
	"/submit-form6":          "hardware-base",
	"/submit-contact":        "contact",
	"/submit-form":           "company-project",
}

// SubmissionHandler accepts form submissions for every registered kind, both
// multipart (with attachments) and plain JSON bodies.
type SubmissionHandler struct {
	*BaseHandler
	registry    *forms.Registry
	submissions services.SubmissionService
	maxFormSize int64
}

func NewSubmissionHandler(v *validator.Validator, registry *forms.Registry, submissions services.SubmissionService, maxFormSize int64) *SubmissionHandler {
	return &SubmissionHandler{
		BaseHandler: NewBaseHandler(v),
		registry:    registry,
		submissions: submissions,
		maxFormSize: maxFormSize,
	}
}

func (h *SubmissionHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/submit/:kind", h.SubmitByParam)
	for path, kind := range legacySubmitPaths {
		if _, ok := h.registry.Resolve(kind); !ok {
			panic(fmt.Sprintf("legacy path %s maps to unregistered kind %q", path, kind))
		}
		router.POST(path, h.submitKind(kind))
	}
}

func (h *SubmissionHandler) SubmitByParam(c *gin.Context) {
	h.submit(c, c.Param("kind"))
}

func (h *SubmissionHandler) submitKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.submit(c, kind)
	}
}

func (h *SubmissionHandler) submit(c *gin.Context, kind string) {
	raw, files, err := h.parseBody(c)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return
	}

	result, err := h.submissions.Submit(c.Request.Context(), h.GetDB(c), kind, raw, files)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp := gin.H{
		"success": true,
		"message": "Form submitted successfully",
		"record":  result.Record,
	}
	if result.ID != nil {
		resp["id"] = *result.ID
	}
	c.JSON(http.StatusCreated, resp)
}

// parseBody flattens the request into field values plus attachment headers.
// Multipart requests carry files; JSON bodies carry scalar fields only.
func (h *SubmissionHandler) parseBody(c *gin.Context) (map[string][]string, map[string][]*multipart.FileHeader, error) {
	if h.maxFormSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxFormSize)
	}
	contentType := c.ContentType()

	if strings.HasPrefix(contentType, "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, err
		}
		return form.Value, form.File, nil
	}

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := c.Request.ParseForm(); err != nil {
			return nil, nil, err
		}
		return c.Request.PostForm, nil, nil
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, nil, err
	}
	return flattenJSON(body), nil, nil
}

// flattenJSON stringifies a decoded JSON object into the same shape a form
// body produces. Nulls are dropped; normalization treats absent and null
// fields identically.
func flattenJSON(body map[string]any) map[string][]string {
	raw := make(map[string][]string, len(body))
	for key, val := range body {
		if val == nil {
			continue
		}
		switch v := val.(type) {
		case []any:
			items := make([]string, 0, len(v))
			for _, item := range v {
				if item == nil {
					continue
				}
				items = append(items, jsonScalar(item))
			}
			raw[key] = items
		default:
			raw[key] = []string{jsonScalar(v)}
		}
	}
	return raw
}

func jsonScalar(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}
