package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/mailr_api/models"
	"github.com/vit0-9/mailr_api/pkg/middleware"
	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/csvimport"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
	"github.com/vit0-9/mailr_api/pkg/utils/pricing"
	"github.com/vit0-9/mailr_api/pkg/utils/validate"
	"github.com/vit0-9/mailr_api/pkg/views"
)

// Options are the request limits shared by the handlers.
type Options struct {
	PageSize      int
	MaxPageSize   int
	MaxUploadSize int64
	SessionHeader string
}

func (o Options) pageSize(requested int) int {
	if requested <= 0 {
		return o.PageSize
	}
	return min(requested, o.MaxPageSize)
}

func (o Options) session(c *gin.Context, registry *views.Registry) *views.Session {
	return registry.Session(c.GetHeader(o.SessionHeader))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
}

// respondError maps service errors to status codes. Unknown errors are 500.
func respondError(c *gin.Context, err error) {
	var (
		ve    *validate.ValidationError
		limit *store.SlotLimitError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, models.FieldErrorResponse{
			APIErrorResponse: apiError(http.StatusBadRequest, models.ErrorCodeValidation, ve.Reason, err),
			Field:            ve.Field,
			Value:            ve.Value,
		})
	case errors.As(err, &limit):
		c.JSON(http.StatusConflict, models.SlotLimitResponse{
			APIErrorResponse: apiError(http.StatusConflict, models.ErrorCodeSlotLimit, "Not enough domain slots available", err),
			Requested:        limit.Requested,
			Available:        limit.Available,
		})
	case errors.Is(err, store.ErrDomainNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrSubscriptionNotFound),
		errors.Is(err, store.ErrMessageNotFound):
		c.JSON(http.StatusNotFound, apiError(http.StatusNotFound, models.ErrorCodeNotFound, capitalize(err.Error()), nil))
	case errors.Is(err, store.ErrDuplicateDomain):
		c.JSON(http.StatusConflict, apiError(http.StatusConflict, models.ErrorCodeDuplicate, "Domain already exists", err))
	case errors.Is(err, store.ErrInvalidTransition):
		c.JSON(http.StatusConflict, apiError(http.StatusConflict, models.ErrorCodeConflict, "Status change not allowed", err))
	case errors.Is(err, services.ErrNoValidDomains):
		c.JSON(http.StatusBadRequest, apiError(http.StatusBadRequest, models.ErrorCodeNoDomains, "No valid domains to import", nil))
	case errors.Is(err, services.ErrNoDomainsSelected),
		errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrUnknownProvider),
		errors.Is(err, views.ErrUnknownTable),
		errors.Is(err, listing.ErrUnknownColumn),
		errors.Is(err, csvimport.ErrTooLarge),
		errors.Is(err, pricing.ErrTooManyUnits):
		c.JSON(http.StatusBadRequest, apiError(http.StatusBadRequest, models.ErrorCodeBadRequest, capitalize(err.Error()), nil))
	default:
		middleware.Logger(c).WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, apiError(http.StatusInternalServerError, models.ErrorCodeInternal, "Internal server error", nil))
	}
}

func apiError(status int, code, message string, details error) models.APIErrorResponse {
	resp := models.APIErrorResponse{StatusCode: status, ErrorCode: code, Message: message}
	if details != nil {
		resp.Details = details.Error()
	}
	return resp
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// queryFilters builds a listing.Query from the named dropdown filters.
func queryFilters(search string, filters map[string]string) listing.Query {
	q := listing.Query{Search: search, Filters: map[string]string{}}
	for k, v := range filters {
		if v != "" {
			q.Filters[k] = v
		}
	}
	return q
}

func sortState(p models.ListParams) listing.SortState {
	if p.Sort == "" {
		return listing.SortState{}
	}
	return listing.SortState{Key: p.Sort, Dir: listing.ParseDirection(p.Dir)}
}
