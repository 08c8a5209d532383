package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vit0-9/mailr_api/models"
	"github.com/vit0-9/mailr_api/pkg/middleware"
	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/csvimport"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
	"github.com/vit0-9/mailr_api/pkg/utils/spreadsheet"
	"github.com/vit0-9/mailr_api/pkg/views"
)

const exportFileName = "domains"

// DomainHandlers serves the domains table, imports and bulk actions.
type DomainHandlers struct {
	domains  *services.DomainService
	registry *views.Registry
	opts     Options
}

func NewDomainHandlers(domains *services.DomainService, registry *views.Registry, opts Options) *DomainHandlers {
	return &DomainHandlers{domains: domains, registry: registry, opts: opts}
}

// sessionView returns the caller's table session when the request names one.
func (h *DomainHandlers) sessionView(c *gin.Context) (*views.Session, bool) {
	if h.registry == nil || c.GetHeader(h.opts.SessionHeader) == "" {
		return nil, false
	}
	return h.opts.session(c, h.registry), true
}

func (h *DomainHandlers) visible(c *gin.Context) ([]store.Domain, models.DomainListParams, bool) {
	var params models.DomainListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return nil, params, false
	}
	q := queryFilters(params.Query, map[string]string{"status": params.Status, "provider": params.Provider})
	rows, err := h.domains.Visible(q, sortState(params.ListParams))
	if err != nil {
		respondError(c, err)
		return nil, params, false
	}
	return rows, params, true
}

// exportRows is the rows shown in the caller's domains view, or those
// selected by the query parameters when no session is named.
func (h *DomainHandlers) exportRows(c *gin.Context) ([]store.Domain, bool) {
	if s, ok := h.sessionView(c); ok {
		return s.VisibleDomains(h.domains.List()), true
	}
	rows, _, ok := h.visible(c)
	return rows, ok
}

// ListDomainsHandler godoc
// @Summary      List domains
// @Description  Filters, sorts and paginates the domains table. Search matches domain and forwarding URL case-insensitively.
// @Tags         Domains
// @Produce      json
// @Param        q query string false "Free-text search"
// @Param        status query string false "Exact status, e.g. Active"
// @Param        provider query string false "Google or Microsoft"
// @Param        sort query string false "domain, forwarding_url, provider, status, inboxes or created_at"
// @Param        dir query string false "asc or desc"
// @Param        page query int false "1-based page"
// @Param        page_size query int false "Rows per page"
// @Success      200 {object} models.DomainListResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /domains [get]
func (h *DomainHandlers) ListDomainsHandler(c *gin.Context) {
	rows, params, ok := h.visible(c)
	if !ok {
		return
	}
	page := listing.Paginate(rows, params.Page, h.opts.pageSize(params.PageSize))
	c.JSON(http.StatusOK, models.DomainListResponse{
		Items:    models.NewDomainResponses(page.Items),
		PageMeta: models.NewPageMeta(page, sortState(params.ListParams)),
	})
}

// GetDomainHandler godoc
// @Summary      Get a domain
// @Tags         Domains
// @Produce      json
// @Param        id path string true "Domain ID"
// @Success      200 {object} models.DomainResponse
// @Failure      404 {object} models.APIErrorResponse
// @Router       /domains/{id} [get]
func (h *DomainHandlers) GetDomainHandler(c *gin.Context) {
	d, err := h.domains.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewDomainResponse(d))
}

// readUpload returns the CSV text from a multipart "file" field or a JSON
// body, and the header mode to parse it with.
func (h *DomainHandlers) readUpload(c *gin.Context) (string, csvimport.HeaderMode, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		mode, err := csvimport.ParseHeaderMode(c.PostForm("mode"))
		if err != nil {
			return "", mode, err
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return "", mode, err
		}
		if fh.Size > h.opts.MaxUploadSize {
			return "", mode, csvimport.ErrTooLarge
		}
		f, err := fh.Open()
		if err != nil {
			return "", mode, err
		}
		defer f.Close()
		text, err := csvimport.ReadAll(f, h.opts.MaxUploadSize)
		return text, mode, err
	}

	var req models.ImportPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", csvimport.HeaderDomain, err
	}
	if int64(len(req.Content)) > h.opts.MaxUploadSize {
		return "", csvimport.HeaderDomain, csvimport.ErrTooLarge
	}
	mode, err := csvimport.ParseHeaderMode(req.Mode)
	return req.Content, mode, err
}

// PreviewImportHandler godoc
// @Summary      Preview a CSV domain import
// @Description  Parses an uploaded CSV (multipart field "file", or JSON {"content"}) into validated candidate rows without changing anything. The first line is skipped when it looks like a header.
// @Tags         Domains
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        file formData file false "CSV file"
// @Param        mode formData string false "Header detection: domain or domain-list"
// @Param        request body models.ImportPreviewRequest false "Raw CSV text"
// @Success      200 {object} models.ImportPreviewResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /domains/import/preview [post]
func (h *DomainHandlers) PreviewImportHandler(c *gin.Context) {
	text, mode, err := h.readUpload(c)
	if err != nil {
		if errors.Is(err, csvimport.ErrTooLarge) {
			respondError(c, err)
			return
		}
		badRequest(c, err)
		return
	}
	p := h.domains.Preview(text, mode)
	c.JSON(http.StatusOK, models.ImportPreviewResponse{
		Rows:           p.Rows,
		Summary:        p.Summary,
		AvailableSlots: p.AvailableSlots,
		WithinLimit:    p.WithinLimit,
	})
}

// ImportDomainsHandler godoc
// @Summary      Import domains
// @Description  Adds the valid rows as Pending domains. Rejected with 409 when the valid rows exceed the available domain slots, and with 400 when no row is valid.
// @Tags         Domains
// @Accept       json
// @Produce      json
// @Param        request body models.ImportDomainsRequest true "Confirmed rows"
// @Success      201 {object} models.ImportDomainsResponse
// @Failure      400 {object} models.APIErrorResponse
// @Failure      409 {object} models.SlotLimitResponse
// @Router       /domains/import [post]
func (h *DomainHandlers) ImportDomainsHandler(c *gin.Context) {
	var req models.ImportDomainsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	provider := store.ProviderGoogle
	if req.Provider != "" {
		provider, _ = store.ParseProvider(req.Provider)
	}
	res, err := h.domains.Import(services.ImportRequest{
		Rows:         req.CSVRows(),
		Provider:     provider,
		DisplayNames: req.DisplayNames,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	skipped := res.Skipped
	if skipped == nil {
		skipped = []csvimport.Row{}
	}
	c.JSON(http.StatusCreated, models.ImportDomainsResponse{
		Imported: models.NewDomainResponses(res.Imported),
		Skipped:  skipped,
		Summary:  res.Summary,
	})
}

// SwapDomainHandler godoc
// @Summary      Swap a domain
// @Description  Replaces the domain name (and optionally its forwarding URL). The domain goes back to Pending.
// @Tags         Domains
// @Accept       json
// @Produce      json
// @Param        id path string true "Domain ID"
// @Param        request body models.SwapDomainRequest true "Replacement"
// @Success      200 {object} models.SwapDomainResponse
// @Failure      400 {object} models.APIErrorResponse
// @Failure      404 {object} models.APIErrorResponse
// @Failure      409 {object} models.APIErrorResponse
// @Router       /domains/{id}/swap [post]
func (h *DomainHandlers) SwapDomainHandler(c *gin.Context) {
	var req models.SwapDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	before, after, err := h.domains.Swap(c.Param("id"), req.NewDomain, req.ForwardingURL.String())
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.Logger(c).WithFields(logrus.Fields{"from": before.Domain, "to": after.Domain}).Info("domain swapped")
	c.JSON(http.StatusOK, models.SwapDomainResponse{
		Before: models.NewDomainResponse(before),
		After:  models.NewDomainResponse(after),
	})
}

// UpdateForwardingHandler godoc
// @Summary      Bulk update forwarding URLs
// @Description  Sets the forwarding URL on the listed domains, or on the selected domains when no IDs are given. Nothing changes when any ID is unknown.
// @Tags         Domains
// @Accept       json
// @Produce      json
// @Param        request body models.UpdateForwardingRequest true "Target domains and URL"
// @Success      200 {object} models.UpdateForwardingResponse
// @Failure      400 {object} models.APIErrorResponse
// @Failure      404 {object} models.APIErrorResponse
// @Router       /domains/forwarding [post]
func (h *DomainHandlers) UpdateForwardingHandler(c *gin.Context) {
	var req models.UpdateForwardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := h.domains.UpdateForwarding(req.IDs, req.ForwardingURL.String())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UpdateForwardingResponse{Updated: models.NewDomainResponses(updated)})
}

// SelectDomainsHandler godoc
// @Summary      Select domains
// @Tags         Domains
// @Accept       json
// @Produce      json
// @Param        request body models.SelectDomainsRequest true "IDs and flag"
// @Success      200 {object} models.SelectionResponse
// @Failure      400 {object} models.APIErrorResponse
// @Failure      404 {object} models.APIErrorResponse
// @Router       /domains/select [post]
func (h *DomainHandlers) SelectDomainsHandler(c *gin.Context) {
	var req models.SelectDomainsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	n, err := h.domains.Select(req.IDs, req.Selected)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.SelectionResponse{IDs: req.IDs, Count: n, Selected: req.Selected})
}

// SelectAllDomainsHandler godoc
// @Summary      Select all filtered domains
// @Description  Sets the selected flag on every domain matching the filters; rows outside the filter keep their flag. With X-Session-ID the session's domains view supplies the search and filters.
// @Tags         Domains
// @Accept       json
// @Produce      json
// @Param        X-Session-ID header string false "Dashboard session"
// @Param        request body models.SelectAllRequest true "Filters and flag"
// @Success      200 {object} models.SelectionResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /domains/select-all [post]
func (h *DomainHandlers) SelectAllDomainsHandler(c *gin.Context) {
	var req models.SelectAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	q := queryFilters(req.Query, map[string]string{"status": req.Status, "provider": req.Provider})
	if s, ok := h.sessionView(c); ok {
		q = s.DomainQuery()
	}
	ids, err := h.domains.SelectAll(q, req.Selected)
	if err != nil {
		respondError(c, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, models.SelectionResponse{IDs: ids, Count: len(ids), Selected: req.Selected})
}

// ExportCSVHandler godoc
// @Summary      Export domains as CSV
// @Description  One line per filtered row under the header "Domain,Forwarding URL,Status,Provider". Values are not quoted. With X-Session-ID the rows of the session's domains view are exported and the query parameters are ignored.
// @Tags         Domains
// @Produce      text/csv
// @Param        q query string false "Free-text search"
// @Param        status query string false "Exact status"
// @Param        provider query string false "Google or Microsoft"
// @Param        sort query string false "Sort column"
// @Param        dir query string false "asc or desc"
// @Success      200 {string} string "CSV document"
// @Failure      400 {object} models.APIErrorResponse
// @Param        X-Session-ID header string false "Dashboard session"
// @Router       /domains/export.csv [get]
func (h *DomainHandlers) ExportCSVHandler(c *gin.Context) {
	rows, ok := h.exportRows(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csvimport.Export(services.ExportRows(rows))))
}

// ExportXLSXHandler godoc
// @Summary      Export domains as XLSX
// @Tags         Domains
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        q query string false "Free-text search"
// @Param        status query string false "Exact status"
// @Param        provider query string false "Google or Microsoft"
// @Param        sort query string false "Sort column"
// @Param        dir query string false "asc or desc"
// @Success      200 {file} file "Workbook"
// @Failure      400 {object} models.APIErrorResponse
// @Param        X-Session-ID header string false "Dashboard session"
// @Router       /domains/export.xlsx [get]
func (h *DomainHandlers) ExportXLSXHandler(c *gin.Context) {
	rows, ok := h.exportRows(c)
	if !ok {
		return
	}
	data, err := spreadsheet.Export(services.ExportRows(rows))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+exportFileName+`.xlsx"`)
	c.Data(http.StatusOK, spreadsheet.ContentType, data)
}

// GetNameserversHandler godoc
// @Summary      Nameserver update instructions
// @Tags         Domains
// @Produce      json
// @Param        id path string true "Domain ID"
// @Success      200 {object} models.NameserversResponse
// @Failure      404 {object} models.APIErrorResponse
// @Router       /domains/{id}/nameservers [get]
func (h *DomainHandlers) GetNameserversHandler(c *gin.Context) {
	ns, err := h.domains.Nameservers(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NameserversResponse{
		Domain:      models.NewDomainResponse(ns.Domain),
		Nameservers: ns.Nameservers,
		Required:    ns.Required,
	})
}

// ConfirmNameserversHandler godoc
// @Summary      Confirm a nameserver update
// @Description  Marks a domain waiting on "Update Nameservers" as Pending.
// @Tags         Domains
// @Produce      json
// @Param        id path string true "Domain ID"
// @Success      200 {object} models.DomainResponse
// @Failure      404 {object} models.APIErrorResponse
// @Failure      409 {object} models.APIErrorResponse
// @Router       /domains/{id}/nameservers [post]
func (h *DomainHandlers) ConfirmNameserversHandler(c *gin.Context) {
	d, err := h.domains.ConfirmNameservers(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.NewDomainResponse(d))
}

// DeleteDomainHandler godoc
// @Summary      Delete a domain
// @Tags         Domains
// @Param        id path string true "Domain ID"
// @Success      204
// @Failure      404 {object} models.APIErrorResponse
// @Router       /domains/{id} [delete]
func (h *DomainHandlers) DeleteDomainHandler(c *gin.Context) {
	if err := h.domains.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
