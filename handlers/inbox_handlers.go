package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vit0-9/mailr_api/models"
	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/utils/listing"
)

type InboxHandlers struct {
	inbox *services.InboxService
	opts  Options
}

func NewInboxHandlers(inbox *services.InboxService, opts Options) *InboxHandlers {
	return &InboxHandlers{inbox: inbox, opts: opts}
}

// ListMessagesHandler godoc
// @Summary      Unified inbox
// @Description  Messages across every mailbox, newest first.
// @Tags         Inbox
// @Produce      json
// @Param        q query string false "Search sender, subject and snippet"
// @Param        mailbox query string false "Exact mailbox address"
// @Param        unread query bool false "Only unread messages"
// @Param        page query int false "1-based page"
// @Param        page_size query int false "Rows per page"
// @Success      200 {object} models.InboxListResponse
// @Failure      400 {object} models.APIErrorResponse
// @Router       /inbox [get]
func (h *InboxHandlers) ListMessagesHandler(c *gin.Context) {
	var params models.InboxListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err)
		return
	}
	filters := map[string]string{"mailbox": params.Mailbox}
	if params.Unread {
		filters["read"] = strconv.FormatBool(false)
	}
	sort := sortState(params.ListParams)
	rows, err := h.inbox.Visible(queryFilters(params.Query, filters), sort)
	if err != nil {
		respondError(c, err)
		return
	}
	if sort.Key == "" {
		sort = services.DefaultMessageSort
	}
	page := listing.Paginate(rows, params.Page, h.opts.pageSize(params.PageSize))
	c.JSON(http.StatusOK, models.InboxListResponse{
		Items:    page.Items,
		Unread:   h.inbox.UnreadCount(),
		PageMeta: models.NewPageMeta(page, sort),
	})
}

// MarkReadHandler godoc
// @Summary      Mark a message read or unread
// @Tags         Inbox
// @Accept       json
// @Produce      json
// @Param        id path string true "Message ID"
// @Param        request body models.MarkReadRequest false "Defaults to read=true"
// @Success      200 {object} store.Message
// @Failure      404 {object} models.APIErrorResponse
// @Router       /inbox/{id}/read [post]
func (h *InboxHandlers) MarkReadHandler(c *gin.Context) {
	var req models.MarkReadRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	read := true
	if req.Read != nil {
		read = *req.Read
	}
	m, err := h.inbox.MarkRead(c.Param("id"), read)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
