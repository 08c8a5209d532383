package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vit0-9/mailr_api/models"
	"github.com/vit0-9/mailr_api/pkg/middleware"
	"github.com/vit0-9/mailr_api/pkg/services"
	"github.com/vit0-9/mailr_api/pkg/store"
	"github.com/vit0-9/mailr_api/pkg/utils/validate"
	"github.com/vit0-9/mailr_api/pkg/views"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validate.RegisterGinValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testServer struct {
	router *gin.Engine
	stores *store.Stores
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	stores := store.NewSeeded(nil)
	opts := Options{PageSize: 10, MaxPageSize: 50, MaxUploadSize: 1 << 10, SessionHeader: "X-Session-ID"}

	registry := views.NewRegistry(opts.PageSize)
	dh := NewDomainHandlers(services.NewDomainService(stores.Domains, stores.Subscriptions, log), registry, opts)
	oh := NewOrderHandlers(services.NewOrderService(stores.Orders, log), opts)
	sh := NewSubscriptionHandlers(services.NewSubscriptionService(stores.Subscriptions, log), opts)
	ih := NewInboxHandlers(services.NewInboxService(stores.Messages), opts)
	dash := NewDashboardHandlers(services.NewDashboardService(stores), stores)
	vh := NewViewHandlers(registry, stores, opts)
	ph := NewPricingHandlers()

	r := gin.New()
	r.Use(middleware.RequestLogger(log, "X-Request-ID"))
	v1 := r.Group("/api/v1")
	v1.GET("/health", NewHealthHandler().HealthCheckHandler)
	v1.GET("/dashboard", dash.DashboardHandler)
	v1.GET("/search", dash.SearchHandler)

	v1.GET("/domains", dh.ListDomainsHandler)
	v1.GET("/domains/export.csv", dh.ExportCSVHandler)
	v1.GET("/domains/export.xlsx", dh.ExportXLSXHandler)
	v1.POST("/domains/import/preview", dh.PreviewImportHandler)
	v1.POST("/domains/import", dh.ImportDomainsHandler)
	v1.POST("/domains/forwarding", dh.UpdateForwardingHandler)
	v1.POST("/domains/select", dh.SelectDomainsHandler)
	v1.POST("/domains/select-all", dh.SelectAllDomainsHandler)
	v1.GET("/domains/:id", dh.GetDomainHandler)
	v1.DELETE("/domains/:id", dh.DeleteDomainHandler)
	v1.POST("/domains/:id/swap", dh.SwapDomainHandler)
	v1.GET("/domains/:id/nameservers", dh.GetNameserversHandler)
	v1.POST("/domains/:id/nameservers", dh.ConfirmNameserversHandler)

	v1.GET("/orders", oh.ListOrdersHandler)
	v1.POST("/orders/inboxes", oh.PlaceInboxOrderHandler)
	v1.POST("/orders/domains", oh.PlaceDomainOrderHandler)
	v1.GET("/orders/:id", oh.GetOrderHandler)
	v1.GET("/orders/:id/inboxes", oh.OrderInboxesHandler)
	v1.POST("/orders/:id/cancel", oh.CancelOrderHandler)

	v1.GET("/pricing/quote", ph.QuoteHandler)
	v1.GET("/pricing/tables", ph.TablesHandler)

	v1.GET("/subscriptions", sh.ListSubscriptionsHandler)
	v1.GET("/subscriptions/:id", sh.GetSubscriptionHandler)
	v1.POST("/subscriptions/:id/cancel", sh.CancelSubscriptionHandler)
	v1.POST("/subscriptions/:id/slots", sh.AddSlotsHandler)

	v1.GET("/inbox", ih.ListMessagesHandler)
	v1.POST("/inbox/:id/read", ih.MarkReadHandler)

	v1.GET("/views/:table", vh.GetViewHandler)
	v1.POST("/views/:table/sort", vh.SortViewHandler)
	v1.POST("/views/:table/page", vh.PageViewHandler)
	v1.POST("/views/:table/filter", vh.FilterViewHandler)

	return &testServer{router: r, stores: stores}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	require.Equal(t, "UP", body["status"])
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestListDomains(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/domains", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.DomainListResponse](t, w)
	require.Equal(t, 12, list.Total)
	require.Equal(t, 2, list.TotalPages)
	require.Len(t, list.Items, 10)
	require.Equal(t, "growthleads.com", list.Items[0].Domain)

	w = s.do(t, http.MethodGet, "/domains?provider=Microsoft&sort=domain&dir=desc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = decode[models.DomainListResponse](t, w)
	require.Equal(t, 5, list.Total)
	require.Equal(t, "tryacme.io", list.Items[0].Domain)

	w = s.do(t, http.MethodGet, "/domains?q=ACME.COM/DEMO", nil)
	list = decode[models.DomainListResponse](t, w)
	require.Equal(t, 1, list.Total)
	require.Equal(t, "dom-1003", list.Items[0].ID)

	w = s.do(t, http.MethodGet, "/domains?page=9&page_size=5", nil)
	list = decode[models.DomainListResponse](t, w)
	require.Equal(t, 3, list.Page)

	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/domains?sort=colour", nil).Code)
	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/domains?dir=sideways", nil).Code)
}

func TestGetAndDeleteDomain(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/domains/dom-1001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := decode[models.DomainResponse](t, w)
	require.Equal(t, 3, d.Inboxes)

	w = s.do(t, http.MethodGet, "/domains/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, models.ErrorCodeNotFound, decode[models.APIErrorResponse](t, w).ErrorCode)

	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/domains/dom-1001", nil).Code)
	require.Equal(t, http.StatusNotFound, s.do(t, http.MethodDelete, "/domains/dom-1001", nil).Code)
}

func TestPreviewImport_JSON(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/domains/import/preview", models.ImportPreviewRequest{
		Content: "domain,url\nfresh.com,https://fresh.com\nbad domain,http://x.com\n",
	})
	require.Equal(t, http.StatusOK, w.Code)
	p := decode[models.ImportPreviewResponse](t, w)
	require.Len(t, p.Rows, 2)
	require.Equal(t, 1, p.Summary.Valid)
	require.Equal(t, 12, p.AvailableSlots)
	require.True(t, p.WithinLimit)
	require.Len(t, p.Rows[1].Errors, 2)

	w = s.do(t, http.MethodPost, "/domains/import/preview", models.ImportPreviewRequest{Content: strings.Repeat("a", 2<<10)})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreviewImport_Multipart(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("mode", "domain-list"))
	fw, err := mw.CreateFormFile("file", "domains.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("forwarding url\none.com,https://one.com\ntwo.com,https://two.com"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/domains/import/preview", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p := decode[models.ImportPreviewResponse](t, w)
	require.Len(t, p.Rows, 2)
	require.Equal(t, 2, p.Summary.Valid)
}

func TestImportDomains(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/domains/import", models.ImportDomainsRequest{
		Rows: []models.ImportRowRequest{
			{Line: 2, Domain: "fresh.com", URL: "https://fresh.com"},
			{Line: 3, Domain: "nope", URL: "https://x.com"},
		},
		Provider: "microsoft",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[models.ImportDomainsResponse](t, w)
	require.Len(t, res.Imported, 1)
	require.Equal(t, "Pending", res.Imported[0].Status)
	require.Equal(t, "Microsoft", res.Imported[0].Provider)
	require.Len(t, res.Skipped, 1)
	require.Equal(t, 11, s.stores.Subscriptions.AvailableSlots())

	w = s.do(t, http.MethodPost, "/domains/import", models.ImportDomainsRequest{
		Rows: []models.ImportRowRequest{{Domain: "nope", URL: "https://x.com"}},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, models.ErrorCodeNoDomains, decode[models.APIErrorResponse](t, w).ErrorCode)

	rows := make([]models.ImportRowRequest, 12)
	for i := range rows {
		rows[i] = models.ImportRowRequest{Domain: fmt.Sprintf("bulk%d.com", i), URL: "https://bulk.com"}
	}
	w = s.do(t, http.MethodPost, "/domains/import", models.ImportDomainsRequest{Rows: rows})
	require.Equal(t, http.StatusConflict, w.Code)
	limit := decode[models.SlotLimitResponse](t, w)
	require.Equal(t, 12, limit.Requested)
	require.Equal(t, 11, limit.Available)
	require.Len(t, s.stores.Domains.List(), 13)

	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/domains/import", map[string]any{"rows": []any{}}).Code)
	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/domains/import", map[string]any{
		"rows": []any{map[string]string{"domain": "a.com", "url": "https://a.com"}}, "provider": "yahoo",
	}).Code)
}

func TestSwapDomain(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/domains/dom-1001/swap", models.SwapDomainRequest{NewDomain: "newdomain.com"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[models.SwapDomainResponse](t, w)
	require.Equal(t, "growthleads.com", res.Before.Domain)
	require.Equal(t, "newdomain.com", res.After.Domain)
	require.Equal(t, "Pending", res.After.Status)

	w = s.do(t, http.MethodPost, "/domains/dom-1002/swap", models.SwapDomainRequest{NewDomain: "not a domain"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/domains/dom-1002/swap", models.SwapDomainRequest{NewDomain: "ok.com", ForwardingURL: "http://insecure.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/domains/dom-1002/swap", models.SwapDomainRequest{NewDomain: "TRYACME.IO"})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, models.ErrorCodeDuplicate, decode[models.APIErrorResponse](t, w).ErrorCode)

	w = s.do(t, http.MethodPost, "/domains/missing/swap", models.SwapDomainRequest{NewDomain: "ok.com"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSelectionAndForwarding(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/domains/forwarding", models.UpdateForwardingRequest{ForwardingURL: "https://acme.com/new"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/domains/select-all", models.SelectAllRequest{Provider: "Microsoft", Selected: true})
	require.Equal(t, http.StatusOK, w.Code)
	sel := decode[models.SelectionResponse](t, w)
	require.Equal(t, 5, sel.Count)

	w = s.do(t, http.MethodPost, "/domains/select", models.SelectDomainsRequest{IDs: []string{"dom-1003"}, Selected: false})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPost, "/domains/forwarding", models.UpdateForwardingRequest{ForwardingURL: "https://acme.com/new"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode[models.UpdateForwardingResponse](t, w)
	require.Len(t, updated.Updated, 4)
	for _, d := range updated.Updated {
		require.Equal(t, models.SafeURLString("https://acme.com/new"), d.ForwardingURL)
	}

	w = s.do(t, http.MethodPost, "/domains/forwarding", models.UpdateForwardingRequest{IDs: []string{"dom-1001"}, ForwardingURL: "ftp://acme.com"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/domains/select", models.SelectDomainsRequest{IDs: []string{"missing"}, Selected: true})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestExports(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/domains/export.csv?provider=Microsoft&sort=domain", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, w.Header().Get("Content-Disposition"), "domains")
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, "Domain,Forwarding URL,Status,Provider", lines[0])
	require.Equal(t, "acmemail.io,https://acme.com,Pending,Microsoft", lines[1])

	w = s.do(t, http.MethodGet, "/domains/export.xlsx?provider=Microsoft&sort=domain", nil)
	require.Equal(t, http.StatusOK, w.Code)
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Domains")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	require.Equal(t, "acmemail.io", rows[1][0])
}

func TestSessionViewDrivesExportAndSelectAll(t *testing.T) {
	s := newTestServer(t)
	session := []string{"X-Session-ID", "tab-7"}

	w := s.do(t, http.MethodPost, "/views/domains/filter", models.ViewFilterRequest{Filters: map[string]string{"provider": "Microsoft"}}, session...)
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodPost, "/views/domains/sort", models.ViewSortRequest{Key: "domain", Dir: "asc"}, session...)
	require.Equal(t, http.StatusOK, w.Code)

	// The session's filter wins over query parameters.
	w = s.do(t, http.MethodGet, "/domains/export.csv?provider=Google", nil, session...)
	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 6)
	require.Equal(t, "acmemail.io,https://acme.com,Pending,Microsoft", lines[1])

	w = s.do(t, http.MethodGet, "/domains/export.xlsx", nil, session...)
	require.Equal(t, http.StatusOK, w.Code)
	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Domains")
	require.NoError(t, err)
	require.Len(t, rows, 6)

	w = s.do(t, http.MethodPost, "/domains/select-all", models.SelectAllRequest{Selected: true}, session...)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 5, decode[models.SelectionResponse](t, w).Count)
	for _, d := range s.stores.Domains.List() {
		require.Equal(t, d.Provider == store.ProviderMicrosoft, d.Selected, d.Domain)
	}

	w = s.do(t, http.MethodPost, "/domains/select-all", models.SelectAllRequest{Selected: true})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 12, decode[models.SelectionResponse](t, w).Count)
}

func TestNameservers(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/domains/dom-1004/nameservers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	ns := decode[models.NameserversResponse](t, w)
	require.True(t, ns.Required)
	require.Equal(t, []string{"ns1.mailr.io", "ns2.mailr.io"}, ns.Nameservers)

	w = s.do(t, http.MethodPost, "/domains/dom-1004/nameservers", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Pending", decode[models.DomainResponse](t, w).Status)

	w = s.do(t, http.MethodPost, "/domains/dom-1004/nameservers", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestOrders(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.OrderListResponse](t, w)
	require.Equal(t, 5, list.Total)
	require.Equal(t, "ORD-1004", list.Items[0].ID)

	w = s.do(t, http.MethodGet, "/orders?status=processing", nil)
	require.Equal(t, 2, decode[models.OrderListResponse](t, w).Total)

	lines := make([]models.OrderLineRequest, 10)
	for i := range lines {
		lines[i] = models.OrderLineRequest{
			Domain:        fmt.Sprintf("order%d.com", i),
			ForwardingURL: "https://acme.com",
			DisplayNames:  []string{"Sarah Miller", "James Carter", "Emily Chen"},
		}
	}
	w = s.do(t, http.MethodPost, "/orders/inboxes", models.InboxOrderRequest{Provider: "Google", InboxesPerDomain: 3, Domains: lines})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	placed := decode[models.PlaceOrderResponse](t, w)
	require.Equal(t, "$90.00", placed.Quote.Formatted)
	require.Equal(t, "processing", placed.Order.Status)

	w = s.do(t, http.MethodGet, "/orders/"+placed.Order.ID+"/inboxes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode[models.OrderInboxesResponse](t, w).Inboxes, 30)

	w = s.do(t, http.MethodPost, "/orders/domains", models.DomainOrderRequest{InboxesPerDomain: 3, Domains: lines})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "$75.00", decode[models.PlaceOrderResponse](t, w).Quote.Formatted)

	w = s.do(t, http.MethodPost, "/orders/inboxes", models.InboxOrderRequest{Provider: "Yahoo", InboxesPerDomain: 3, Domains: lines})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/orders/"+placed.Order.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "cancelled", decode[models.OrderResponse](t, w).Status)
	require.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, "/orders/"+placed.Order.ID+"/cancel", nil).Code)
	require.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/orders/ORD-9999", nil).Code)
}

func TestPricing(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/pricing/quote?plan=domain-inboxes&domains=10&inboxes=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	q := decode[models.QuoteResponse](t, w)
	require.Equal(t, 30, q.Units)
	require.Equal(t, "2.50", q.UnitPrice)
	require.Equal(t, "75.00", q.Total)

	w = s.do(t, http.MethodGet, "/pricing/quote?plan=microsoft-inboxes&domains=100&inboxes=3", nil)
	q = decode[models.QuoteResponse](t, w)
	require.Equal(t, 100, q.Units)
	require.Equal(t, "$2,500.00", q.Formatted)

	w = s.do(t, http.MethodGet, "/pricing/quote?plan=domain-slots&units=0", nil)
	require.Equal(t, "0.00", decode[models.QuoteResponse](t, w).Total)

	for _, query := range []string{
		"plan=domain-inboxes&domains=4611686018427387904&inboxes=4",
		"plan=domain-inboxes&units=9223372036854775807",
		"plan=domain-inboxes&units=1000001",
		"plan=domain-inboxes&domains=1000000&inboxes=2",
	} {
		w = s.do(t, http.MethodGet, "/pricing/quote?"+query, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, query)
	}
	w = s.do(t, http.MethodGet, "/pricing/quote?plan=domain-inboxes&units=1000000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "$2,000,000.00", decode[models.QuoteResponse](t, w).Formatted)

	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/pricing/quote?plan=gold", nil).Code)
	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/pricing/quote", nil).Code)

	w = s.do(t, http.MethodGet, "/pricing/tables", nil)
	require.Equal(t, http.StatusOK, w.Code)
	tables := decode[[]models.PricingTableResponse](t, w)
	require.Len(t, tables, 4)
	require.Equal(t, "domain-inboxes", tables[0].Name)
}

func TestSubscriptions(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/subscriptions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.SubscriptionListResponse](t, w)
	require.Equal(t, 12, list.AvailableSlots)

	w = s.do(t, http.MethodPost, "/subscriptions/sub-001/slots", models.AddSlotsRequest{Slots: 50})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	added := decode[models.AddSlotsResponse](t, w)
	require.Equal(t, "$600.00", added.Quote.Formatted)
	require.Equal(t, 56, added.Subscription.AvailableDomainSlots)

	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/subscriptions/sub-001/slots", models.AddSlotsRequest{}).Code)

	w = s.do(t, http.MethodPost, "/subscriptions/sub-002/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, http.StatusConflict, s.do(t, http.MethodPost, "/subscriptions/sub-002/cancel", nil).Code)
	require.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/subscriptions/sub-999", nil).Code)
}

func TestInbox(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/inbox?unread=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[models.InboxListResponse](t, w)
	require.Equal(t, 4, list.Total)
	require.Equal(t, 4, list.Unread)

	w = s.do(t, http.MethodPost, "/inbox/"+list.Items[0].ID+"/read", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, decode[store.Message](t, w).Read)

	unread := false
	w = s.do(t, http.MethodPost, "/inbox/"+list.Items[0].ID+"/read", models.MarkReadRequest{Read: &unread})
	require.Equal(t, http.StatusOK, w.Code)
	require.False(t, decode[store.Message](t, w).Read)

	require.Equal(t, http.StatusNotFound, s.do(t, http.MethodPost, "/inbox/nope/read", nil).Code)
}

func TestDashboardAndSearch(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[services.Dashboard](t, w)
	require.Equal(t, 12, dash.TotalDomains)
	require.Equal(t, 12, dash.AvailableSlots)
	require.Equal(t, 4, dash.UnreadMessages)

	w = s.do(t, http.MethodGet, "/search?q=acmesales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[models.SearchResponse](t, w)
	require.NotEmpty(t, res.Hits)
	require.Equal(t, "dom-1006", res.Hits[0].ID)

	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/search", nil).Code)
}

func TestViews(t *testing.T) {
	s := newTestServer(t)
	session := []string{"X-Session-ID", "tab-1"}

	w := s.do(t, http.MethodPost, "/views/orders/sort", models.ViewSortRequest{Key: "domains"}, session...)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	v := decode[models.ViewResponse](t, w)
	require.Equal(t, "domains", v.State.Sort.Key)
	require.Equal(t, "asc", string(v.State.Sort.Dir))

	w = s.do(t, http.MethodPost, "/views/orders/sort", models.ViewSortRequest{Key: "domains"}, session...)
	v = decode[models.ViewResponse](t, w)
	require.Equal(t, "desc", string(v.State.Sort.Dir))

	w = s.do(t, http.MethodGet, "/views/orders", nil)
	v = decode[models.ViewResponse](t, w)
	require.Equal(t, "date", v.State.Sort.Key)
	require.Equal(t, "desc", string(v.State.Sort.Dir))

	w = s.do(t, http.MethodPost, "/views/domains/page", models.ViewPageRequest{Page: 2}, session...)
	v = decode[models.ViewResponse](t, w)
	require.Equal(t, 2, v.State.Page)
	require.Equal(t, 12, v.Total)

	w = s.do(t, http.MethodPost, "/views/domains/filter", models.ViewFilterRequest{Filters: map[string]string{"provider": "Microsoft"}}, session...)
	require.Equal(t, http.StatusOK, w.Code)
	v = decode[models.ViewResponse](t, w)
	require.Equal(t, 1, v.State.Page)
	require.Equal(t, 5, v.Total)

	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/views/domains/filter", models.ViewFilterRequest{Filters: map[string]string{"colour": "red"}}).Code)
	require.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/views/orders/sort", models.ViewSortRequest{Key: "colour"}).Code)
	require.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/views/invoices", nil).Code)
}
