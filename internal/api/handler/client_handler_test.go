package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/payetonkawa/clients-api/internal/core/domain"
	"github.com/payetonkawa/clients-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub service
// ---------------------------------------------------------------------------

type stubClientService struct {
	clients    map[string]*domain.Client
	lastUpdate domain.ClientUpdate
}

func newStubClientService() *stubClientService {
	return &stubClientService{clients: make(map[string]*domain.Client)}
}

func (s *stubClientService) Create(_ context.Context, input ports.CreateClientInput) (*domain.Client, error) {
	c := &domain.Client{
		ID:       "64f000000000000000000001",
		Name:     input.Name,
		Email:    input.Email,
		Company:  input.Company,
		Phone:    input.Phone,
		IsActive: input.IsActive,
	}
	s.clients[c.ID] = c
	return c, nil
}

func (s *stubClientService) Get(_ context.Context, id string) (*domain.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c, nil
}

func (s *stubClientService) List(_ context.Context) ([]*domain.Client, error) {
	out := make([]*domain.Client, 0, len(s.clients))
	for _, c := range s.clients {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubClientService) Update(_ context.Context, id string, u domain.ClientUpdate) (*domain.Client, error) {
	s.lastUpdate = u
	c, ok := s.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.IsActive != nil {
		c.IsActive = *u.IsActive
	}
	return c, nil
}

func (s *stubClientService) Delete(_ context.Context, id string) error {
	if _, ok := s.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(s.clients, id)
	return nil
}

func newTestContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestClientHandler_Create(t *testing.T) {
	e := newTestEcho()
	h := NewClientHandler(newStubClientService())

	c, rec := newTestContext(e, http.MethodPost, "/clients/", `{"name":"A","email":"a@x.com"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp clientResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID == "" {
		t.Fatalf("response must contain the generated id")
	}
	if resp.Name != "A" || resp.Email != "a@x.com" {
		t.Fatalf("response mismatch: %+v", resp)
	}
	if !resp.IsActive {
		t.Fatalf("is_active must default to true when omitted")
	}
}

func TestClientHandler_CreateInvalidEmail(t *testing.T) {
	e := newTestEcho()
	h := NewClientHandler(newStubClientService())

	c, rec := newTestContext(e, http.MethodPost, "/clients/", `{"name":"A","email":"not-an-email"}`)
	err := h.Create(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestClientHandler_CreateMissingName(t *testing.T) {
	e := newTestEcho()
	h := NewClientHandler(newStubClientService())

	c, rec := newTestContext(e, http.MethodPost, "/clients/", `{"email":"a@x.com"}`)
	err := h.Create(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	e.HTTPErrorHandler(err, c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Get / List
// ---------------------------------------------------------------------------

func TestClientHandler_GetNotFound(t *testing.T) {
	e := newTestEcho()
	h := NewClientHandler(newStubClientService())

	c, _ := newTestContext(e, http.MethodGet, "/clients/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientHandler_List(t *testing.T) {
	e := newTestEcho()
	svc := newStubClientService()
	_, _ = svc.Create(context.Background(), ports.CreateClientInput{Name: "A", Email: "a@x.com", IsActive: true})
	h := NewClientHandler(svc)

	c, rec := newTestContext(e, http.MethodGet, "/clients/", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []clientResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 client, got %d", len(resp))
	}
}

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func TestClientHandler_UpdateOmittedFieldsStayNil(t *testing.T) {
	e := newTestEcho()
	svc := newStubClientService()
	created, _ := svc.Create(context.Background(), ports.CreateClientInput{Name: "A", Email: "a@x.com", IsActive: true})
	h := NewClientHandler(svc)

	c, rec := newTestContext(e, http.MethodPut, "/clients/"+created.ID, `{"name":"B"}`)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	if err := h.Update(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Only name was supplied: everything else must reach the service as nil.
	if svc.lastUpdate.Name == nil || *svc.lastUpdate.Name != "B" {
		t.Fatalf("name must be set in the update")
	}
	if svc.lastUpdate.Email != nil || svc.lastUpdate.Company != nil ||
		svc.lastUpdate.Phone != nil || svc.lastUpdate.IsActive != nil {
		t.Fatalf("omitted fields must be nil: %+v", svc.lastUpdate)
	}
}

func TestClientHandler_UpdateNotFound(t *testing.T) {
	e := newTestEcho()
	h := NewClientHandler(newStubClientService())

	c, _ := newTestContext(e, http.MethodPut, "/clients/missing", `{"name":"B"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Update(c); err == nil {
		t.Fatalf("expected not-found error")
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestClientHandler_Delete(t *testing.T) {
	e := newTestEcho()
	svc := newStubClientService()
	created, _ := svc.Create(context.Background(), ports.CreateClientInput{Name: "A", Email: "a@x.com"})
	h := NewClientHandler(svc)

	c, rec := newTestContext(e, http.MethodDelete, "/clients/"+created.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	// Second delete on the same id is not-found.
	c2, _ := newTestContext(e, http.MethodDelete, "/clients/"+created.ID, "")
	c2.SetParamNames("id")
	c2.SetParamValues(created.ID)
	if err := h.Delete(c2); err == nil {
		t.Fatalf("expected not-found on second delete")
	}
}
