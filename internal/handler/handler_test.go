package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/rec-registration/internal/domain"
	"github.com/pkordes/rec-registration/internal/handler"
	"github.com/pkordes/rec-registration/internal/upload"
)

// mockProgramServicer is a test double for handler.ProgramServicer.
// Set only the method fields your test needs.
type mockProgramServicer struct {
	create func(ctx context.Context, p domain.Program) (domain.Program, error)
	list   func(ctx context.Context) ([]domain.Program, error)
}

func (m *mockProgramServicer) Create(ctx context.Context, p domain.Program) (domain.Program, error) {
	return m.create(ctx, p)
}
func (m *mockProgramServicer) List(ctx context.Context) ([]domain.Program, error) {
	return m.list(ctx)
}

// mockRosterServicer is a test double for handler.RosterServicer.
type mockRosterServicer struct {
	register      func(ctx context.Context, e domain.RosterEntry) (domain.RosterEntry, error)
	pay           func(ctx context.Context, e domain.RosterEntry, p domain.Payment) (domain.RosterEntry, error)
	list          func(ctx context.Context) ([]domain.RosterEntry, error)
	listByProgram func(ctx context.Context, programID int64, paidOnly bool) ([]domain.RosterRow, error)
}

func (m *mockRosterServicer) Register(ctx context.Context, e domain.RosterEntry) (domain.RosterEntry, error) {
	return m.register(ctx, e)
}
func (m *mockRosterServicer) Pay(ctx context.Context, e domain.RosterEntry, p domain.Payment) (domain.RosterEntry, error) {
	return m.pay(ctx, e, p)
}
func (m *mockRosterServicer) List(ctx context.Context) ([]domain.RosterEntry, error) {
	return m.list(ctx)
}
func (m *mockRosterServicer) ListByProgram(ctx context.Context, programID int64, paidOnly bool) ([]domain.RosterRow, error) {
	return m.listByProgram(ctx, programID, paidOnly)
}

// mockImageStore is a test double for handler.ImageStore.
type mockImageStore struct {
	save func(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	open func(ctx context.Context, name string) (upload.File, error)
}

func (m *mockImageStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	return m.save(ctx, name, r, size, contentType)
}
func (m *mockImageStore) Open(ctx context.Context, name string) (upload.File, error) {
	return m.open(ctx, name)
}

// mockPinger is a test double for handler.Pinger.
type mockPinger struct{ err error }

func (m mockPinger) Ping(context.Context) error { return m.err }

// compile-time checks: the mocks must satisfy the handler interfaces.
var (
	_ handler.ProgramServicer = (*mockProgramServicer)(nil)
	_ handler.RosterServicer  = (*mockRosterServicer)(nil)
	_ handler.ImageStore      = (*mockImageStore)(nil)
	_ handler.Pinger          = mockPinger{}
)

// ---- helpers ---------------------------------------------------------------

var discard = slog.New(slog.DiscardHandler)

// newHTTPHandler wires a Server with the given doubles into the full router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(programs handler.ProgramServicer, roster handler.RosterServicer, images handler.ImageStore) http.Handler {
	srv := handler.NewServer(programs, roster, images, nil, discard)
	return handler.NewRouter(srv, handler.RouterOptions{Logger: discard})
}

// serve sends a request through h and returns the recorded response.
func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// decodeMap decodes a JSON object response.
func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

// errorOf returns the "error" field of a JSON error response.
func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	msg, _ := decodeMap(t, rec)["error"].(string)
	return msg
}
