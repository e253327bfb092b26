package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/grocerylist/internal/adapter/driven/memory"
	"github.com/ericfisherdev/grocerylist/internal/adapter/driven/metrics"
	"github.com/ericfisherdev/grocerylist/internal/adapter/driven/notify"
	httphandler "github.com/ericfisherdev/grocerylist/internal/adapter/driving/http"
	"github.com/ericfisherdev/grocerylist/internal/application"
	"github.com/ericfisherdev/grocerylist/internal/domain/model"
	"github.com/ericfisherdev/grocerylist/internal/domain/port/driven"
)

// --- Mock implementations ---

// failingRecords accepts reads but rejects every write.
type failingRecords struct {
	*memory.RecordStore
}

func (f failingRecords) Put(_ context.Context, _ string, _ []byte) error {
	return errors.New("disk full")
}

// nopPresenter satisfies driven.ListPresenter for API-only tests.
type nopPresenter struct{}

func (nopPresenter) RenderEntry(_ model.Entry)  {}
func (nopPresenter) RemoveEntry(_ string)       {}
func (nopPresenter) SetContainerVisible(_ bool) {}
func (nopPresenter) Reset()                     {}

// --- Test helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupMux wires a real ListService over records and returns the wrapped mux.
func setupMux(t *testing.T, records driven.RecordStore) http.Handler {
	t.Helper()

	logger := discardLogger()
	persist := application.NewEntryPersistence(records, application.DefaultStorageKey, logger)
	store := application.NewEntryStore(persist, nil)

	banner := notify.NewBanner(time.Minute, logger)
	t.Cleanup(banner.Stop)

	recorder := metrics.NewRecorder()
	list := application.NewListService(store, nopPresenter{}, banner, recorder, logger)
	require.NoError(t, list.Load(context.Background()))

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(list, recorder.Handler(), logger))
	return httphandler.ApplyMiddleware(mux, logger)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	err := json.NewDecoder(rec.Body).Decode(v)
	require.NoError(t, err)
}

func createEntry(t *testing.T, h http.Handler, value string) string {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/api/v1/entries", `{"value":"`+value+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp httphandler.CommandResponse
	decodeJSON(t, rec, &resp)
	require.NotNil(t, resp.Entry)
	return resp.Entry.ID
}

// --- Tests ---

func TestListEntries(t *testing.T) {
	mux := setupMux(t, memory.NewRecordStore())

	rec := do(t, mux, http.MethodGet, "/api/v1/entries", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	createEntry(t, mux, "eggs")
	createEntry(t, mux, "cheese")

	rec = do(t, mux, http.MethodGet, "/api/v1/entries", "")
	var resp []httphandler.EntryResponse
	decodeJSON(t, rec, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, "eggs", resp[0].Value)
	assert.Equal(t, "cheese", resp[1].Value)
	assert.NotEqual(t, resp[0].ID, resp[1].ID)
}

func TestSubmitEntry(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantOutcome string
		wantMessage string
	}{
		{
			name:        "created",
			body:        `{"value":"milk"}`,
			wantStatus:  http.StatusCreated,
			wantOutcome: "created",
			wantMessage: "milk has been added to the list",
		},
		{
			name:        "empty value",
			body:        `{"value":"  "}`,
			wantStatus:  http.StatusBadRequest,
			wantOutcome: "empty_input",
			wantMessage: "Please enter an item",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := setupMux(t, memory.NewRecordStore())

			rec := do(t, mux, http.MethodPost, "/api/v1/entries", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp httphandler.CommandResponse
			decodeJSON(t, rec, &resp)
			assert.Equal(t, tt.wantOutcome, resp.Outcome)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestSubmitEntry_InvalidBody(t *testing.T) {
	mux := setupMux(t, memory.NewRecordStore())

	rec := do(t, mux, http.MethodPost, "/api/v1/entries", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]any
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "invalid request body", resp["error"])
}

func TestEditFlow(t *testing.T) {
	mux := setupMux(t, memory.NewRecordStore())
	id := createEntry(t, mux, "milk")

	rec := do(t, mux, http.MethodPost, "/api/v1/entries/"+id+"/edit", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, mux, http.MethodGet, "/api/v1/session", "")
	var session httphandler.SessionResponse
	decodeJSON(t, rec, &session)
	assert.Equal(t, "editing", session.Mode)
	assert.Equal(t, id, session.TargetID)
	assert.Equal(t, "milk", session.Draft)

	// Same value: no write, session back to creating.
	rec = do(t, mux, http.MethodPost, "/api/v1/entries", `{"value":"milk"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp httphandler.CommandResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "no_change", resp.Outcome)
	assert.Equal(t, "No edits have been made", resp.Message)

	do(t, mux, http.MethodPost, "/api/v1/entries/"+id+"/edit", "")
	rec = do(t, mux, http.MethodPost, "/api/v1/entries", `{"value":"bread"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "updated", resp.Outcome)
	assert.Equal(t, "milk has been changed to bread", resp.Message)
	require.NotNil(t, resp.Entry)
	assert.Equal(t, id, resp.Entry.ID)

	rec = do(t, mux, http.MethodGet, "/api/v1/session", "")
	decodeJSON(t, rec, &session)
	assert.Equal(t, "creating", session.Mode)
	assert.Empty(t, session.TargetID)
}

func TestBeginEdit_UnknownID(t *testing.T) {
	mux := setupMux(t, memory.NewRecordStore())

	rec := do(t, mux, http.MethodPost, "/api/v1/entries/missing/edit", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp httphandler.CommandResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "not_found", resp.Outcome)
}

func TestCancelEdit(t *testing.T) {
	mux := setupMux(t, memory.NewRecordStore())
	id := createEntry(t, mux, "milk")
	do(t, mux, http.MethodPost, "/api/v1/entries/"+id+"/edit", "")

	rec := do(t, mux, http.MethodDelete, "/api/v1/session", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var session httphandler.SessionResponse
	decodeJSON(t, rec, &session)
	assert.Equal(t, "creating", session.Mode)
}

func TestDeleteEntry(t *testing.T) {
	mux := setupMux(t, memory.NewRecordStore())
	id := createEntry(t, mux, "bread")

	rec := do(t, mux, http.MethodDelete, "/api/v1/entries/"+id, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var resp httphandler.CommandResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "removed", resp.Outcome)
	assert.Equal(t, "bread has been removed", resp.Message)

	rec = do(t, mux, http.MethodDelete, "/api/v1/entries/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearEntries(t *testing.T) {
	records := memory.NewRecordStore()
	mux := setupMux(t, records)
	createEntry(t, mux, "eggs")
	createEntry(t, mux, "cheese")

	rec := do(t, mux, http.MethodDelete, "/api/v1/entries", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp httphandler.CommandResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "cleared", resp.Outcome)
	assert.Equal(t, "Cleared List", resp.Message)
	assert.Nil(t, resp.Entry)

	raw, err := records.Get(context.Background(), application.DefaultStorageKey)
	require.NoError(t, err)
	assert.Nil(t, raw)

	rec = do(t, mux, http.MethodGet, "/api/v1/entries", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSubmitEntry_WriteFailure(t *testing.T) {
	mux := setupMux(t, failingRecords{memory.NewRecordStore()})

	rec := do(t, mux, http.MethodPost, "/api/v1/entries", `{"value":"milk"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp httphandler.CommandResponse
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "failed", resp.Outcome)
	assert.Equal(t, "internal server error", resp.Error)
	assert.NotContains(t, rec.Body.String(), "disk full")

	// The entry stays in memory.
	rec = do(t, mux, http.MethodGet, "/api/v1/entries", "")
	var entries []httphandler.EntryResponse
	decodeJSON(t, rec, &entries)
	assert.Len(t, entries, 1)
}

func TestHealth(t *testing.T) {
	mux := setupMux(t, memory.NewRecordStore())
	createEntry(t, mux, "milk")

	rec := do(t, mux, http.MethodGet, "/api/v1/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(1), resp["entries"])
	assert.NotEmpty(t, resp["time"])
}

func TestMetricsEndpoint(t *testing.T) {
	mux := setupMux(t, memory.NewRecordStore())
	createEntry(t, mux, "milk")

	rec := do(t, mux, http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `grocerylist_commands_total{command="submit",outcome="created"} 1`)
}

func TestRecoveryMiddleware_APIPathAnswersJSON(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	h := httphandler.ApplyMiddleware(mux, discardLogger())

	rec := do(t, h, http.MethodGet, "/api/v1/boom", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]any
	decodeJSON(t, rec, &resp)
	assert.Equal(t, "internal server error", resp["error"])
}

func TestRecoveryMiddleware_PagePathAnswersText(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /items", func(http.ResponseWriter, *http.Request) { panic("boom") })
	h := httphandler.ApplyMiddleware(mux, discardLogger())

	rec := do(t, h, http.MethodPost, "/items", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "grocery list hit an internal error")
}

func TestLoggingMiddleware_RecordsCommandOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	persist := application.NewEntryPersistence(memory.NewRecordStore(), application.DefaultStorageKey, discardLogger())
	banner := notify.NewBanner(time.Minute, discardLogger())
	t.Cleanup(banner.Stop)
	recorder := metrics.NewRecorder()
	list := application.NewListService(application.NewEntryStore(persist, nil), nopPresenter{}, banner, recorder, discardLogger())
	require.NoError(t, list.Load(context.Background()))

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(list, recorder.Handler(), discardLogger()))
	h := httphandler.ApplyMiddleware(mux, logger)

	rec := do(t, h, http.MethodPost, "/api/v1/entries", `{"value":"   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "empty_input", line["outcome"])
	assert.Equal(t, float64(http.StatusBadRequest), line["status"])
}
