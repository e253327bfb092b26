package httphandler

import (
	"encoding/json"
	"net/http"

	"github.com/ericfisherdev/grocerylist/internal/application"
	"github.com/ericfisherdev/grocerylist/internal/domain/model"
)

// writeJSON marshals v to JSON and writes it to the response with the given
// status code. If marshaling fails, a 500 error is written instead.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeError writes a JSON error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// errorResponse is the standard error response body.
type errorResponse struct {
	Error string `json:"error"`
}

// EntryResponse is the JSON representation of a list entry.
type EntryResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// CommandResponse is returned by every mutating endpoint. Entry is omitted
// when the command did not touch a specific entry.
type CommandResponse struct {
	Outcome string         `json:"outcome"`
	Entry   *EntryResponse `json:"entry,omitempty"`
	Message string         `json:"message,omitempty"`
	Kind    string         `json:"kind,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// SessionResponse is the JSON representation of the edit session.
type SessionResponse struct {
	Mode     string `json:"mode"`
	TargetID string `json:"target_id,omitempty"`
	Draft    string `json:"draft,omitempty"`
}

// SubmitRequest is the JSON body for the submit endpoint.
type SubmitRequest struct {
	Value string `json:"value"`
}

// HealthResponse is the JSON representation of the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
	Time    string `json:"time"`
}

func toEntryResponse(e model.Entry) EntryResponse {
	return EntryResponse{ID: e.ID, Value: e.Value}
}

func toSessionResponse(s application.SessionState) SessionResponse {
	return SessionResponse{
		Mode:     string(s.Mode),
		TargetID: s.TargetID,
		Draft:    s.Draft,
	}
}

// toCommandResponse converts a command Result. The wrapped storage error is
// never exposed; clients get the user-facing message instead.
func toCommandResponse(res application.Result) CommandResponse {
	resp := CommandResponse{
		Outcome: string(res.Outcome),
		Message: res.Message,
		Kind:    string(res.Kind),
	}
	if res.Entry.ID != "" {
		entry := toEntryResponse(res.Entry)
		resp.Entry = &entry
	}
	if res.Err != nil {
		resp.Error = "internal server error"
	}
	return resp
}

// statusForOutcome maps a command outcome to its HTTP status code.
func statusForOutcome(o model.Outcome) int {
	switch o {
	case model.OutcomeCreated:
		return http.StatusCreated
	case model.OutcomeEmptyInput:
		return http.StatusBadRequest
	case model.OutcomeNotFound:
		return http.StatusNotFound
	case model.OutcomeFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}
