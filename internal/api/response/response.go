package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body: a data payload plus an ordered
// list of validation messages. Exactly one of the two is populated.
type Envelope struct {
	Data   any      `json:"data"`
	Errors []string `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteData writes a successful envelope with an empty errors list.
func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Envelope{Data: data, Errors: []string{}})
}

// WriteErrors writes a failed envelope with a null data payload.
func WriteErrors(w http.ResponseWriter, status int, messages []string) {
	WriteJSON(w, status, Envelope{Data: nil, Errors: messages})
}

// WriteError writes a failed envelope with a single message.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteErrors(w, status, []string{message})
}
