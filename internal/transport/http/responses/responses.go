package responses

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Description is the nested error body used by the order endpoints.
type Description struct {
	Description string `json:"description"`
}

type detailBody struct {
	Detail any `json:"detail"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// Detail writes a {"detail": ...} error body with the given status code.
func Detail(w http.ResponseWriter, status int, detail any) {
	JSON(w, status, detailBody{Detail: detail})
}
