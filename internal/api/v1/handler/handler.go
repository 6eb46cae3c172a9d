package handler

import (
	"encoding/json"
	"net/http"

	"lmsadmin/internal/api/v1/dto"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeData wraps the payload in the {data: ...} envelope.
func writeData(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, dto.DataEnvelope{Data: payload})
}

// writeSuccess writes the {success: true} deletion envelope.
func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, dto.SuccessEnvelope{Success: true})
}
