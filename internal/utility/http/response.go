package http

import (
	"encoding/json"
	"log"
	"net/http"
)

type jsonResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(w http.ResponseWriter, data interface{}) {
	response := &jsonResponse{
		Success: true,
		Code:    http.StatusOK,
		Message: "Success",
		Data:    data,
	}
	sendJSONResponse(w, http.StatusOK, response)
}

func RespondCreated(w http.ResponseWriter, data interface{}) {
	response := &jsonResponse{
		Success: true,
		Code:    http.StatusCreated,
		Message: "Created",
		Data:    data,
	}
	sendJSONResponse(w, http.StatusCreated, response)
}

// RespondCount is the success shape for queries whose consumers want the
// match count alongside the data.
func RespondCount(w http.ResponseWriter, count int, data interface{}) {
	response := &jsonResponse{
		Success: true,
		Code:    http.StatusOK,
		Message: "Success",
		Count:   &count,
		Data:    data,
	}
	sendJSONResponse(w, http.StatusOK, response)
}

// RespondError sends an error JSON response.
func RespondError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil {
		log.Printf("Error: %v", err)
	}
	response := &jsonResponse{
		Success: false,
		Code:    code,
		Message: message,
	}
	sendJSONResponse(w, code, response)
}

// RespondEmptyResult reports the "valid query, zero matches" outcome, which is
// distinct from both validation errors and resolution failures.
func RespondEmptyResult(w http.ResponseWriter, message string) {
	zero := 0
	response := &jsonResponse{
		Success: false,
		Code:    http.StatusNotFound,
		Message: message,
		Count:   &zero,
	}
	sendJSONResponse(w, http.StatusNotFound, response)
}

func sendJSONResponse(w http.ResponseWriter, code int, response *jsonResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode response: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
