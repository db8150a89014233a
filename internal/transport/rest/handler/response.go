package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/katiamach/pogoda/internal/logger"
)

type errorResponse struct {
	Code    int
	Message string
}

// respond writes payload as a json response with the given code.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, fmt.Sprintf("can't marshal the given payload: %v", err), http.StatusInternalServerError)
		logger.Error(err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, err = w.Write(body)
	if err != nil {
		logger.Error(fmt.Errorf("can't write response: %w", err))
		return
	}
}

// respondErr writes err as a json error response with the given code.
func respondErr(w http.ResponseWriter, code int, err error) {
	respErr := errorResponse{
		Code:    code,
		Message: err.Error(),
	}

	respond(w, code, respErr)
}
