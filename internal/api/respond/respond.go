// Package respond writes JSON responses in the API's envelope format.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/wb-go/wbf/zlog"
)

type success struct {
	Result any `json:"result"`
}

type failure struct {
	Error string `json:"error"`
}

// OK writes data with status 200.
func OK(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, success{Result: data})
}

// Created writes data with status 201.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, success{Result: data})
}

// Accepted writes data with status 202.
func Accepted(w http.ResponseWriter, data any) {
	write(w, http.StatusAccepted, success{Result: data})
}

// Fail writes err's message with the given status.
func Fail(w http.ResponseWriter, status int, err error) {
	write(w, status, failure{Error: err.Error()})
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to write response")
	}
}
