// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small HTTP helpers shared by the transport layers:
// JSON response writing, bounded JSON request decoding and the resty client
// constructor used by the adapter.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrRequestBodyTooLarge is returned by DecodeJSON when the body exceeds the
// given limit.
var ErrRequestBodyTooLarge = errors.New("request body is too large")

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails nothing has been written yet, so it responds with
// 500 Internal Server Error instead and returns the wrapped error.
//
// Returns the number of body bytes written.
//
// Example usage:
//
//	WriteJSON(w, models.HealthResponse{Status: "OK"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes the body of r into dst, reading at most maxBytes.
// Unknown fields are ignored. Returns ErrRequestBodyTooLarge when the limit
// is hit, or the decoder error otherwise (io.EOF for an empty body).
func DecodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBytes)

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ErrRequestBodyTooLarge
		}
		return err
	}
	return nil
}
