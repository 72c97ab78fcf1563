// Package handlers содержит общие помощники HTTP слоя: разбор тела запроса и JSON ответы
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes ограничение на размер тела запроса
const MaxBodyBytes = 64 << 10

// MsgInvalidJSON сообщение для тела запроса, которое не удалось разобрать
const MsgInvalidJSON = "Solicitud invalida. Revisa el formato JSON."

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// DecodeJSON разбирает тело запроса в dst.
// Пустое тело и лишние данные после JSON объекта считаются ошибкой.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}

	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{OK: false, Message: message})
}

// RespondBadRequest 400
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondInvalidJSON 400 для неразобранного тела запроса
func RespondInvalidJSON(w http.ResponseWriter) {
	RespondBadRequest(w, MsgInvalidJSON)
}

// RespondInternalError 500 с общим сообщением и текстом исходной ошибки в details
func RespondInternalError(w http.ResponseWriter, message string, err error) {
	resp := ErrorResponse{OK: false, Message: message}
	if err != nil {
		resp.Details = err.Error()
	}
	RespondJSON(w, http.StatusInternalServerError, resp)
}
