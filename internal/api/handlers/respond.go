package handlers

import (
	"encoding/json"
	"net/http"
)

// Конвенция ответа: дискриминатор er (0 - успех, 1 - ошибка) плюс
// человекочитаемое сообщение em. Клиенты различают исход только по
// дискриминатору, текст сообщения предназначен для отображения.
const (
	codeSuccess = 0
	codeError   = 1
)

const msgInternalError = "внутренняя ошибка сервера"

// Envelope стандартная обёртка ответа API
type Envelope struct {
	ER   int         `json:"er"`
	EM   string      `json:"em,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

// RespondJSON отправляет успешный ответ с полезной нагрузкой
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, status, Envelope{ER: codeSuccess, Data: payload})
}

// RespondError отправляет ответ с ошибкой и сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{ER: codeError, EM: message})
}

// RespondBadRequest отправляет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound отправляет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondUnauthorized отправляет 401 с сообщением
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden отправляет 403 с сообщением
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondConflict отправляет 409 с сообщением
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError отправляет 500 с общим сообщением,
// не раскрывая внутренних деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
