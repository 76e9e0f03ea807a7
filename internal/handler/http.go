// Package handler exposes the formatters over a JSON HTTP API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"khmer-format/internal/domain"
	"khmer-format/internal/numeral"
	"khmer-format/internal/usecase"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

var errInvalidRequest = errors.New("invalid request")

// TextResponse is the body of a successful call.
type TextResponse struct {
	Text string `json:"text"`
}

// ErrorResponse is the body of a failed call.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// Handler serves the money and time endpoints.
type Handler struct {
	money           *usecase.MoneyFormatter
	times           *usecase.TimeFormatter
	defaultMode     string
	defaultTimezone string
	logger          *zap.Logger
}

// NewHandler creates a handler. defaultMode and defaultTimezone apply when
// a request leaves "mode" or "tz" empty.
func NewHandler(money *usecase.MoneyFormatter, times *usecase.TimeFormatter, defaultMode, defaultTimezone string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		money:           money,
		times:           times,
		defaultMode:     defaultMode,
		defaultTimezone: defaultTimezone,
		logger:          logger,
	}
}

// Router returns the routes of the API.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)

	// Routes stay on the root router so a method mismatch answers 405.
	r.HandleFunc("/v1/money/{currency}", h.formatMoney).Methods(http.MethodGet)
	r.HandleFunc("/v1/money/{currency}/words", h.spellMoney).Methods(http.MethodGet)
	r.HandleFunc("/v1/time", h.formatTime).Methods(http.MethodGet)
	r.HandleFunc("/v1/time/now", h.formatTimeNow).Methods(http.MethodGet)

	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) formatMoney(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var khmerDigits *bool
	if raw := q.Get("khmer_digits"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.writeError(w, r, errors.Join(errInvalidRequest, err))
			return
		}
		khmerDigits = &v
	}

	text, err := h.money.Format(mux.Vars(r)["currency"], numeral.ToArabicDigits(q.Get("amount")), khmerDigits)
	h.respond(w, r, text, err)
}

func (h *Handler) spellMoney(w http.ResponseWriter, r *http.Request) {
	amount := numeral.ToArabicDigits(r.URL.Query().Get("amount"))

	text, err := h.money.Spell(mux.Vars(r)["currency"], amount)
	h.respond(w, r, text, err)
}

func (h *Handler) formatTime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	text, err := h.times.Format(numeral.ToArabicDigits(q.Get("value")), h.mode(r))
	h.respond(w, r, text, err)
}

func (h *Handler) formatTimeNow(w http.ResponseWriter, r *http.Request) {
	tz := r.URL.Query().Get("tz")
	if tz == "" {
		tz = h.defaultTimezone
	}

	text, err := h.times.FormatNow(h.mode(r), tz)
	h.respond(w, r, text, err)
}

func (h *Handler) mode(r *http.Request) string {
	if m := r.URL.Query().Get("mode"); m != "" {
		return m
	}
	return h.defaultMode
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, text string, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, TextResponse{Text: text})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.ErrorKind(err)
	status := http.StatusBadRequest

	switch {
	case errors.Is(err, errInvalidRequest):
		kind = "invalid_request"
	case !domain.IsValidationError(err):
		status = http.StatusInternalServerError
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}

	h.writeJSON(w, status, ErrorResponse{Error: err.Error(), Kind: kind})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("query", r.URL.RawQuery),
		)
		next.ServeHTTP(w, r)
	})
}
