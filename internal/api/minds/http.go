package minds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/evgeniy-krivenko/minds/internal/api/minds/converter"
	"github.com/evgeniy-krivenko/minds/internal/entity"
	"github.com/evgeniy-krivenko/minds/pkg/logger/slogx"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	uc mindsUsecase
}

func NewHandler(uc mindsUsecase) *Handler {
	return &Handler{uc: uc}
}

// Routes returns the HTTP surface of the minds API.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /minds", h.listMinds)
	mux.HandleFunc("POST /minds", h.createMind)
	mux.HandleFunc("DELETE /minds/{id}", h.deleteMind)
	mux.HandleFunc("GET /healthz", h.healthz)

	return mux
}

func (h *Handler) listMinds(w http.ResponseWriter, r *http.Request) {
	minds, err := h.uc.ListMinds(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ConvertMindsToResponse(minds))
}

func (h *Handler) createMind(w http.ResponseWriter, r *http.Request) {
	var req converter.CreateMindRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: decode body: %v", entity.ErrInvalidContent, err))
		return
	}

	// The body must hold exactly one JSON value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		h.writeError(w, r, fmt.Errorf("%w: unexpected data after JSON body", entity.ErrInvalidContent))
		return
	}

	if req.Content == nil {
		h.writeError(w, r, fmt.Errorf("%w: content is required", entity.ErrInvalidContent))
		return
	}

	mind, err := h.uc.CreateMind(r.Context(), *req.Content)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ConvertMindToResponse(mind))
}

func (h *Handler) deleteMind(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %v", entity.ErrInvalidID, err))
		return
	}

	if err := h.uc.DeleteMind(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal server error"

	switch {
	case errors.Is(err, entity.ErrInvalidID), errors.Is(err, entity.ErrInvalidContent):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		msg = "request timed out"
	case errors.Is(err, context.Canceled):
		status = http.StatusRequestTimeout
		msg = "request canceled"
	case errors.Is(err, entity.ErrStorage):
		status = http.StatusServiceUnavailable
		msg = "storage unavailable"
	}

	if status != http.StatusBadRequest {
		slogx.Error(r.Context(), "handle minds request", slogx.Err(err))
	}

	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
