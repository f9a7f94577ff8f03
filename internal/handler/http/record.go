package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dtr-tools/dtr-backend-go/internal/domain/record"
	"github.com/dtr-tools/dtr-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RecordHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	UpdatePoints(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type recordHandlerImpl struct {
	recordService record.RecordService
}

func NewRecordHandler(recordService record.RecordService) RecordHandler {
	return &recordHandlerImpl{
		recordService: recordService,
	}
}

// Calculate implements RecordHandler.
func (h *recordHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req record.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode calculate request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recordService.Calculate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Save implements RecordHandler.
func (h *recordHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req record.SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode save request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.recordService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Record saved", result)
}

// Get implements RecordHandler.
func (h *recordHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.recordService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RecordHandler.
func (h *recordHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := listFilterFromQuery(r)

	result, err := h.recordService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdatePoints implements RecordHandler.
func (h *recordHandlerImpl) UpdatePoints(w http.ResponseWriter, r *http.Request) {
	var req record.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recordService.UpdatePoints(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record updated", result)
}

// Delete implements RecordHandler.
func (h *recordHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recordService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Record deleted", nil)
}

// listFilterFromQuery reads the optional from/to range off the query
// string; validation happens in the service.
func listFilterFromQuery(r *http.Request) record.ListFilter {
	var filter record.ListFilter
	if from := r.URL.Query().Get("from"); from != "" {
		filter.From = &from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		filter.To = &to
	}
	return filter
}
