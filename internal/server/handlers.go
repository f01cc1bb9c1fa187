package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"hangar/internal/hangar"
	"hangar/internal/logging"
	"hangar/internal/surface"
)

const notCreated = "Hangar not created. Create hangar first"

type Handler struct {
	telemetry   *hangar.TelemetryProvider
	serviceName string
	scale       surface.Scale

	mu     sync.RWMutex
	hangar *hangar.InstrumentedHangar
}

func NewHandler(telemetry *hangar.TelemetryProvider, serviceName string, scale surface.Scale) *Handler {
	return &Handler{
		telemetry:   telemetry,
		serviceName: serviceName,
		scale:       scale,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": h.serviceName,
		"meta":    extractMeta(r.Context()),
	})
}

func (h *Handler) CreateHangar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req HangarCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Width <= 0 || req.Height <= 0 {
		WriteError(ctx, w, http.StatusBadRequest, "Width and height must be greater than 0")
		return
	}
	if req.Width > hangar.MaxSide || req.Height > hangar.MaxSide {
		WriteError(ctx, w, http.StatusBadRequest, fmt.Sprintf("Width and height must not exceed %d", hangar.MaxSide))
		return
	}

	ih, err := hangar.NewInstrumentedHangar(req.Width, req.Height, h.telemetry)
	if err != nil {
		logging.Errorf(ctx, "create hangar: %v", err)
		WriteError(ctx, w, http.StatusInternalServerError, "Failed to create hangar")
		return
	}

	h.mu.Lock()
	if h.hangar != nil {
		h.hangar.Close(ctx)
	}
	h.hangar = ih
	h.mu.Unlock()

	logging.Infof(ctx, "hangar created with %d places", ih.Capacity())
	WriteSuccess(ctx, w, "Hangar created successfully", map[string]any{
		"width":    req.Width,
		"height":   req.Height,
		"capacity": ih.Capacity(),
	})
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.hangar == nil {
		WriteError(ctx, w, http.StatusBadRequest, notCreated)
		return
	}

	vehicles := h.hangar.Vehicles(ctx)
	list := make([]VehicleResponse, 0, len(vehicles))
	for i, v := range vehicles {
		list = append(list, toVehicleResponse(i, v))
	}

	WriteSuccess(ctx, w, "Status retrieved successfully", StatusResponse{
		Width:     h.hangar.Width(),
		Height:    h.hangar.Height(),
		Capacity:  h.hangar.Capacity(),
		Occupied:  len(vehicles),
		Available: h.hangar.Capacity() - len(vehicles),
		Vehicles:  list,
	})
}

func (h *Handler) ParkVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ParkVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Invalid request body")
		return
	}
	vehicle, msg := req.vehicle()
	if vehicle == nil {
		WriteError(ctx, w, http.StatusBadRequest, msg)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hangar == nil {
		WriteError(ctx, w, http.StatusBadRequest, notCreated)
		return
	}

	index, err := h.hangar.Add(ctx, vehicle)
	if err != nil {
		logging.Warnf(ctx, "park %s: %v", req.Registration, err)
		WriteError(ctx, w, http.StatusConflict, err.Error())
		return
	}

	WriteSuccess(ctx, w, "Vehicle parked successfully", toVehicleResponse(index, vehicle))
}

func (req ParkVehicleRequest) vehicle() (hangar.Vehicle, string) {
	if req.Registration == "" || req.Color == "" {
		return nil, "Registration and color are required"
	}
	if req.MaxSpeed <= 0 || req.Weight <= 0 {
		return nil, "Max speed and weight must be greater than 0"
	}

	switch hangar.Kind(strings.ToLower(req.Kind)) {
	case "", hangar.KindArmored:
		return hangar.NewArmoredVehicle(req.Registration, req.Color, req.MaxSpeed, req.Weight), ""
	case hangar.KindTank:
		if req.TurretColor == "" {
			return nil, "Turret color is required for tanks"
		}
		return hangar.NewTank(req.Registration, req.Color, req.MaxSpeed, req.Weight, req.TurretColor, req.Gun), ""
	default:
		return nil, "Unknown vehicle kind"
	}
}

func indexParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "index"))
}

func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	index, err := indexParam(r)
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Index must be an integer")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.hangar == nil {
		WriteError(ctx, w, http.StatusBadRequest, notCreated)
		return
	}

	v, ok := h.hangar.GetAt(ctx, index)
	if !ok {
		WriteError(ctx, w, http.StatusNotFound, "Vehicle not found")
		return
	}

	WriteSuccess(ctx, w, "Vehicle found", toVehicleResponse(index, v))
}

func (h *Handler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	index, err := indexParam(r)
	if err != nil {
		WriteError(ctx, w, http.StatusBadRequest, "Index must be an integer")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hangar == nil {
		WriteError(ctx, w, http.StatusBadRequest, notCreated)
		return
	}

	v, err := h.hangar.RemoveAt(ctx, index)
	if errors.Is(err, hangar.ErrIndexNotFound) {
		WriteError(ctx, w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		WriteError(ctx, w, http.StatusInternalServerError, err.Error())
		return
	}

	WriteSuccess(ctx, w, "Vehicle left the hangar", toVehicleResponse(index, v))
}

func (h *Handler) SortVehicles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hangar == nil {
		WriteError(ctx, w, http.StatusBadRequest, notCreated)
		return
	}

	h.hangar.Sort(ctx)
	WriteSuccess(ctx, w, "Hangar sorted", map[string]any{"count": h.hangar.Len()})
}

// Render returns the hangar as a text frame. Drawing stores positions in the
// vehicles, so it takes the write lock.
func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hangar == nil {
		WriteError(ctx, w, http.StatusBadRequest, notCreated)
		return
	}

	frame := surface.NewText(h.hangar.Width(), h.hangar.Height(), h.scale)
	h.hangar.Draw(ctx, frame)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(frame.String()))
}

func (h *Handler) DrawOps(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hangar == nil {
		WriteError(ctx, w, http.StatusBadRequest, notCreated)
		return
	}

	rec := surface.NewRecorder()
	h.hangar.Draw(ctx, rec)
	WriteSuccess(ctx, w, "Drawing recorded", rec.Ops)
}
