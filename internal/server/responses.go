package server

import (
	"context"
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"hangar/internal/hangar"
)

type Meta struct {
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type HangarCreateRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type ParkVehicleRequest struct {
	Kind         string  `json:"kind"`
	Registration string  `json:"registration"`
	Color        string  `json:"color"`
	MaxSpeed     int     `json:"max_speed"`
	Weight       float64 `json:"weight"`
	TurretColor  string  `json:"turret_color,omitempty"`
	Gun          bool    `json:"gun,omitempty"`
}

type VehicleResponse struct {
	Index        int     `json:"index"`
	Kind         string  `json:"kind"`
	Registration string  `json:"registration"`
	Color        string  `json:"color"`
	MaxSpeed     int     `json:"max_speed"`
	Weight       float64 `json:"weight"`
	TurretColor  string  `json:"turret_color,omitempty"`
	Gun          bool    `json:"gun,omitempty"`
	X            int     `json:"x"`
	Y            int     `json:"y"`
}

type StatusResponse struct {
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Capacity  int               `json:"capacity"`
	Occupied  int               `json:"occupied"`
	Available int               `json:"available"`
	Vehicles  []VehicleResponse `json:"vehicles"`
}

func toVehicleResponse(index int, v hangar.Vehicle) VehicleResponse {
	x, y := v.Position()
	resp := VehicleResponse{
		Index:        index,
		Kind:         string(v.Kind()),
		Registration: v.Registration(),
		Color:        v.MainColor(),
		MaxSpeed:     v.MaxSpeed(),
		Weight:       v.Weight(),
		X:            x,
		Y:            y,
	}
	if t, ok := v.(*hangar.Tank); ok {
		resp.TurretColor = t.TurretColor
		resp.Gun = t.Gun
	}
	return resp
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func extractMeta(ctx context.Context) *Meta {
	meta := &Meta{}

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().HasTraceID() {
		meta.TraceID = span.SpanContext().TraceID().String()
	}

	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		meta.RequestID = reqID
	}

	return meta
}

func WriteSuccess(ctx context.Context, w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    extractMeta(ctx),
	})
}

func WriteError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{
		Success: false,
		Error:   message,
		Meta:    extractMeta(ctx),
	})
}
