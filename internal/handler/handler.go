package handler

import (
	"errors"
	"log"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"lifeplan-engine/internal/jsonpatch"
	"lifeplan-engine/internal/metrics"
	"lifeplan-engine/internal/model"
	"lifeplan-engine/internal/scenario"
	"lifeplan-engine/internal/service"
)

type Handler struct {
	projections *service.ProjectionService
	metrics     fasthttp.RequestHandler
}

// New builds the router. m may be nil to leave /metrics unrouted.
func New(projections *service.ProjectionService, m *metrics.Metrics) *Handler {
	h := &Handler{projections: projections}
	if m != nil {
		h.metrics = fasthttpadaptor.NewFastHTTPHandler(m.Handler())
	}
	return h
}

func (h *Handler) Route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/projection":
		h.HandleProjection(ctx)
	case "/scenario/diff":
		h.HandleScenarioDiff(ctx)
	case "/healthz":
		ctx.SetContentType("text/plain")
		ctx.SetBodyString("ok")
	case "/metrics":
		if h.metrics == nil {
			writeError(ctx, fasthttp.StatusNotFound, "Not found", nil)
			return
		}
		h.metrics(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found", nil)
	}
}

func (h *Handler) HandleProjection(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	var req model.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	resp, err := h.projections.Project(ctx, &req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeError(ctx, fasthttp.StatusBadRequest, err.Error(), verr.Messages)
			return
		}
		log.Printf("Projection failed: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Projection failed", nil)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, resp)
}

type diffRequest struct {
	Previous scenario.Scenario `json:"previous"`
	Current  scenario.Scenario `json:"current"`
}

type diffResponse struct {
	Changed bool           `json:"changed"`
	Version int            `json:"version"`
	Patch   []jsonpatch.Op `json:"patch"`
}

func (h *Handler) HandleScenarioDiff(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed", nil)
		return
	}

	var req diffRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	ops, err := scenario.Diff(req.Previous, req.Current)
	if err != nil {
		log.Printf("Scenario diff failed: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, "Scenario diff failed", nil)
		return
	}
	if ops == nil {
		ops = []jsonpatch.Op{}
	}

	writeJSON(ctx, fasthttp.StatusOK, diffResponse{
		Changed: len(ops) > 0,
		Version: scenario.Bump(req.Previous, req.Current).Version,
		Patch:   ops,
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("Encoding response failed: %v", err)
		ctx.Error("internal error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(b)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string, msgs []model.CalculationMessage) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:   status,
		Message:  message,
		Messages: msgs,
	})
}
