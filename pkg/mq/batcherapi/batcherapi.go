// Package batcherapi exposes registered batchers over HTTP so that
// operators can inspect queue depths, tune parameters and flush queues at
// runtime.
package batcherapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-reqbatch/pkg/common/apperr"
	"github.com/huynhanx03/go-reqbatch/pkg/common/http/response"
	"github.com/huynhanx03/go-reqbatch/pkg/common/http/validation"
	"github.com/huynhanx03/go-reqbatch/pkg/mq/batcher"
	"github.com/huynhanx03/go-reqbatch/pkg/mq/registry"
)

// API serves the batcher operations endpoints backed by a registry.
type API struct {
	reg *registry.Registry
}

// New creates an API over reg.
func New(reg *registry.Registry) *API {
	return &API{reg: reg}
}

// RegisterRoutes mounts the endpoints under /batchers.
func (a *API) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/batchers")
	g.GET("", a.list)
	g.GET("/:name", a.get)
	g.PUT("/:name/params", a.setParams)
	g.POST("/:name/clear", a.clear)
}

// BatcherInfo is the detail view of one batcher.
type BatcherInfo struct {
	Name   string        `json:"name"`
	Queues QueueSizes    `json:"queues"`
	Params BatcherParams `json:"params"`
	Stats  BatcherStats  `json:"stats"`
}

// QueueSizes holds the per-priority queue lengths.
type QueueSizes struct {
	Low  int `json:"low"`
	Mid  int `json:"mid"`
	High int `json:"high"`
}

// BatcherParams mirrors the tunable batching parameters.
type BatcherParams struct {
	MaxBatch     uint `json:"max_batch"`
	MinHoldOffMs uint `json:"min_hold_off_ms"`
	MaxHoldOffMs uint `json:"max_hold_off_ms"`
}

// BatcherStats reports delivery counters.
type BatcherStats struct {
	Batches      uint64 `json:"batches"`
	Items        uint64 `json:"items"`
	LastDelivery string `json:"last_delivery,omitempty"`
}

// SetParamsRequest is the body of PUT /batchers/:name/params.
type SetParamsRequest struct {
	MaxBatch     uint `json:"max_batch"`
	MinHoldOffMs uint `json:"min_hold_off_ms"`
	MaxHoldOffMs uint `json:"max_hold_off_ms" validate:"gtefield=MinHoldOffMs"`
}

func (a *API) list(c *gin.Context) {
	response.SuccessResponse(c, response.CodeSuccess, a.reg.Names())
}

func (a *API) get(c *gin.Context) {
	h, ok := a.lookup(c)
	if !ok {
		return
	}
	response.SuccessResponse(c, response.CodeSuccess, infoOf(h))
}

func (a *API) setParams(c *gin.Context) {
	h, ok := a.lookup(c)
	if !ok {
		return
	}

	var req SetParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, response.CodeParamInvalid, err)
		return
	}
	if valid, msg := validation.IsRequestValid(&req); !valid {
		response.ErrorResponse(c, response.CodeValidationFailed, errors.New(msg))
		return
	}

	h.SetParams(req.MaxBatch, req.MinHoldOffMs, req.MaxHoldOffMs)
	response.SuccessResponse(c, response.CodeSuccess, infoOf(h))
}

func (a *API) clear(c *gin.Context) {
	h, ok := a.lookup(c)
	if !ok {
		return
	}
	h.Clear()
	response.SuccessResponse(c, response.CodeSuccess, infoOf(h))
}

func (a *API) lookup(c *gin.Context) (registry.Handle, bool) {
	name := c.Param("name")
	h, ok := a.reg.Lookup(name)
	if !ok {
		response.ErrorResponse(c, response.CodeNotFound,
			apperr.New(response.CodeNotFound, "unknown batcher: "+name, http.StatusNotFound, nil))
		return nil, false
	}
	return h, true
}

func infoOf(h registry.Handle) BatcherInfo {
	stats := h.Stats()
	info := BatcherInfo{
		Name: h.Name(),
		Queues: QueueSizes{
			Low:  h.Len(batcher.PriorityLow),
			Mid:  h.Len(batcher.PriorityMid),
			High: h.Len(batcher.PriorityHigh),
		},
		Params: BatcherParams{
			MaxBatch:     h.MaxRequests(),
			MinHoldOffMs: h.MinHoldOff(),
			MaxHoldOffMs: h.MaxHoldOff(),
		},
		Stats: BatcherStats{
			Batches: stats.Batches,
			Items:   stats.Items,
		},
	}
	if !stats.LastDelivery.IsZero() {
		info.Stats.LastDelivery = stats.LastDelivery.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
	return info
}
