// Package records exposes record set management over the configured DNS
// zone.
package records

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"azdns/internal/credstore"
	"azdns/internal/dns"
	"azdns/internal/dns/azure"
	"azdns/internal/dnstypes"
	"azdns/internal/httpx"
)

// Handler handles DNS record API requests
type Handler struct {
	store  *credstore.Store
	build  dns.Factory
	logger *logrus.Entry
}

// NewHandler creates a new records handler. The factory is invoked per
// request so credential changes apply without a restart.
func NewHandler(store *credstore.Store, build dns.Factory, logger *logrus.Entry) *Handler {
	return &Handler{
		store:  store,
		build:  build,
		logger: logger.WithField("component", "records"),
	}
}

// writeError maps gateway and validation errors onto API status codes.
func writeError(c *gin.Context, err error) {
	var vErr *dnstypes.ValidationError
	var uErr *dnstypes.UnsupportedTypeError
	switch {
	case errors.Is(err, dns.ErrNotConfigured):
		httpx.Error(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &vErr), errors.As(err, &uErr):
		httpx.Error(c, http.StatusBadRequest, err.Error())
	default:
		httpx.Error(c, http.StatusInternalServerError, err.Error())
	}
}

// ListRecords returns every record set in the zone
// GET /api/records
func (h *Handler) ListRecords(c *gin.Context) {
	cfg := h.store.Get()
	gw, err := h.build(cfg)
	if err != nil {
		writeError(c, err)
		return
	}

	recordSets, err := gw.List(c.Request.Context())
	if err != nil {
		h.logger.WithFields(logrus.Fields{
			"zone":           cfg.Zone,
			"resource_group": cfg.ResourceGroup,
			"subscription":   cfg.SubscriptionID,
		}).Errorf("Failed to list records: %v", err)
		// The read path keeps the full provider error alongside the
		// short form so zone misconfiguration is diagnosable from the
		// console.
		httpx.ErrorDetails(c, http.StatusInternalServerError, azure.ShortError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"records": recordSets,
		"zone":    cfg.Zone,
	})
}

// CreateRecordRequest represents the request body for creating a record set
type CreateRecordRequest struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	TTL    int64    `json:"ttl"`
	Values []string `json:"values"`
}

// CreateRecord creates a record set in the zone
// POST /api/records
func (h *Handler) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	// Field presence is validated before any provider work, record type
	// only at encode time.
	if req.Name == "" || req.Type == "" || len(req.Values) == 0 {
		httpx.Error(c, http.StatusBadRequest, "Missing required fields: name, type, values")
		return
	}

	cfg := h.store.Get()
	gw, err := h.build(cfg)
	if err != nil {
		writeError(c, err)
		return
	}

	if req.TTL == 0 {
		req.TTL = dnstypes.DefaultTTL
	}

	if _, err := gw.Upsert(c.Request.Context(), req.Name, dnstypes.RecordType(req.Type), req.TTL, req.Values); err != nil {
		writeError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"name": req.Name,
		"type": req.Type,
		"zone": cfg.Zone,
	}).Info("Record created")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Record created successfully",
		"name":    req.Name,
	})
}

// UpdateRecordRequest represents the request body for updating a record set
type UpdateRecordRequest struct {
	TTL    int64    `json:"ttl"`
	Values []string `json:"values"`
}

// UpdateRecord replaces the record set identified by the path
// PUT /api/records/:type/*name
func (h *Handler) UpdateRecord(c *gin.Context) {
	rtype := dnstypes.RecordType(c.Param("type"))
	name := strings.TrimPrefix(c.Param("name"), "/")

	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if len(req.Values) == 0 {
		httpx.Error(c, http.StatusBadRequest, "Missing required field: values")
		return
	}

	cfg := h.store.Get()
	gw, err := h.build(cfg)
	if err != nil {
		writeError(c, err)
		return
	}

	if req.TTL == 0 {
		req.TTL = dnstypes.DefaultTTL
	}

	if _, err := gw.Upsert(c.Request.Context(), name, rtype, req.TTL, req.Values); err != nil {
		writeError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"name": name,
		"type": rtype,
		"zone": cfg.Zone,
	}).Info("Record updated")
	c.JSON(http.StatusOK, gin.H{
		"message": "Record updated successfully",
		"name":    name,
	})
}

// DeleteRecord removes the record set identified by the path
// DELETE /api/records/:type/*name
func (h *Handler) DeleteRecord(c *gin.Context) {
	rtype := dnstypes.RecordType(c.Param("type"))
	name := strings.TrimPrefix(c.Param("name"), "/")

	cfg := h.store.Get()
	gw, err := h.build(cfg)
	if err != nil {
		writeError(c, err)
		return
	}

	if err := gw.Delete(c.Request.Context(), name, rtype); err != nil {
		writeError(c, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"name": name,
		"type": rtype,
		"zone": cfg.Zone,
	}).Info("Record deleted")
	c.JSON(http.StatusOK, gin.H{
		"message": "Record deleted successfully",
		"name":    name,
	})
}
