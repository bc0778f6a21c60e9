// Package config exposes the credential configuration lifecycle: inspect,
// replace, and test Azure service principal settings at runtime.
package config

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"azdns/internal/credstore"
	"azdns/internal/dns"
	"azdns/internal/httpx"
)

// Handler handles configuration management requests
type Handler struct {
	store  *credstore.Store
	build  dns.Factory
	logger *logrus.Entry
}

// NewHandler creates a new configuration handler
func NewHandler(store *credstore.Store, build dns.Factory, logger *logrus.Entry) *Handler {
	return &Handler{
		store:  store,
		build:  build,
		logger: logger.WithField("component", "config"),
	}
}

// Status reports whether the zone is fully configured
// GET /api/config/status
func (h *Handler) Status(c *gin.Context) {
	cfg := h.store.Get()
	c.JSON(http.StatusOK, gin.H{
		"configured":     cfg.Complete(),
		"zone":           cfg.Zone,
		"resource_group": cfg.ResourceGroup,
	})
}

// Get returns the stored configuration. The secret travels unmasked so the
// console can round-trip it; has_secret lets the UI show a placeholder
// instead.
// GET /api/config
func (h *Handler) Get(c *gin.Context) {
	cfg := h.store.Get()
	c.JSON(http.StatusOK, gin.H{
		"tenant_id":       cfg.TenantID,
		"client_id":       cfg.ClientID,
		"client_secret":   cfg.ClientSecret,
		"subscription_id": cfg.SubscriptionID,
		"resource_group":  cfg.ResourceGroup,
		"dns_zone":        cfg.Zone,
		"has_secret":      cfg.ClientSecret != "",
	})
}

// UpdateRequest represents the request body for replacing or testing the
// configuration
type UpdateRequest struct {
	TenantID       string `json:"tenant_id"`
	ClientID       string `json:"client_id"`
	ClientSecret   string `json:"client_secret"`
	SubscriptionID string `json:"subscription_id"`
	ResourceGroup  string `json:"resource_group"`
	Zone           string `json:"dns_zone"`
}

func (r UpdateRequest) config() credstore.Config {
	return credstore.Config{
		TenantID:       r.TenantID,
		ClientID:       r.ClientID,
		ClientSecret:   r.ClientSecret,
		SubscriptionID: r.SubscriptionID,
		ResourceGroup:  r.ResourceGroup,
		Zone:           r.Zone,
	}
}

// Update replaces the stored configuration and mirrors it to the env file
// POST /api/config
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	cfg := req.config()
	if missing := cfg.MissingFields(); len(missing) > 0 {
		httpx.Error(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	if err := h.store.Update(cfg); err != nil {
		// Memory already holds the new config; only the mirror failed.
		h.logger.Errorf("Failed to persist configuration: %v", err)
		httpx.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.WithField("zone", cfg.Zone).Info("Configuration updated")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Configuration saved",
		"zone":    cfg.Zone,
	})
}

// Test validates candidate credentials against the zone without touching
// the stored configuration
// POST /api/config/test
func (h *Handler) Test(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	cfg := req.config()
	if missing := cfg.MissingFields(); len(missing) > 0 {
		httpx.Error(c, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	count, err := dns.TestConnection(c.Request.Context(), h.build, cfg)
	if err != nil {
		h.writeTestFailure(c, cfg, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Connection successful",
		"record_count": count,
		"zone":         cfg.Zone,
	})
}

// writeTestFailure maps connection failures onto the statuses the console
// distinguishes. Only the test path exposes 401/403/404.
func (h *Handler) writeTestFailure(c *gin.Context, cfg credstore.Config, err error) {
	h.logger.WithFields(logrus.Fields{
		"zone":           cfg.Zone,
		"resource_group": cfg.ResourceGroup,
	}).Errorf("Connection test failed: %v", err)

	switch {
	case errors.Is(err, dns.ErrAuthFailed):
		httpx.Error(c, http.StatusUnauthorized, "Authentication failed: check tenant ID, client ID, and client secret")
	case errors.Is(err, dns.ErrForbidden):
		httpx.Error(c, http.StatusForbidden, "Authorization failed: the service principal has no access to the DNS zone")
	case errors.Is(err, dns.ErrZoneNotFound):
		httpx.Error(c, http.StatusNotFound, "Resource group or DNS zone not found")
	default:
		httpx.Error(c, http.StatusInternalServerError, err.Error())
	}
}
