// Package transport exposes the read API over HTTP.
package transport

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goodnatureofminers/txvault-backend/internal/evm/model"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	defaultSearchPage = 0
	defaultSearchSize = 100
)

// Handler serves transaction lookups backed by a Resolver.
type Handler struct {
	resolver Resolver
	logger   *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(resolver Resolver, logger *zap.Logger) *Handler {
	return &Handler{resolver: resolver, logger: logger}
}

// Router builds the gin engine with every route and middleware attached.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(h.logger), gin.Recovery())

	router.GET("/healthz", h.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.GET("/tx/:hash", h.getByHash)
	api.GET("/block/:number", h.getByBlock)
	api.GET("/fts/:query", h.search)

	return router
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) getByHash(c *gin.Context) {
	tx, err := h.resolver.GetByHash(c.Request.Context(), c.Param("hash"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tx)
}

func (h *Handler) getByBlock(c *gin.Context) {
	number, err := strconv.ParseUint(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "block number must be a non-negative integer"})
		return
	}

	txs, err := h.resolver.GetByBlock(c.Request.Context(), number)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}

func (h *Handler) search(c *gin.Context) {
	page, err := intQuery(c, "page", defaultSearchPage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
		return
	}
	size, err := intQuery(c, "size", defaultSearchSize)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
		return
	}

	result, err := h.resolver.Search(c.Request.Context(), c.Param("query"), page, size)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrInvalidPage):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
