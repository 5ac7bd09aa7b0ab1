package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ChainLens/internal/domain/models"
	"ChainLens/internal/service/ratelimit"
	"ChainLens/internal/usecase"
	xhttp "ChainLens/pkg/http"
	xlogger "ChainLens/pkg/logger"
)

// AnalyzeHandler exposes the token analysis API over Echo.
type AnalyzeHandler struct {
	logger  *xlogger.Logger
	uc      *usecase.AnalyzeUseCase
	limiter *ratelimit.Limiter

	rateCapacity float64
	rateRefill   float64
}

func NewAnalyzeHandler(logger *xlogger.Logger, uc *usecase.AnalyzeUseCase) *AnalyzeHandler {
	return &AnalyzeHandler{logger: logger, uc: uc}
}

// EnableRateLimit attaches a per-client token bucket to the analyze route.
func (h *AnalyzeHandler) EnableRateLimit(capacity, refillPerSec float64) {
	h.limiter = ratelimit.New()
	h.rateCapacity = capacity
	h.rateRefill = refillPerSec
}

func (h *AnalyzeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	g := e.Group("/api/v1")
	g.GET("/chains", h.Chains)
	if h.limiter != nil {
		g.POST("/analyze", h.Analyze, h.rateLimit)
	} else {
		g.POST("/analyze", h.Analyze)
	}
}

func (h *AnalyzeHandler) Root(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"status":  "ok",
		"message": "ChainLens analysis service is running",
	})
}

func (h *AnalyzeHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	resp, err := h.uc.Analyze(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("analyze usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, resp)
}

func (h *AnalyzeHandler) Chains(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"chains": h.uc.Chains(),
	})
}

func (h *AnalyzeHandler) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.limiter.Allow(c.RealIP(), h.rateCapacity, h.rateRefill) {
			return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
		}
		return next(c)
	}
}
