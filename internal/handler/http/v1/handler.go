package v1

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/presoak_risk_system/internal/config"
	"github.com/shenikar/presoak_risk_system/internal/service"
	"github.com/sirupsen/logrus"
)

const indexTemplate = "index.html"

type Handler struct {
	simulationService service.SimulationService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(simulationService service.SimulationService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		simulationService: simulationService,
		logger:            logger,
		validate:          validator.New(),
		cfg:               cfg,
	}
}

// @Summary Run a pre-soak simulation
// @Description Fetch fires, weather, air quality and evapotranspiration for a point, compute SERI and the irrigation recommendation.
// @Tags Simulation
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Latitude" default(37.6)
// @Param lon query number false "Longitude" default(-120.9)
// @Param perimeter query number false "Perimeter length" default(50)
// @Param pump query number false "Pump capacity, L/hr" default(4250)
// @Param demo query bool false "Add a synthetic fire near the point" default(true)
// @Success 200 {object} SimulationResponse
// @Failure 400 {object} map[string]string "Invalid query parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /run_simulation [get]
func (h *Handler) runSimulation(c *gin.Context) {
	log := h.logger.WithField("method", "runSimulation")

	input, err := h.parseSimulationQuery(c)
	if err != nil {
		log.WithError(err).Warn("Failed to parse query")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sim, err := h.simulationService.RunSimulation(c.Request.Context(), QueryToModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to run simulation in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToSimulationResponse(sim))
}

// @Summary List fires near a point
// @Description Get FIRMS fire detections around a point, classified by intensity for the map.
// @Tags Simulation
// @Produce json
// @Security ApiKeyAuth
// @Param lat query number false "Latitude" default(37.6)
// @Param lon query number false "Longitude" default(-120.9)
// @Param demo query bool false "Add a synthetic fire near the point" default(true)
// @Success 200 {array} FireResponse
// @Failure 400 {object} map[string]string "Invalid query parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /get_fires [get]
func (h *Handler) getFires(c *gin.Context) {
	log := h.logger.WithField("method", "getFires")

	input, err := h.parseSimulationQuery(c)
	if err != nil {
		log.WithError(err).Warn("Failed to parse query")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fires, err := h.simulationService.GetFires(c.Request.Context(), QueryToModel(input))
	if err != nil {
		log.WithError(err).Error("Failed to get fires from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToFireResponses(fires))
}

// @Summary List recent simulation runs
// @Description Get the most recent archived simulation runs. Requires the archive to be configured.
// @Tags Simulation
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Number of runs" default(20)
// @Success 200 {array} HistoryItemResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Failure 503 {object} map[string]string "Archive is not configured"
// @Router /history [get]
func (h *Handler) history(c *gin.Context) {
	log := h.logger.WithField("method", "history")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	items, err := h.simulationService.History(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrArchiveDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "simulation archive is not configured"})
			return
		}
		log.WithError(err).Error("Failed to list history from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToHistoryResponses(items))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// index отдает страницу с картой
func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, gin.H{
		"DefaultLat":       h.cfg.DefaultLat,
		"DefaultLon":       h.cfg.DefaultLon,
		"DefaultPerimeter": h.cfg.DefaultPerimeter,
		"DefaultPump":      h.cfg.DefaultPump,
	})
}

// parseSimulationQuery читает параметры запроса, подставляя значения по умолчанию из конфигурации
func (h *Handler) parseSimulationQuery(c *gin.Context) (SimulationQuery, error) {
	var (
		q   SimulationQuery
		err error
	)
	if q.Latitude, err = floatQuery(c, "lat", h.cfg.DefaultLat); err != nil {
		return q, err
	}
	if q.Longitude, err = floatQuery(c, "lon", h.cfg.DefaultLon); err != nil {
		return q, err
	}
	if q.PerimeterLength, err = floatQuery(c, "perimeter", h.cfg.DefaultPerimeter); err != nil {
		return q, err
	}
	if q.PumpCapacity, err = floatQuery(c, "pump", h.cfg.DefaultPump); err != nil {
		return q, err
	}

	q.Demo = true
	if raw, ok := c.GetQuery("demo"); ok && raw != "" {
		if q.Demo, err = strconv.ParseBool(raw); err != nil {
			return q, fmt.Errorf("invalid query parameter: demo")
		}
	}
	return q, nil
}

func floatQuery(c *gin.Context, name string, def float64) (float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid query parameter: %s", name)
	}
	return v, nil
}
