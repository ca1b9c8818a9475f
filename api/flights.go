package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mtereshin/skyfare/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.list)
	router.GET("/flights/:id", h.get)
	router.GET("/search", h.search)
	router.GET("/sort", h.sort)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, codeValidationError, "invalid flight id")
		return
	}
	quote, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *FlightHandler) list(c *gin.Context) {
	quotes, err := h.service.List(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (h *FlightHandler) search(c *gin.Context) {
	origin := c.Query("origin")
	destination := c.Query("destination")
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, codeValidationError, "origin and destination are required")
		return
	}

	quotes, err := h.service.Search(c.Request.Context(), origin, destination, c.Query("date"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (h *FlightHandler) sort(c *gin.Context) {
	field := c.DefaultQuery("sort_by", "price")
	order := c.DefaultQuery("order", "asc")

	quotes, err := h.service.Sort(c.Request.Context(), field, order)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}
