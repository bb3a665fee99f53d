package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
)

// exchangeRateHandler handles HTTP requests for the public exchange-rate endpoints.
type exchangeRateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newExchangeRateHandler(rs portssvc.RateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{rateService: rs}
}

// RegisterExchangeRateRoutes registers the public exchange-rate routes.
// These require no authentication; the rate table is not user data.
func RegisterExchangeRateRoutes(r *gin.Engine, rateService portssvc.RateSvcFacade) {
	h := newExchangeRateHandler(rateService)

	rates := r.Group("/api/v1/exchange-rates")
	{
		rates.GET("", h.getRates)
		rates.GET("/convert", h.convert)
	}
}

// getRates godoc
// @Summary Get today's exchange rates
// @Description Returns the USD-based rate table for the current day. Always succeeds; falls back to fixed rates when no fresher source is available.
// @Tags exchange-rates
// @Produce json
// @Success 200 {object} dto.ExchangeRatesResponse
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) getRates(c *gin.Context) {
	now := time.Now().UTC()
	rates := h.rateService.GetRates(c.Request.Context(), now)
	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(rates, domain.RateDay(now)))
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts an amount using today's rate table, pivoting through USD, rounded to 2 decimal places.
// @Tags exchange-rates
// @Produce json
// @Param amount query string true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Router /exchange-rates/convert [get]
func (h *exchangeRateHandler) convert(c *gin.Context) {
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must not be negative"})
		return
	}

	from, err := domain.ParseCurrency(params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	to, err := domain.ParseCurrency(params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	now := time.Now().UTC()
	rates := h.rateService.GetRates(c.Request.Context(), now)

	converted, err := domain.Convert(params.Amount, from, to, rates)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCurrencyCode) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to convert amount"})
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:          params.Amount,
		From:            string(from),
		To:              string(to),
		ConvertedAmount: converted,
		Date:            domain.RateDay(now).Format(domain.RateDateFormat),
	})
}
