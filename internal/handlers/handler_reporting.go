package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kakeibo-app/kakeibo-backend/internal/apperrors"
	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
	portssvc "github.com/kakeibo-app/kakeibo-backend/internal/core/ports/services"
	"github.com/kakeibo-app/kakeibo-backend/internal/dto"
	"github.com/kakeibo-app/kakeibo-backend/internal/middleware"
)

// reportingHandler handles HTTP requests for dashboard reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	userService      portssvc.UserSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade, us portssvc.UserSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, userService: us}
}

// registerReportingRoutes registers routes for dashboard reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, userService portssvc.UserSvcFacade) {
	h := newReportingHandler(reportingService, userService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.summary)
		reports.GET("/by-category", h.byCategory)
		reports.GET("/monthly", h.monthly)
	}
}

// resolveDisplayCurrency uses the explicit query value when given, otherwise
// the user's default currency.
func (h *reportingHandler) resolveDisplayCurrency(c *gin.Context, userID, explicit string) (domain.Currency, error) {
	if explicit != "" {
		return domain.ParseCurrency(explicit)
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		return "", err
	}
	if user.DefaultCurrency == "" {
		return domain.BaseCurrency, nil
	}
	return user.DefaultCurrency, nil
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	fromT, err := time.ParseInLocation(domain.RateDateFormat, from, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	toT, err := time.ParseInLocation(domain.RateDateFormat, to, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if toT.Before(fromT) {
		return time.Time{}, time.Time{}, errors.New("'to' date is before 'from' date")
	}
	return fromT, toT, nil
}

// summary godoc
// @Summary Period summary
// @Description Returns total income, total expense, and balance for a period, converted into the display currency.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string true "End date (inclusive, YYYY-MM-DD)"
// @Param displayCurrency query string false "Display currency (defaults to the user's preference)"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) summary(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	from, to, err := parseDateRange(params.From, params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	display, err := h.resolveDisplayCurrency(c, userID, params.DisplayCurrency)
	if err != nil {
		h.respondReportingError(c, err, "Failed to resolve display currency")
		return
	}

	summary, err := h.reportingService.Summary(c.Request.Context(), userID, from, to, display)
	if err != nil {
		h.respondReportingError(c, err, "Failed to build summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// byCategory godoc
// @Summary Category breakdown
// @Description Returns per-category totals for a period and transaction type, converted into the display currency, largest first.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (inclusive, YYYY-MM-DD)"
// @Param to query string true "End date (inclusive, YYYY-MM-DD)"
// @Param type query string false "INCOME or EXPENSE (default EXPENSE)"
// @Param displayCurrency query string false "Display currency (defaults to the user's preference)"
// @Success 200 {array} dto.CategoryTotalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/by-category [get]
func (h *reportingHandler) byCategory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ByCategoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	from, to, err := parseDateRange(params.From, params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txnType := domain.Expense
	if params.Type != "" {
		txnType = domain.TransactionType(params.Type)
	}

	display, err := h.resolveDisplayCurrency(c, userID, params.DisplayCurrency)
	if err != nil {
		h.respondReportingError(c, err, "Failed to resolve display currency")
		return
	}

	totals, err := h.reportingService.ByCategory(c.Request.Context(), userID, from, to, txnType, display)
	if err != nil {
		h.respondReportingError(c, err, "Failed to build category breakdown")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryTotalResponse(totals))
}

// monthly godoc
// @Summary Monthly totals
// @Description Returns converted income and expense for each month of a calendar year.
// @Tags reports
// @Produce json
// @Param year query int true "Calendar year"
// @Param displayCurrency query string false "Display currency (defaults to the user's preference)"
// @Success 200 {array} dto.MonthlyTotalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) monthly(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.MonthlyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	display, err := h.resolveDisplayCurrency(c, userID, params.DisplayCurrency)
	if err != nil {
		h.respondReportingError(c, err, "Failed to resolve display currency")
		return
	}

	totals, err := h.reportingService.Monthly(c.Request.Context(), userID, params.Year, display)
	if err != nil {
		h.respondReportingError(c, err, "Failed to build monthly totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMonthlyTotalResponse(totals))
}

func (h *reportingHandler) respondReportingError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidCurrencyCode):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMsg})
	}
}
