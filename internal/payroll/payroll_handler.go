package payroll

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateGrossPayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.CalculateGrossPay(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Generate(c *gin.Context) {
	year, month, ok := h.parsePeriodParams(c)
	if !ok {
		return
	}

	resp, err := h.service.GenerateMonthlySnapshots(c.Request.Context(), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSnapshots(c *gin.Context) {
	// The employee listing spans all periods, so year/month are only
	// required on the other paths.
	if employeeID := c.Query("employee_id"); employeeID != "" {
		resp, err := h.service.GetSnapshotsForEmployee(c.Request.Context(), employeeID)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	year, month, ok := h.parsePeriodQuery(c)
	if !ok {
		return
	}

	if departmentID := c.Query("department_id"); departmentID != "" {
		resp, err := h.service.GetSnapshotsByDepartment(c.Request.Context(), departmentID, year, month)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	resp, err := h.service.GetSnapshots(c.Request.Context(), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDepartmentSummary(c *gin.Context) {
	year, month, ok := h.parsePeriodParams(c)
	if !ok {
		return
	}

	resp, err := h.service.GetDepartmentSummary(c.Request.Context(), year, month)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) parsePeriodParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "year must be an integer", nil)
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "month must be between 1 and 12", nil)
		return 0, 0, false
	}
	return year, month, true
}

func (h *Handler) parsePeriodQuery(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "year query parameter is required", nil)
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "month query parameter must be between 1 and 12", nil)
		return 0, 0, false
	}
	return year, month, true
}

// cacheIdempotentResponse stores the generation result under the key the
// idempotency middleware reserved, so a retried request replays the outcome
// instead of regenerating.
func (h *Handler) cacheIdempotentResponse(c *gin.Context, resp GenerationResultResponse) {
	cacheKey := c.GetString("idempotency_cache_key")
	lockKey := c.GetString("idempotency_lock_key")
	if cacheKey == "" || h.rdb == nil {
		return
	}

	if payload, err := json.Marshal(resp); err == nil {
		h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour)
	}
	if lockKey != "" {
		h.rdb.Del(c.Request.Context(), lockKey)
	}
}
