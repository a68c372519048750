package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPayrollService struct {
	forEmployeeCalls int
	byPeriodCalls    int
}

func (s *stubPayrollService) CalculateGrossPay(ctx context.Context, req payroll.CalculateGrossPayRequest) (payroll.SnapshotResponse, error) {
	return payroll.SnapshotResponse{}, nil
}

func (s *stubPayrollService) GenerateMonthlySnapshots(ctx context.Context, year, month int) (payroll.GenerationResultResponse, error) {
	return payroll.GenerationResultResponse{}, nil
}

func (s *stubPayrollService) GetSnapshots(ctx context.Context, year, month int) ([]payroll.SnapshotResponse, error) {
	s.byPeriodCalls++
	return nil, nil
}

func (s *stubPayrollService) GetSnapshotsForEmployee(ctx context.Context, employeeID string) ([]payroll.SnapshotResponse, error) {
	s.forEmployeeCalls++
	return []payroll.SnapshotResponse{{EmployeeID: employeeID}}, nil
}

func (s *stubPayrollService) GetSnapshotsByDepartment(ctx context.Context, departmentID string, year, month int) ([]payroll.SnapshotResponse, error) {
	return nil, nil
}

func (s *stubPayrollService) GetDepartmentSummary(ctx context.Context, year, month int) (payroll.DepartmentSummaryResponse, error) {
	return payroll.DepartmentSummaryResponse{}, nil
}

func (s *stubPayrollService) RefreshDepartmentSummary(ctx context.Context, year, month int) error {
	return nil
}

func newSnapshotRouter(t *testing.T) (*gin.Engine, *stubPayrollService) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	stub := &stubPayrollService{}
	handler := payroll.NewHandler(stub, nil)

	r := gin.New()
	r.GET("/payroll/snapshots", handler.GetSnapshots)
	return r, stub
}

func TestHandler_GetSnapshots(t *testing.T) {
	t.Run("Employee Listing Needs No Period", func(t *testing.T) {
		r, stub := newSnapshotRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/payroll/snapshots?employee_id="+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, stub.forEmployeeCalls)
	})

	t.Run("Period Listing Requires Year And Month", func(t *testing.T) {
		r, stub := newSnapshotRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/payroll/snapshots", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, stub.byPeriodCalls)
	})

	t.Run("Period Listing", func(t *testing.T) {
		r, stub := newSnapshotRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/payroll/snapshots?year=2025&month=6", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, stub.byPeriodCalls)
	})
}
