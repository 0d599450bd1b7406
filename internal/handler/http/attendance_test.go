package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendly/attendly-backend-go/internal/config"
	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/domain/employee"
	"github.com/attendly/attendly-backend-go/internal/domain/report"
)

type stubAttendanceService struct {
	daily   attendance.DailyAttendanceResponse
	gapFill attendance.GapFillResponse
	summary attendance.ImportSummary
	err     error
}

func (s *stubAttendanceService) ImportWorkbook(ctx context.Context, file io.Reader, filename string) (attendance.ImportSummary, error) {
	return s.summary, s.err
}

func (s *stubAttendanceService) ImportRows(ctx context.Context, rows []attendance.ImportRow) (attendance.ImportSummary, error) {
	return s.summary, s.err
}

func (s *stubAttendanceService) ListDaily(ctx context.Context, employeeID int64, month string) (attendance.DailyAttendanceResponse, error) {
	return s.daily, s.err
}

func (s *stubAttendanceService) FillMissing(ctx context.Context, req attendance.GapFillRequest) (attendance.GapFillResponse, error) {
	return s.gapFill, s.err
}

type stubEmployeeService struct {
	resp employee.ListEmployeesResponse
	err  error
}

func (s *stubEmployeeService) List(ctx context.Context) (employee.ListEmployeesResponse, error) {
	return s.resp, s.err
}

type stubReportService struct {
	employeeSummary report.EmployeeSummaryResponse
	monthlySummary  report.MonthlySummaryResponse
	err             error
}

func (s *stubReportService) EmployeeSummary(ctx context.Context, employeeID int64, month string) (report.EmployeeSummaryResponse, error) {
	return s.employeeSummary, s.err
}

func (s *stubReportService) MonthlySummary(ctx context.Context, month string) (report.MonthlySummaryResponse, error) {
	return s.monthlySummary, s.err
}

func testRouter(attendanceSvc attendance.AttendanceService, employeeSvc employee.EmployeeService, reportSvc report.ReportService) http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.CORSAllowedOrigin = "http://localhost:3000"

	return NewRouter(
		cfg,
		NewEmployeeHandler(employeeSvc),
		NewAttendanceHandler(attendanceSvc),
		NewReportHandler(reportSvc),
	)
}

func newUploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/import", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAttendanceHandler_ListDaily_MissingParams(t *testing.T) {
	router := testRouter(&stubAttendanceService{}, &stubEmployeeService{}, &stubReportService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	details := body["error"].(map[string]interface{})["details"].(map[string]interface{})
	assert.Contains(t, details, "employeeId")
	assert.Contains(t, details, "month")
}

func TestAttendanceHandler_ListDaily_InvalidParams(t *testing.T) {
	router := testRouter(&stubAttendanceService{}, &stubEmployeeService{}, &stubReportService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance?employeeId=abc&month=2024-13", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	details := decodeBody(t, rec)["error"].(map[string]interface{})["details"].(map[string]interface{})
	assert.Contains(t, details, "employeeId")
	assert.Contains(t, details, "month")
}

func TestAttendanceHandler_ListDaily_Success(t *testing.T) {
	svc := &stubAttendanceService{
		daily: attendance.DailyAttendanceResponse{EmployeeID: 7, Month: "2024-03", TotalDays: 0, Records: []attendance.DailyRecordResponse{}},
	}
	router := testRouter(svc, &stubEmployeeService{}, &stubReportService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance?employeeId=7&month=2024-03", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["employeeId"])
	assert.Equal(t, "2024-03", data["month"])
}

func TestAttendanceHandler_ListDaily_UnknownEmployee(t *testing.T) {
	router := testRouter(&stubAttendanceService{err: employee.ErrEmployeeNotFound}, &stubEmployeeService{}, &stubReportService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/attendance?employeeId=999&month=2024-03", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_Import_MissingFile(t *testing.T) {
	router := testRouter(&stubAttendanceService{}, &stubEmployeeService{}, &stubReportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/import", strings.NewReader("--x--\r\n"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	details := decodeBody(t, rec)["error"].(map[string]interface{})["details"].(map[string]interface{})
	assert.Contains(t, details, "file")
}

func TestAttendanceHandler_Import_BodyTooLarge(t *testing.T) {
	router := testRouter(&stubAttendanceService{}, &stubEmployeeService{}, &stubReportService{})

	req := newUploadRequest(t, "report.xlsx", bytes.Repeat([]byte("a"), maxUploadSize+1))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Import_EmptyWorkbook(t *testing.T) {
	router := testRouter(&stubAttendanceService{err: attendance.ErrWorkbookEmpty}, &stubEmployeeService{}, &stubReportService{})

	req := newUploadRequest(t, "report.xlsx", []byte("stub"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_Import_Success(t *testing.T) {
	svc := &stubAttendanceService{
		summary: attendance.ImportSummary{BatchID: "b-1", TotalRows: 3, SuccessCount: 2, ErrorCount: 1, Errors: []string{"Row 4: invalid date"}},
	}
	router := testRouter(svc, &stubEmployeeService{}, &stubReportService{})

	req := newUploadRequest(t, "report.xlsx", []byte("stub"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "b-1", data["batchId"])
	assert.Equal(t, float64(2), data["successCount"])
	assert.Equal(t, float64(1), data["errorCount"])
}

func TestAttendanceHandler_GapFill_InvalidBody(t *testing.T) {
	router := testRouter(&stubAttendanceService{}, &stubEmployeeService{}, &stubReportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/gap-fill", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAttendanceHandler_GapFill_Success(t *testing.T) {
	svc := &stubAttendanceService{
		gapFill: attendance.GapFillResponse{EmployeeID: 7, Month: "2024-03", InsertedLeaves: 25},
	}
	router := testRouter(svc, &stubEmployeeService{}, &stubReportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/gap-fill", strings.NewReader(`{"employeeId":7,"month":"2024-03"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(25), data["insertedLeaves"])
}

func TestReportHandler_EmployeeSummary_Success(t *testing.T) {
	svc := &stubReportService{
		employeeSummary: report.EmployeeSummaryResponse{EmployeeID: 7, Month: "2024-03", ExpectedHours: 170, ActualHours: 153, LeavesUsed: 2, Productivity: 90},
	}
	router := testRouter(&stubAttendanceService{}, &stubEmployeeService{}, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/employee-summary?employeeId=7&month=2024-03", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(90), data["productivity"])
	assert.Equal(t, float64(2), data["leavesUsed"])
}

func TestReportHandler_MonthlySummary_MissingMonth(t *testing.T) {
	router := testRouter(&stubAttendanceService{}, &stubEmployeeService{}, &stubReportService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/reports/monthly-summary", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestEmployeeHandler_List_Success(t *testing.T) {
	svc := &stubEmployeeService{
		resp: employee.ListEmployeesResponse{Total: 1, Employees: []employee.EmployeeResponse{{ID: 1, EmployeeCode: "E1", Name: "Employee 1"}}},
	}
	router := testRouter(&stubAttendanceService{}, svc, &stubReportService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
}

func TestRouter_WrongMethod(t *testing.T) {
	router := testRouter(&stubAttendanceService{}, &stubEmployeeService{}, &stubReportService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/employees", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
