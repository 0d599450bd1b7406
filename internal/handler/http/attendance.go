package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly/attendly-backend-go/internal/handler/http/response"
)

// maxUploadSize caps attendance workbooks at 10 MB.
const maxUploadSize = 10 << 20

type AttendanceHandler struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// ListDaily handles GET /api/v1/attendance?employeeId=&month=
func (h *AttendanceHandler) ListDaily(w http.ResponseWriter, r *http.Request) {
	var errs validationErrors
	employeeID := errs.employeeID(r.URL.Query().Get("employeeId"))
	month := errs.month(r.URL.Query().Get("month"))
	if err := errs.result(); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.attendanceService.ListDaily(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Import handles POST /api/v1/attendance/import, a multipart upload with the
// workbook under the "file" field.
func (h *AttendanceHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.ValidationError(w, map[string]string{"file": "file is required"})
		return
	}
	defer file.Close()

	summary, err := h.attendanceService.ImportWorkbook(r.Context(), file, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance imported", summary)
}

// GapFill handles POST /api/v1/attendance/gap-fill
func (h *AttendanceHandler) GapFill(w http.ResponseWriter, r *http.Request) {
	var req attendance.GapFillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.attendanceService.FillMissing(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Missing attendance filled", resp)
}
