package echoapi

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/assignment"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/class"
	"github.com/mkaleko/shule/core/department"
	"github.com/mkaleko/shule/core/grade"
	"github.com/mkaleko/shule/core/reporting"
	"github.com/mkaleko/shule/core/student"
	logsvc "github.com/mkaleko/shule/services/logger"
	inmemdb "github.com/mkaleko/shule/storage/inmem"
)

type testEnv struct {
	server Server

	studentRepo    student.Repository
	attendanceRepo attendance.Repository
	gradeRepo      grade.Repository
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	db := inmemdb.Open()
	studentRepo := inmemdb.NewStudentRepository(db)
	classRepo := inmemdb.NewClassRepository(db)
	gradeRepo := inmemdb.NewGradeRepository(db)
	attendanceRepo := inmemdb.NewAttendanceRepository(db)
	assignmentRepo := inmemdb.NewAssignmentRepository(db)
	departmentRepo := inmemdb.NewDepartmentRepository(db)

	conf := &core.Config{TestMode: true}
	logger := logsvc.NewConsoleLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags))

	srv := NewServer(conf, &Options{
		Logger:        logger,
		StudentSvc:    student.NewService(studentRepo),
		ClassSvc:      class.NewService(classRepo),
		GradeSvc:      grade.NewService(gradeRepo),
		AttendanceSvc: attendance.NewService(attendanceRepo),
		AssignmentSvc: assignment.NewService(assignmentRepo),
		DepartmentSvc: department.NewService(departmentRepo),
		ReportingSvc:  reporting.NewService(studentRepo, attendanceRepo, gradeRepo),
	})

	return &testEnv{
		server:         srv,
		studentRepo:    studentRepo,
		attendanceRepo: attendanceRepo,
		gradeRepo:      gradeRepo,
	}
}

func (env *testEnv) request(t *testing.T, method, path string, data interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if data != nil {
		if err := json.NewEncoder(&body).Encode(data); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echoHeaderContentType, echoMIMEApplicationJSON)
	rec := httptest.NewRecorder()
	env.server.ServeHTTP(rec, req)
	return rec
}

const (
	echoHeaderContentType   = "Content-Type"
	echoMIMEApplicationJSON = "application/json"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
}

func TestServer_home(t *testing.T) {
	env := setup(t)
	rec := env.request(t, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("home status = %d, want %d", rec.Code, http.StatusOK)
	}
}
