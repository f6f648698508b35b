package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/assignment"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/class"
	"github.com/mkaleko/shule/core/department"
	"github.com/mkaleko/shule/core/grade"
	"github.com/mkaleko/shule/core/reporting"
	"github.com/mkaleko/shule/core/student"
)

type (
	Options struct {
		Logger        core.Logger
		StudentSvc    *student.Service
		ClassSvc      *class.Service
		GradeSvc      *grade.Service
		AttendanceSvc *attendance.Service
		AssignmentSvc *assignment.Service
		DepartmentSvc *department.Service
		ReportingSvc  *reporting.Service
	}

	Server interface {
		http.Handler
		Start() error
		Stop(context.Context) error
		// Shutdown is signalled when an unrecoverable error asks for a
		// graceful stop.
		Shutdown() <-chan struct{}
	}

	server struct {
		conf *core.Config
		opts *Options
		app  *echo.Echo

		shutdown chan struct{}
	}
)

var _ Server = (*server)(nil)

func NewServer(conf *core.Config, opts *Options) Server {
	s := &server{
		conf:     conf,
		opts:     opts,
		app:      echo.New(),
		shutdown: make(chan struct{}, 1),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(middleware.CORS())
	// do not recover in DEV|TEST mode
	if !(s.conf.Debug || s.conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.signalShutdown)
	s.app.Debug = s.conf.Debug
	s.app.HideBanner = true

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	registerStudentAPI(v1, s.opts.StudentSvc, s.opts.GradeSvc, s.opts.AttendanceSvc)
	registerClassAPI(v1, s.opts.ClassSvc)
	registerGradeAPI(v1, s.opts.GradeSvc)
	registerAttendanceAPI(v1, s.opts.AttendanceSvc)
	registerAssignmentAPI(v1, s.opts.AssignmentSvc)
	registerDepartmentAPI(v1, s.opts.DepartmentSvc)
	registerReportsAPI(v1, s.opts.ReportingSvc)
}

func (s *server) Start() error {
	return s.app.Start(s.conf.Server.Addr())
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *server) Shutdown() <-chan struct{} {
	return s.shutdown
}

func (s *server) signalShutdown() {
	select {
	case s.shutdown <- struct{}{}:
	default:
	}
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to Shule API!")
}
