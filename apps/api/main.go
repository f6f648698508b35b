package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/assignment"
	"github.com/mkaleko/shule/core/attendance"
	"github.com/mkaleko/shule/core/class"
	"github.com/mkaleko/shule/core/department"
	"github.com/mkaleko/shule/core/grade"
	"github.com/mkaleko/shule/core/reporting"
	"github.com/mkaleko/shule/core/student"

	echoapi "github.com/mkaleko/shule/apps/api/echo"
	logsvc "github.com/mkaleko/shule/services/logger"
	apperstore "github.com/mkaleko/shule/storage/apper"
	"github.com/mkaleko/shule/storage/database"
	inmemdb "github.com/mkaleko/shule/storage/inmem"
)

type repositories struct {
	student    student.Repository
	class      class.Repository
	grade      grade.Repository
	attendance attendance.Repository
	assignment assignment.Repository
	department department.Repository
}

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}

	var logger core.Logger
	if conf.Debug {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, conf)
	}

	repos, cleanup, err := openRepositories(conf, logger)
	if err != nil {
		logger.Fatal("opening storage", err)
	}
	defer cleanup()

	studentSvc := student.NewService(repos.student)
	classSvc := class.NewService(repos.class)
	gradeSvc := grade.NewService(repos.grade)
	attendanceSvc := attendance.NewService(repos.attendance)
	assignmentSvc := assignment.NewService(repos.assignment)
	departmentSvc := department.NewService(repos.department)
	reportingSvc := reporting.NewService(repos.student, repos.attendance, repos.grade)

	app := echoapi.NewServer(conf, &echoapi.Options{
		Logger:        logger,
		StudentSvc:    studentSvc,
		ClassSvc:      classSvc,
		GradeSvc:      gradeSvc,
		AttendanceSvc: attendanceSvc,
		AssignmentSvc: assignmentSvc,
		DepartmentSvc: departmentSvc,
		ReportingSvc:  reportingSvc,
	})

	serverErrs := make(chan error, 1)
	go func() {
		logger.Info("server listening on " + conf.Server.Addr())
		serverErrs <- app.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-serverErrs:
		logger.Fatal("server error", err)
	case <-app.Shutdown():
		logger.Warn("shutdown signalled by server")
	case sig := <-quit:
		logger.Info("received signal " + sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err = app.Stop(ctx); err != nil {
		logger.Error("stopping server", err)
	}
}

// openRepositories picks the storage backing: the remote record store
// by default, PostgreSQL when configured, in-memory as a dev fallback.
func openRepositories(conf *core.Config, logger core.Logger) (repositories, func(), error) {
	noop := func() {}

	if conf.Store.BaseURL != "" {
		client := apperstore.NewClient(conf, logger)
		return repositories{
			student:    apperstore.NewStudentRepository(client),
			class:      apperstore.NewClassRepository(client),
			grade:      apperstore.NewGradeRepository(client),
			attendance: apperstore.NewAttendanceRepository(client),
			assignment: apperstore.NewAssignmentRepository(client),
			department: apperstore.NewDepartmentRepository(client),
		}, noop, nil
	}

	if conf.Database.Name != "" {
		db, err := database.Open(conf)
		if err != nil {
			return repositories{}, noop, err
		}
		return repositories{
			student:    database.NewStudentRepository(db),
			class:      database.NewClassRepository(db),
			grade:      database.NewGradeRepository(db),
			attendance: database.NewAttendanceRepository(db),
			assignment: database.NewAssignmentRepository(db),
			department: database.NewDepartmentRepository(db),
		}, func() { _ = db.Close() }, nil
	}

	logger.Warn("no record store or database configured; using in-memory storage")
	db := inmemdb.Open()
	return repositories{
		student:    inmemdb.NewStudentRepository(db),
		class:      inmemdb.NewClassRepository(db),
		grade:      inmemdb.NewGradeRepository(db),
		attendance: inmemdb.NewAttendanceRepository(db),
		assignment: inmemdb.NewAssignmentRepository(db),
		department: inmemdb.NewDepartmentRepository(db),
	}, noop, nil
}
