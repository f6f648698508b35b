package attendance

import (
	"context"
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/mkaleko/shule/core"
)

var ErrNotFound = core.NotFoundError("attendance record not found")

type (
	Repository interface {
		QueryAllAttendance(ctx context.Context) ([]Record, error)
		QueryAttendanceByStudent(ctx context.Context, studentID int) ([]Record, error)
		GetAttendanceByID(ctx context.Context, id int) (Record, error)
		// FindAttendanceByStudentAndDay returns ErrNotFound when the
		// (student, day) pair has no record yet.
		FindAttendanceByStudentAndDay(ctx context.Context, studentID int, day core.Day) (Record, error)
		CreateAttendance(ctx context.Context, r Record) (Record, error)
		UpdateAttendance(ctx context.Context, r Record) (Record, error)
		DeleteAttendanceByID(ctx context.Context, ids ...int) error
	}

	Service struct {
		repo Repository

		// marks for the same (student, day) pair are serialized so a
		// racing pair of upserts cannot insert two rows.
		mu    sync.Mutex
		locks map[string]*sync.Mutex
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, locks: make(map[string]*sync.Mutex)}
}

func (svc *Service) Query(ctx context.Context, qf QueryFilter) ([]Record, error) {
	qf.Clean()
	records, err := svc.repo.QueryAllAttendance(ctx)
	if err != nil {
		return nil, err
	}
	if qf.IsEmpty() {
		return records, nil
	}
	return Filter(records, qf), nil
}

func (svc *Service) QueryByStudent(ctx context.Context, studentID int) ([]Record, error) {
	return svc.repo.QueryAttendanceByStudent(ctx, studentID)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Record, error) {
	return svc.repo.GetAttendanceByID(ctx, id)
}

// Mark upserts the attendance record for (m.StudentID, m.Date). An
// existing record keeps its notes and class label; only the status is
// overwritten. A new record starts with empty notes and the "General"
// class label.
func (svc *Service) Mark(ctx context.Context, m Mark) (Record, error) {
	lock := svc.lockFor(m.StudentID, m.Date)
	lock.Lock()
	defer lock.Unlock()

	existing, err := svc.repo.FindAttendanceByStudentAndDay(ctx, m.StudentID, m.Date)
	switch {
	case err == nil:
		existing.Status = m.Status // date is the lookup key and stays put
		return svc.repo.UpdateAttendance(ctx, existing)
	case isNotFound(err):
		rec := Record{
			StudentID: m.StudentID,
			Date:      m.Date,
			Status:    m.Status,
			Notes:     "",
			Class:     DefaultClass,
		}
		return svc.repo.CreateAttendance(ctx, rec)
	default:
		return Record{}, errors.Wrap(err, "looking up attendance record")
	}
}

func (svc *Service) Delete(ctx context.Context, ids ...int) error {
	return svc.repo.DeleteAttendanceByID(ctx, ids...)
}

func (svc *Service) lockFor(studentID int, day core.Day) *sync.Mutex {
	key := fmt.Sprintf("%d@%s", studentID, day)
	svc.mu.Lock()
	defer svc.mu.Unlock()
	lock, ok := svc.locks[key]
	if !ok {
		lock = new(sync.Mutex)
		svc.locks[key] = lock
	}
	return lock
}

func isNotFound(err error) bool {
	var nf core.NotFoundError
	return errors.As(err, &nf)
}
