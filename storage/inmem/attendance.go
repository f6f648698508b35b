package inmemdb

import (
	"context"
	"sort"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) query() []attendance.Record {
	records := make([]attendance.Record, 0, len(repo.db.table))
	for _, r := range repo.db.table {
		records = append(records, *r)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}

func (repo *attendanceRepository) QueryAllAttendance(ctx context.Context) ([]attendance.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *attendanceRepository) QueryAttendanceByStudent(ctx context.Context, studentID int) ([]attendance.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var records []attendance.Record
	for _, r := range repo.query() {
		if r.StudentID == studentID {
			records = append(records, r)
		}
	}
	return records, nil
}

func (repo *attendanceRepository) GetAttendanceByID(ctx context.Context, id int) (attendance.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.table[id]; ok {
		return *r, nil
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) FindAttendanceByStudentAndDay(ctx context.Context, studentID int, day core.Day) (attendance.Record, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, r := range repo.query() {
		if r.StudentID == studentID && r.Date.Equal(day) {
			return r, nil
		}
	}
	return attendance.Record{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) CreateAttendance(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	r.ID = repo.db.pkCount
	repo.db.table[r.ID] = &r
	return r, nil
}

func (repo *attendanceRepository) UpdateAttendance(ctx context.Context, r attendance.Record) (attendance.Record, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[r.ID]; !ok {
		return attendance.Record{}, attendance.ErrNotFound
	}
	repo.db.table[r.ID] = &r
	return r, nil
}

func (repo *attendanceRepository) DeleteAttendanceByID(ctx context.Context, ids ...int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
