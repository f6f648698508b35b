package attendance_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkaleko/shule/core"
	"github.com/mkaleko/shule/core/attendance"
	inmemdb "github.com/mkaleko/shule/storage/inmem"
)

func setup() (*attendance.Service, attendance.Repository) {
	repo := inmemdb.NewAttendanceRepository(inmemdb.Open())
	return attendance.NewService(repo), repo
}

func Test_Service_Mark_upserts(t *testing.T) {
	svc, repo := setup()
	ctx := context.Background()
	today := core.Today()

	// first mark creates the record with defaults
	rec, err := svc.Mark(ctx, attendance.Mark{StudentID: 1, Date: today, Status: attendance.StatusPresent})
	assert.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, "", rec.Notes)
	assert.Equal(t, attendance.DefaultClass, rec.Class)

	// hand-edit notes to prove the next mark preserves them
	rec.Notes = "left early"
	rec.Class = "Homeroom"
	_, err = repo.UpdateAttendance(ctx, rec)
	assert.NoError(t, err)

	// second mark on the same day updates in place
	rec2, err := svc.Mark(ctx, attendance.Mark{StudentID: 1, Date: today, Status: attendance.StatusTardy})
	assert.NoError(t, err)
	assert.Equal(t, rec.ID, rec2.ID)
	assert.Equal(t, attendance.StatusTardy, rec2.Status)
	assert.Equal(t, "left early", rec2.Notes)
	assert.Equal(t, "Homeroom", rec2.Class)

	// one record per (student, day)
	records, err := repo.QueryAttendanceByStudent(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	// a different day gets its own record
	_, err = svc.Mark(ctx, attendance.Mark{StudentID: 1, Date: today.AddDays(-1), Status: attendance.StatusAbsent})
	assert.NoError(t, err)
	records, _ = repo.QueryAttendanceByStudent(ctx, 1)
	assert.Len(t, records, 2)
}

func Test_Service_Mark_concurrent(t *testing.T) {
	svc, repo := setup()
	ctx := context.Background()
	today := core.Today()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Mark(ctx, attendance.Mark{StudentID: 7, Date: today, Status: attendance.StatusPresent})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	records, err := repo.QueryAttendanceByStudent(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func Test_Mark_Validate(t *testing.T) {
	m := attendance.Mark{StudentID: 1, Status: "present"}
	assert.NoError(t, m.Validate())
	assert.Equal(t, attendance.StatusPresent, m.Status)
	assert.True(t, m.Date.Equal(core.Today()))

	m = attendance.Mark{StudentID: 1, Status: "Expelled"}
	assert.Error(t, m.Validate())

	m = attendance.Mark{Status: attendance.StatusPresent}
	assert.Error(t, m.Validate())
}
