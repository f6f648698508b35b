package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleStudents() []Student {
	return []Student{
		{ID: 1, FirstName: "Amani", LastName: "Mwangi", Email: "amani@test.cd", Status: StatusActive, GradeLevel: GradeLevel10, StudentID: "STU-0001"},
		{ID: 2, FirstName: "Beatrice", LastName: "Okoro", Email: "bea@test.cd", Status: StatusInactive, GradeLevel: GradeLevel11, StudentID: "STU-0002"},
		{ID: 3, FirstName: "Chiku", LastName: "Ndiaye", Email: "chiku@test.cd", Status: StatusActive, GradeLevel: GradeLevel10, StudentID: "STU-0003"},
	}
}

func ids(students []Student) []int {
	out := make([]int, len(students))
	for i, s := range students {
		out[i] = s.ID
	}
	return out
}

func Test_Filter(t *testing.T) {
	students := sampleStudents()

	tests := []struct {
		name string
		qf   QueryFilter
		want []int
	}{
		{name: "empty filter matches all", qf: QueryFilter{}, want: []int{1, 2, 3}},
		{name: "all sentinel disables status", qf: QueryFilter{Status: "all"}, want: []int{1, 2, 3}},
		{name: "status", qf: QueryFilter{Status: "active"}, want: []int{1, 3}},
		{name: "grade level", qf: QueryFilter{GradeLevel: GradeLevel11}, want: []int{2}},
		{name: "search first name", qf: QueryFilter{Search: "ama"}, want: []int{1}},
		{name: "search last name case-insensitive", qf: QueryFilter{Search: "OKORO"}, want: []int{2}},
		{name: "search student id", qf: QueryFilter{Search: "stu-0003"}, want: []int{3}},
		{name: "search and status compose", qf: QueryFilter{Search: "test.cd", Status: StatusActive}, want: []int{1, 3}},
		{name: "no match", qf: QueryFilter{Search: "zzz"}, want: []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(students, tt.qf)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	// input order is preserved and input never mutated
	got := Filter(students, QueryFilter{Status: StatusActive})
	assert.Equal(t, []int{1, 3}, ids(got))
	assert.Equal(t, []int{1, 2, 3}, ids(students))
}

func Test_Filter_idempotent(t *testing.T) {
	students := sampleStudents()

	for _, qf := range []QueryFilter{
		{},
		{Status: StatusActive},
		{Search: "test.cd", GradeLevel: GradeLevel10},
		{Search: "zzz"},
	} {
		once := Filter(students, qf)
		twice := Filter(once, qf)
		assert.Equal(t, ids(once), ids(twice))
	}
}

func Test_QueryFilter_IsEmpty(t *testing.T) {
	qf := QueryFilter{Search: "  ", Status: "all"}
	qf.Clean()
	assert.True(t, qf.IsEmpty())

	qf = QueryFilter{Status: StatusPending}
	assert.False(t, qf.IsEmpty())
}

func Test_NewStudent_Validate(t *testing.T) {
	ns := NewStudent{FirstName: "  Amani ", LastName: "Mwangi", Email: "AMA@Test.CD", Status: "active", GradeLevel: "10TH"}
	assert.NoError(t, ns.Validate())
	assert.Equal(t, "Amani", ns.FirstName)
	assert.Equal(t, "ama@test.cd", ns.Email)
	assert.Equal(t, StatusActive, ns.Status)
	assert.Equal(t, GradeLevel10, ns.GradeLevel)

	ns = NewStudent{LastName: "Mwangi"}
	assert.Error(t, ns.Validate())

	ns = NewStudent{FirstName: "Amani", LastName: "Mwangi", Status: "Expelled"}
	assert.Error(t, ns.Validate())
}
