package apperstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RawRecord_Value_precedence(t *testing.T) {
	tests := []struct {
		name string
		rec  RawRecord
		want interface{}
	}{
		{name: "suffixed wins", rec: RawRecord{"first_name_c": "Amani", "firstName": "Old"}, want: "Amani"},
		{name: "nil suffixed falls back", rec: RawRecord{"first_name_c": nil, "firstName": "Old"}, want: "Old"},
		{name: "legacy only", rec: RawRecord{"firstName": "Old"}, want: "Old"},
		{name: "absent", rec: RawRecord{}, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.Value("first_name"))
		})
	}
}

func Test_legacyName(t *testing.T) {
	tests := []struct {
		logical string
		want    string
	}{
		{"first_name", "firstName"},
		{"date_of_birth", "dateOfBirth"},
		{"status", "status"},
		{"grade", "grade"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, legacyName(tt.logical))
	}
}

func Test_RawRecord_typedReaders(t *testing.T) {
	rec := RawRecord{
		"Id":           float64(7),
		"student_id_c": map[string]interface{}{"Id": float64(12), "Name": "Amani"},
		"grade_c":      "42.5",
		"max_points_c": float64(50),
		"date_c":       "2026-03-02",
		"scheduleDays": "Mon, Wed,Fri",
		"studentIds":   "1,2,3",
		"notes_c":      float64(99), // wrong type, must not panic
	}

	assert.Equal(t, 7, rec.ID())
	assert.Equal(t, 12, rec.Int("student_id"))

	if score := rec.FloatPtr("grade"); assert.NotNil(t, score) {
		assert.Equal(t, 42.5, *score)
	}
	if max := rec.FloatPtr("max_points"); assert.NotNil(t, max) {
		assert.Equal(t, 50.0, *max)
	}
	assert.Nil(t, rec.FloatPtr("missing"))

	assert.Equal(t, "2026-03-02", rec.Day("date").String())
	assert.True(t, rec.Day("missing").IsZero())

	assert.Equal(t, []string{"Mon", "Wed", "Fri"}, rec.StringList("schedule_days"))
	assert.Equal(t, []int{1, 2, 3}, rec.IntList("student_ids"))

	assert.Equal(t, "", rec.String("notes"))
}

func Test_joinInts(t *testing.T) {
	assert.Equal(t, "", joinInts(nil))
	assert.Equal(t, "1,2,3", joinInts([]int{1, 2, 3}))
}
