package apperstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkaleko/shule/core/assignment"
)

func Test_decodeAssignment_title(t *testing.T) {
	tests := []struct {
		name string
		rec  RawRecord
		want string
	}{
		{name: "migrated title wins", rec: RawRecord{"title_c": "Essay", "Name": "Old essay"}, want: "Essay"},
		{name: "empty migrated title falls back", rec: RawRecord{"title_c": "", "Name": "Old essay"}, want: "Old essay"},
		{name: "builtin only", rec: RawRecord{"Name": "Old essay"}, want: "Old essay"},
		{name: "neither", rec: RawRecord{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeAssignment(tt.rec).Title)
		})
	}
}

func Test_encodeAssignment_writesBothTitleNames(t *testing.T) {
	fields := encodeAssignment(assignment.Assignment{Title: "Essay", Tags: "english,writing"})
	assert.Equal(t, "Essay", fields["title_c"])
	assert.Equal(t, "Essay", fields["Name"])
	assert.Equal(t, "english,writing", fields["Tags"])
}
