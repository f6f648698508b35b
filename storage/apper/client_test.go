package apperstore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/mkaleko/shule/core"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.Handler, pageSize int) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	conf := &core.Config{
		Store: core.StoreConfig{
			BaseURL:      srv.URL,
			Timeout:      2 * time.Second,
			MaxRetries:   2,
			RetryBackoff: time.Millisecond,
			PageSize:     pageSize,
		},
	}
	return NewClient(conf, nopLogger{}), srv
}

func Test_Client_FetchAllRecords_paginates(t *testing.T) {
	var offsets []int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tables/student_c/fetch", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var q Query
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		if assert.NotNil(t, q.PagingInfo) {
			offsets = append(offsets, q.PagingInfo.Offset)
		}

		var page []RawRecord
		// 3 records total, served 2 at a time
		for i := q.PagingInfo.Offset; i < 3 && i < q.PagingInfo.Offset+q.PagingInfo.Limit; i++ {
			page = append(page, RawRecord{"Id": float64(i + 1)})
		}
		_ = json.NewEncoder(w).Encode(fetchResponse{Success: true, Data: page})
	})
	client, _ := newTestClient(t, handler, 2)

	records, err := client.FetchAllRecords(context.Background(), studentTable, Fields("Id"), nil, nil)
	assert.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, []int{0, 2}, offsets)
	assert.Equal(t, 3, records[2].ID())
}

func Test_Client_GetRecordByID_missing(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(getResponse{Success: false, Message: "record not found"})
	})
	client, _ := newTestClient(t, handler, 10)

	rec, err := client.GetRecordByID(context.Background(), studentTable, 404, Fields("Id"))
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func Test_Client_CreateRecord_fieldErrors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(writeResponse{
			Success: true,
			Results: []recordResult{
				{
					Success: false,
					Message: "record rejected",
					Errors: []fieldError{
						{FieldLabel: "first_name_c", Message: "value is required"},
					},
				},
			},
		})
	})
	client, _ := newTestClient(t, handler, 10)

	created, err := client.CreateRecord(context.Background(), studentTable, []map[string]interface{}{{}})
	assert.Empty(t, created)

	var vErr *core.ValidationError
	if assert.ErrorAs(t, err, &vErr) {
		if assert.Len(t, vErr.Fields, 1) {
			assert.Equal(t, "first_name_c", vErr.Fields[0].Field)
			assert.Equal(t, "value is required", vErr.Fields[0].Error)
		}
	}
}

func Test_Client_retriesReads(t *testing.T) {
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(fetchResponse{Success: true})
	})
	client, _ := newTestClient(t, handler, 10)

	_, err := client.FetchRecords(context.Background(), gradeTable, Query{Fields: Fields("Id")})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func Test_Client_doesNotRetryWrites(t *testing.T) {
	var calls int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	})
	client, _ := newTestClient(t, handler, 10)

	_, err := client.CreateRecord(context.Background(), gradeTable, []map[string]interface{}{{}})
	assert.True(t, errors.Is(err, ErrUnavailable), fmt.Sprintf("got %v", err))
	assert.Equal(t, 1, calls)
}

func Test_Client_unreachable(t *testing.T) {
	client, srv := newTestClient(t, http.NotFoundHandler(), 10)
	srv.Close()

	_, err := client.FetchRecords(context.Background(), studentTable, Query{Fields: Fields("Id")})
	assert.True(t, errors.Is(err, ErrUnavailable), fmt.Sprintf("got %v", err))
}
