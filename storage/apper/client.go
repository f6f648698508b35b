// Package apperstore speaks to the remote record-storage API: generic
// CRUD over named tables of loosely-shaped records. Each entity
// repository in this package wraps the shared Client, names its table
// and fields, and converts raw records to canonical structs on the way
// in.
package apperstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/mkaleko/shule/core"
)

// Table names.
const (
	studentTable    = "student_c"
	classTable      = "class_c"
	gradeTable      = "grade_c"
	attendanceTable = "attendance_c"
	assignmentTable = "assignments_c"
	departmentTable = "department_c"
)

// Where operators.
const (
	OpEqualTo    = "EqualTo"
	OpLessThan   = "LessThan"
	OpNotEqualTo = "NotEqualTo"
)

// Sort directions.
const (
	SortASC  = "ASC"
	SortDESC = "DESC"
)

// ErrUnavailable means the store could not be reached at all; callers
// usually degrade to an empty collection after logging it.
var ErrUnavailable = errors.New("record store unavailable")

type (
	Where struct {
		FieldName string        `json:"fieldName"`
		Operator  string        `json:"operator"`
		Values    []interface{} `json:"values"`
	}

	OrderBy struct {
		FieldName string `json:"fieldName"`
		SortType  string `json:"sorttype"`
	}

	PagingInfo struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	}

	FieldSpec struct {
		Field FieldName `json:"field"`
	}

	FieldName struct {
		Name string `json:"Name"`
	}

	Query struct {
		Fields     []FieldSpec `json:"fields"`
		Where      []Where     `json:"where,omitempty"`
		OrderBy    []OrderBy   `json:"orderBy,omitempty"`
		PagingInfo *PagingInfo `json:"pagingInfo,omitempty"`
	}

	fetchResponse struct {
		Success bool        `json:"success"`
		Data    []RawRecord `json:"data"`
		Message string      `json:"message"`
	}

	getResponse struct {
		Success bool      `json:"success"`
		Data    RawRecord `json:"data"`
		Message string    `json:"message"`
	}

	writeRequest struct {
		Records []map[string]interface{} `json:"records"`
	}

	deleteRequest struct {
		RecordIDs []int `json:"RecordIds"`
	}

	recordResult struct {
		Success bool         `json:"success"`
		Data    RawRecord    `json:"data"`
		Message string       `json:"message"`
		Errors  []fieldError `json:"errors"`
	}

	fieldError struct {
		FieldLabel string `json:"fieldLabel"`
		Message    string `json:"message"`
	}

	writeResponse struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Results []recordResult `json:"results"`
	}

	Client struct {
		http         *http.Client
		baseURL      string
		projectID    string
		publicKey    string
		maxRetries   int
		retryBackoff time.Duration
		pageSize     int
		log          core.Logger
	}
)

func Fields(names ...string) []FieldSpec {
	specs := make([]FieldSpec, len(names))
	for i, n := range names {
		specs[i] = FieldSpec{Field: FieldName{Name: n}}
	}
	return specs
}

func NewClient(conf *core.Config, log core.Logger) *Client {
	return &Client{
		http:         &http.Client{Timeout: conf.Store.Timeout},
		baseURL:      conf.Store.BaseURL,
		projectID:    conf.Store.ProjectID,
		publicKey:    conf.Store.PublicKey,
		maxRetries:   conf.Store.MaxRetries,
		retryBackoff: conf.Store.RetryBackoff,
		pageSize:     conf.Store.PageSize,
		log:          log,
	}
}

// post sends one RPC to the store. Retries (with growing backoff) only
// happen when retry is true AND the failure is transport-level or a
// 5xx — validation failures are never retryable, and non-idempotent
// writes must not be resent.
func (c *Client) post(ctx context.Context, path string, body, out interface{}, retry bool) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encoding request")
	}

	attempts := 1
	if retry {
		attempts += c.maxRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * c.retryBackoff):
			}
		}
		lastErr = c.postOnce(ctx, path, payload, out)
		if lastErr == nil || !errors.Is(lastErr, ErrUnavailable) {
			return lastErr
		}
	}
	return lastErr
}

func (c *Client) postOnce(ctx context.Context, path string, payload []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.publicKey)
	req.Header.Set("X-Project-ID", c.projectID)
	req.Header.Set("X-Request-ID", uuid.NewString())

	res, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.log.Warn("record store request failed", err)
		return errors.Wrapf(ErrUnavailable, "POST %s: %v", path, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= http.StatusInternalServerError {
		c.log.Warn(fmt.Sprintf("record store returned %d for %s", res.StatusCode, path))
		return errors.Wrapf(ErrUnavailable, "POST %s: status %d", path, res.StatusCode)
	}
	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decoding response of POST %s", path)
	}
	return nil
}

func errNoRecordReturned(op, table string) error {
	return errors.Errorf("%s on %s returned no record", op, table)
}

func tablePath(table, op string) string {
	return fmt.Sprintf("/api/tables/%s/%s", table, op)
}

// FetchRecords runs one paged query against a table.
func (c *Client) FetchRecords(ctx context.Context, table string, q Query) ([]RawRecord, error) {
	var res fetchResponse
	if err := c.post(ctx, tablePath(table, "fetch"), q, &res, true); err != nil {
		return nil, err
	}
	if !res.Success {
		c.log.Error(fmt.Sprintf("fetching %s records failed: %s", table, res.Message))
		return nil, errors.Errorf("fetching %s records: %s", table, res.Message)
	}
	return res.Data, nil
}

// FetchAllRecords pages through a table until a short page, so
// collections larger than the configured page size are not silently
// truncated.
func (c *Client) FetchAllRecords(ctx context.Context, table string, fields []FieldSpec, where []Where, orderBy []OrderBy) ([]RawRecord, error) {
	if len(orderBy) == 0 {
		orderBy = []OrderBy{{FieldName: "Id", SortType: SortASC}}
	}
	var all []RawRecord
	for offset := 0; ; offset += c.pageSize {
		q := Query{
			Fields:     fields,
			Where:      where,
			OrderBy:    orderBy,
			PagingInfo: &PagingInfo{Limit: c.pageSize, Offset: offset},
		}
		page, err := c.FetchRecords(ctx, table, q)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < c.pageSize {
			return all, nil
		}
	}
}

type getRequest struct {
	ID     int         `json:"Id"`
	Fields []FieldSpec `json:"fields"`
}

// GetRecordByID fetches a single record; a missing id yields a nil
// record and no error, matching the store's "not found is not a
// failure" reads.
func (c *Client) GetRecordByID(ctx context.Context, table string, id int, fields []FieldSpec) (RawRecord, error) {
	var res getResponse
	if err := c.post(ctx, tablePath(table, "get"), getRequest{ID: id, Fields: fields}, &res, true); err != nil {
		return nil, err
	}
	if !res.Success || res.Data == nil {
		return nil, nil
	}
	return res.Data, nil
}

// CreateRecord inserts a batch. Per-record failures surface as a
// core.ValidationError carrying every field-level error; the successful
// subset is still returned.
func (c *Client) CreateRecord(ctx context.Context, table string, records []map[string]interface{}) ([]RawRecord, error) {
	return c.write(ctx, table, "create", records)
}

// UpdateRecord updates a batch; records must carry their Id.
func (c *Client) UpdateRecord(ctx context.Context, table string, records []map[string]interface{}) ([]RawRecord, error) {
	return c.write(ctx, table, "update", records)
}

func (c *Client) write(ctx context.Context, table, op string, records []map[string]interface{}) ([]RawRecord, error) {
	var res writeResponse
	if err := c.post(ctx, tablePath(table, op), writeRequest{Records: records}, &res, false); err != nil {
		return nil, err
	}
	if !res.Success {
		c.log.Error(fmt.Sprintf("%s on %s failed: %s", op, table, res.Message))
		return nil, errors.Errorf("%s %s record: %s", op, table, res.Message)
	}

	var ok []RawRecord
	var flds []core.FieldError
	var failMsg string
	for _, r := range res.Results {
		if r.Success {
			ok = append(ok, r.Data)
			continue
		}
		if failMsg == "" {
			failMsg = r.Message
		}
		for _, fe := range r.Errors {
			flds = append(flds, core.FieldError{Field: fe.FieldLabel, Error: fe.Message})
		}
		c.log.Warn(fmt.Sprintf("%s on %s rejected a record: %s", op, table, r.Message))
	}
	if len(flds) > 0 || (len(ok) == 0 && failMsg != "") {
		if failMsg == "" {
			failMsg = fmt.Sprintf("%s %s record failed", op, table)
		}
		return ok, core.NewValidationError(errors.New(failMsg), flds...)
	}
	return ok, nil
}

// DeleteRecords removes a batch of ids. Deletes are idempotent, so the
// request may be retried on transport failure.
func (c *Client) DeleteRecords(ctx context.Context, table string, ids ...int) error {
	var res writeResponse
	if err := c.post(ctx, tablePath(table, "delete"), deleteRequest{RecordIDs: ids}, &res, true); err != nil {
		return err
	}
	if !res.Success {
		c.log.Error(fmt.Sprintf("delete on %s failed: %s", table, res.Message))
		return errors.Errorf("deleting %s records: %s", table, res.Message)
	}
	for _, r := range res.Results {
		if !r.Success {
			return errors.Errorf("deleting %s record: %s", table, r.Message)
		}
	}
	return nil
}
