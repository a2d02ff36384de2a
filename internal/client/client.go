// Package client talks to the timetable API server.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/MaksLuk/Diploma/internal/models"
	"github.com/MaksLuk/Diploma/internal/schedule"
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server rejected request: %d %s", e.Code, http.StatusText(e.Code))
	}
	return fmt.Sprintf("server rejected request: %d %s", e.Code, e.Message)
}

// IsRejected reports whether err came from the server rather than from the
// transport.
func IsRejected(err error) bool {
	var se *StatusError
	return errors.As(err, &se)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// WithHTTPClient replaces the underlying http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.http = hc
	return c
}

// -------------------- SCHEDULE --------------------

func (c *Client) CreateScheduleCell(ctx context.Context, req models.AddLessonRequest) (uint, error) {
	var resp models.IDResponse
	if err := c.do(ctx, http.MethodPost, "/schedule", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

func (c *Client) EditScheduleCell(ctx context.Context, id uint, req models.EditLessonRequest) error {
	return c.do(ctx, http.MethodPut, "/schedule/"+strconv.FormatUint(uint64(id), 10), req, nil)
}

func (c *Client) DeleteScheduleCell(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, "/schedule/"+strconv.FormatUint(uint64(id), 10), nil, nil)
}

func (c *Client) FetchSchedule(ctx context.Context) (schedule.Store, error) {
	var s schedule.Store
	err := c.do(ctx, http.MethodGet, "/schedule", nil, &s)
	return s, err
}

// -------------------- REFERENCE DATA --------------------

func (c *Client) FetchUniversityData(ctx context.Context) ([]models.UniversityData, error) {
	var out []models.UniversityData
	err := c.do(ctx, http.MethodGet, "/university_data", nil, &out)
	return out, err
}

func (c *Client) FetchSubjects(ctx context.Context) ([]models.SubjectData, error) {
	var out []models.SubjectData
	err := c.do(ctx, http.MethodGet, "/subject", nil, &out)
	return out, err
}

func (c *Client) FetchFlows(ctx context.Context) ([]models.FlowData, error) {
	var out []models.FlowData
	err := c.do(ctx, http.MethodGet, "/flow", nil, &out)
	return out, err
}

func (c *Client) FetchCurriculum(ctx context.Context) ([]models.CurriculumData, error) {
	var out []models.CurriculumData
	err := c.do(ctx, http.MethodGet, "/curriculum", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Code: resp.StatusCode}
		var e models.ErrorResponse
		if data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); json.Unmarshal(data, &e) == nil {
			se.Message = e.Error
		}
		return errors.WithStack(se)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s %s", method, path)
	}
	return nil
}
