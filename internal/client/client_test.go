package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaksLuk/Diploma/internal/models"
	"github.com/MaksLuk/Diploma/internal/schedule"
)

func TestScheduleCalls(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = append(got, r.Method+" "+r.URL.Path+" "+string(body))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/schedule":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":42}`))
		case r.Method == http.MethodGet && r.URL.Path == "/schedule":
			_, _ = w.Write([]byte(`{"data":{"1":{"2":{"3":{"ПИ-101":{"id":42,"lesson_type":"лабораторное","subject":"Физика","teachers":"Иванова Т.П.","classroom":"7-205"}}}}}}`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	ctx := context.Background()

	id, err := c.CreateScheduleCell(ctx, models.AddLessonRequest{
		Week: 1, Day: 2, Pair: 3, ClassroomID: 5, CurriculumID: 9, LessonType: schedule.Lab,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	require.NoError(t, c.EditScheduleCell(ctx, 42, models.EditLessonRequest{ClassroomID: 6, CurriculumID: 9, LessonType: schedule.Lecture}))
	require.NoError(t, c.DeleteScheduleCell(ctx, 42))

	store, err := c.FetchSchedule(ctx)
	require.NoError(t, err)
	cell, ok := store.Read(1, 2, 3, "ПИ-101")
	require.True(t, ok)
	assert.Equal(t, "7-205", cell.Classroom)

	require.Len(t, got, 4)
	assert.Equal(t, `POST /schedule {"week":1,"day":2,"pair":3,"classroom_id":5,"curriculum_id":9,"lesson_type":"лабораторное"}`, got[0])
	assert.Equal(t, `PUT /schedule/42 {"classroom_id":6,"curriculum_id":9,"lesson_type":"лекционное"}`, got[1])
	assert.Equal(t, "DELETE /schedule/42 ", got[2])
}

func TestReferenceData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var v any
		switch r.URL.Path {
		case "/university_data":
			v = []models.UniversityData{{ID: 1, Name: "ТУ"}}
		case "/subject":
			v = []models.SubjectData{{ID: 1, Name: "Физика", ShortName: "Физ"}}
		case "/flow":
			v = []models.FlowData{{ID: 1, Groups: []string{"ПИ-101", "ПИ-102"}}}
		case "/curriculum":
			v = []models.CurriculumData{{ID: 3, Subject: "Физ", SubjectName: "Физика", Groups: []string{"ПИ-101"}, Hours: 72}}
		default:
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(v)
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()

	unis, err := c.FetchUniversityData(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ТУ", unis[0].Name)

	subjects, err := c.FetchSubjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Физ", subjects[0].ShortName)

	flows, err := c.FetchFlows(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"ПИ-101", "ПИ-102"}, flows[0].Groups)

	lines, err := c.FetchCurriculum(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(3), lines[0].ID)
}

func TestErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"lesson 7 not found"}`))
	}))

	c := New(srv.URL)
	err := c.DeleteScheduleCell(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, IsRejected(err))
	assert.Contains(t, err.Error(), "lesson 7 not found")

	srv.Close()
	err = c.DeleteScheduleCell(context.Background(), 7)
	require.Error(t, err)
	assert.False(t, IsRejected(err))
}
