package cron

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaksLuk/Diploma/internal/config"
	"github.com/MaksLuk/Diploma/internal/db"
	"github.com/MaksLuk/Diploma/internal/excel"
	"github.com/MaksLuk/Diploma/internal/models"
	"github.com/MaksLuk/Diploma/internal/schedule"
)

func setup(t *testing.T) {
	t.Helper()
	conn, err := db.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	db.DB = conn
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
}

func TestStartJobs(t *testing.T) {
	c, err := StartJobs(&config.Config{ImportPath: "timetable.xlsx", ImportSchedule: "@daily", CollisionsSchedule: "@hourly"})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)
	<-c.Stop().Done()

	c, err = StartJobs(&config.Config{CollisionsSchedule: "@hourly"})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()

	_, err = StartJobs(&config.Config{CollisionsSchedule: "every now and then"})
	assert.Error(t, err)
}

func TestImportJob(t *testing.T) {
	setup(t)
	ctx := context.Background()

	must := func(id uint, err error) uint {
		t.Helper()
		require.NoError(t, err)
		return id
	}
	uni := must(db.AddDivision(ctx, models.AddDivisionRequest{Name: "ТУ"}))
	fac := must(db.AddDivision(ctx, models.AddDivisionRequest{Name: "ФИТ", ParentID: &uni}))
	dep := must(db.AddDivision(ctx, models.AddDivisionRequest{Name: "Кафедра ПИ", ParentID: &fac}))
	spec := must(db.AddSpeciality(ctx, models.AddSpecialityRequest{DepartmentID: dep, Name: "ПИ"}))
	group := must(db.AddGroup(ctx, models.AddGroupRequest{SpecialityID: spec, Name: "ПИ-101", Course: models.Bachelor1, StudentCount: 20}))
	teacher := must(db.AddTeacher(ctx, models.AddTeacherRequest{DepartmentID: dep, Name: "Иванова Т.П."}))
	must(db.AddClassroom(ctx, models.AddClassroomRequest{FacultyID: fac, Name: "7-205", Capacity: 30}))
	subject := must(db.AddSubject(ctx, models.AddSubjectRequest{Name: "Физика", ShortName: "Физ"}))
	must(db.AddCurriculum(ctx, models.AddCurriculumRequest{SubjectID: subject, Hours: 72, PrimaryTeacherID: teacher, GroupID: &group}))

	store := schedule.Store{}.Insert(1, 3, 2, "ПИ-101", schedule.Cell{
		ID: 1, LessonType: schedule.Lecture, Subject: "Физика", Teachers: "Иванова Т.П.", Classroom: "7-205",
	})
	var buf bytes.Buffer
	require.NoError(t, excel.Export(&buf, store, []string{"ПИ-101"}))
	path := filepath.Join(t.TempDir(), "timetable.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	ImportJob(path)
	ImportJob(path)

	got, err := db.GetSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Len())
	cell, ok := got.Read(1, 3, 2, "ПИ-101")
	require.True(t, ok)
	assert.Equal(t, schedule.Lecture, cell.LessonType)

	CollisionsJob()
}
