package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaksLuk/Diploma/internal/models"
	"github.com/MaksLuk/Diploma/internal/planner"
	"github.com/MaksLuk/Diploma/internal/schedule"
)

func setup(t *testing.T) context.Context {
	t.Helper()
	conn, err := Open("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	DB = conn
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return context.Background()
}

func strPtr(s string) *string { return &s }
func idPtr(id uint) *uint     { return &id }

type fixture struct {
	university, faculty, department uint
	speciality                      uint
	pi101, pi102                    uint
	ivanova, petrov                 uint
	room205, room101                uint
	physics, maths                  uint
	flow                            uint
	physicsLine, mathsFlowLine      uint
}

func seed(t *testing.T, ctx context.Context) fixture {
	t.Helper()
	var f fixture
	must := func(id uint, err error) uint {
		t.Helper()
		require.NoError(t, err)
		return id
	}

	f.university = must(AddDivision(ctx, models.AddDivisionRequest{Name: "Технический Университет", ShortName: strPtr("ТУ")}))
	f.faculty = must(AddDivision(ctx, models.AddDivisionRequest{Name: "Факультет ИТ", ParentID: &f.university}))
	f.department = must(AddDivision(ctx, models.AddDivisionRequest{Name: "Кафедра ПИ", ShortName: strPtr("ПИ"), ParentID: &f.faculty}))
	f.speciality = must(AddSpeciality(ctx, models.AddSpecialityRequest{DepartmentID: f.department, Name: "Программная инженерия"}))
	f.pi101 = must(AddGroup(ctx, models.AddGroupRequest{SpecialityID: f.speciality, Name: "ПИ-101", Course: models.Bachelor1, StudentCount: 25}))
	f.pi102 = must(AddGroup(ctx, models.AddGroupRequest{SpecialityID: f.speciality, Name: "ПИ-102", Course: models.Bachelor1, StudentCount: 20}))
	f.ivanova = must(AddTeacher(ctx, models.AddTeacherRequest{DepartmentID: f.department, Name: "Иванова Т.П."}))
	f.petrov = must(AddTeacher(ctx, models.AddTeacherRequest{DepartmentID: f.department, Name: "Петров А.А."}))
	f.room205 = must(AddClassroom(ctx, models.AddClassroomRequest{FacultyID: f.faculty, DepartmentID: &f.department, Name: "7-205", Capacity: 30}))
	f.room101 = must(AddClassroom(ctx, models.AddClassroomRequest{FacultyID: f.faculty, Name: "7-101", Capacity: 100}))
	f.physics = must(AddSubject(ctx, models.AddSubjectRequest{Name: "Физика", ShortName: "Физ"}))
	f.maths = must(AddSubject(ctx, models.AddSubjectRequest{Name: "Математика", ShortName: "Мат"}))
	f.flow = must(AddFlow(ctx, models.AddFlowRequest{Groups: []string{"ПИ-101", "ПИ-102"}}))
	f.physicsLine = must(AddCurriculum(ctx, models.AddCurriculumRequest{
		SubjectID: f.physics, Hours: 108, PrimaryTeacherID: f.ivanova, GroupID: &f.pi101,
	}))
	f.mathsFlowLine = must(AddCurriculum(ctx, models.AddCurriculumRequest{
		SubjectID: f.maths, Hours: 72, PrimaryTeacherID: f.petrov, SecondaryTeacherID: &f.ivanova, FlowID: &f.flow,
	}))
	return f
}

func TestUniversityData(t *testing.T) {
	ctx := setup(t)
	f := seed(t, ctx)

	data, err := GetUniversityData(ctx)
	require.NoError(t, err)
	require.Len(t, data, 1)

	u := data[0]
	assert.Equal(t, "Технический Университет", u.Name)
	require.Len(t, u.Faculties, 1)
	fac := u.Faculties[0]
	assert.Equal(t, []models.ClassroomData{{ID: f.room101, Number: "7-101", Capacity: 100}}, fac.Classrooms)
	require.Len(t, fac.Departments, 1)

	dep := fac.Departments[0]
	assert.Equal(t, "ПИ", dep.ShortName)
	assert.Equal(t, []models.ClassroomData{{ID: f.room205, Number: "7-205", Capacity: 30}}, dep.Classrooms)
	assert.Len(t, dep.Lecturers, 2)
	require.Len(t, dep.Specialities, 1)
	assert.Equal(t, []models.GroupData{
		{ID: f.pi101, Name: "ПИ-101", Course: models.Bachelor1, StudentsCount: 25},
		{ID: f.pi102, Name: "ПИ-102", Course: models.Bachelor1, StudentsCount: 20},
	}, dep.Specialities[0].Groups)
}

func TestStructureErrors(t *testing.T) {
	ctx := setup(t)
	f := seed(t, ctx)

	_, err := AddDivision(ctx, models.AddDivisionRequest{Name: "Факультет ИТ", ParentID: &f.university})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = AddDivision(ctx, models.AddDivisionRequest{Name: "Новый", ParentID: idPtr(999)})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = AddGroup(ctx, models.AddGroupRequest{SpecialityID: f.speciality, Name: "ПИ-103", Course: "Аспирантура, 1"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = AddGroup(ctx, models.AddGroupRequest{SpecialityID: 999, Name: "ПИ-103", Course: models.Master1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = AddClassroom(ctx, models.AddClassroomRequest{FacultyID: f.faculty, Name: "7-205", Capacity: 10})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = AddTeacher(ctx, models.AddTeacherRequest{DepartmentID: f.department, Name: "Петров А.А."})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = AddFlow(ctx, models.AddFlowRequest{Groups: []string{"ПИ-101", "ХХ-000"}})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "ХХ-000")
}

func TestCurriculum(t *testing.T) {
	ctx := setup(t)
	f := seed(t, ctx)

	lines, err := GetCurriculum(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, models.CurriculumData{
		ID: f.physicsLine, Subject: "Физ", SubjectName: "Физика", Groups: []string{"ПИ-101"},
		Hours: 108, PrimaryTeacher: "Иванова Т.П.",
	}, lines[0])
	assert.ElementsMatch(t, []string{"ПИ-101", "ПИ-102"}, lines[1].Groups)
	assert.Equal(t, "Петров А.А., Иванова Т.П.", lines[1].Teachers())

	flows, err := GetFlows(ctx)
	require.NoError(t, err)
	require.Len(t, flows, 1)
	assert.ElementsMatch(t, []string{"ПИ-101", "ПИ-102"}, flows[0].Groups)

	subjects, err := GetSubjects(ctx)
	require.NoError(t, err)
	assert.Len(t, subjects, 2)

	tests := []struct {
		name string
		req  models.AddCurriculumRequest
		want error
	}{
		{"duplicate", models.AddCurriculumRequest{SubjectID: f.physics, Hours: 72, PrimaryTeacherID: f.petrov, GroupID: &f.pi101}, ErrConflict},
		{"group and flow", models.AddCurriculumRequest{SubjectID: f.maths, Hours: 72, PrimaryTeacherID: f.petrov, GroupID: &f.pi101, FlowID: &f.flow}, ErrInvalid},
		{"neither", models.AddCurriculumRequest{SubjectID: f.maths, Hours: 72, PrimaryTeacherID: f.petrov}, ErrInvalid},
		{"bad hours", models.AddCurriculumRequest{SubjectID: f.maths, Hours: 100, PrimaryTeacherID: f.petrov, GroupID: &f.pi101}, ErrInvalid},
		{"no teacher", models.AddCurriculumRequest{SubjectID: f.maths, Hours: 72, PrimaryTeacherID: 999, GroupID: &f.pi101}, ErrNotFound},
		{"no flow", models.AddCurriculumRequest{SubjectID: f.maths, Hours: 72, PrimaryTeacherID: f.petrov, FlowID: idPtr(999)}, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddCurriculum(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLessons(t *testing.T) {
	ctx := setup(t)
	f := seed(t, ctx)

	physicsID, err := AddLesson(ctx, models.AddLessonRequest{
		Week: 1, Day: 2, Pair: 3, ClassroomID: f.room205, CurriculumID: f.physicsLine, LessonType: schedule.Lab,
	})
	require.NoError(t, err)
	mathsID, err := AddLesson(ctx, models.AddLessonRequest{
		Week: 2, Day: 1, Pair: 1, ClassroomID: f.room101, CurriculumID: f.mathsFlowLine, LessonType: schedule.Lecture,
	})
	require.NoError(t, err)

	store, err := GetSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())

	cell, ok := store.Read(1, 2, 3, "ПИ-101")
	require.True(t, ok)
	assert.Equal(t, schedule.Cell{
		ID: physicsID, LessonType: schedule.Lab, Subject: "Физика", Teachers: "Иванова Т.П.",
		Classroom: "7-205", ClassroomID: f.room205, CurriculumID: f.physicsLine,
	}, cell)
	for _, g := range []string{"ПИ-101", "ПИ-102"} {
		cell, ok := store.Read(2, 1, 1, g)
		require.True(t, ok, g)
		assert.Equal(t, mathsID, cell.ID)
		assert.Equal(t, "Петров А.А., Иванова Т.П.", cell.Teachers)
	}

	require.NoError(t, EditLesson(ctx, physicsID, models.EditLessonRequest{
		ClassroomID: f.room101, CurriculumID: f.physicsLine, LessonType: schedule.Lecture,
	}))
	store, err = GetSchedule(ctx)
	require.NoError(t, err)
	cell, _ = store.Read(1, 2, 3, "ПИ-101")
	assert.Equal(t, "7-101", cell.Classroom)
	assert.Equal(t, schedule.Lecture, cell.LessonType)

	require.NoError(t, RemoveLesson(ctx, physicsID))
	store, err = GetSchedule(ctx)
	require.NoError(t, err)
	_, ok = store.Read(1, 2, 3, "ПИ-101")
	assert.False(t, ok)
	assert.Equal(t, 2, store.Len())

	assert.ErrorIs(t, RemoveLesson(ctx, physicsID), ErrNotFound)
	assert.ErrorIs(t, EditLesson(ctx, physicsID, models.EditLessonRequest{
		ClassroomID: f.room101, CurriculumID: f.physicsLine, LessonType: schedule.Lab,
	}), ErrNotFound)
}

func TestAddLessonErrors(t *testing.T) {
	ctx := setup(t)
	f := seed(t, ctx)

	valid := models.AddLessonRequest{Week: 1, Day: 1, Pair: 1, ClassroomID: f.room205, CurriculumID: f.physicsLine, LessonType: schedule.Lab}
	tests := []struct {
		name   string
		modify func(*models.AddLessonRequest)
		want   error
	}{
		{"week", func(r *models.AddLessonRequest) { r.Week = 3 }, ErrInvalid},
		{"day", func(r *models.AddLessonRequest) { r.Day = 7 }, ErrInvalid},
		{"pair", func(r *models.AddLessonRequest) { r.Pair = 0 }, ErrInvalid},
		{"type", func(r *models.AddLessonRequest) { r.LessonType = "семинар" }, ErrInvalid},
		{"classroom", func(r *models.AddLessonRequest) { r.ClassroomID = 999 }, ErrNotFound},
		{"curriculum", func(r *models.AddLessonRequest) { r.CurriculumID = 999 }, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)
			_, err := AddLesson(ctx, req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPlannerRoundTrip(t *testing.T) {
	ctx := setup(t)
	f := seed(t, ctx)

	lessons, lines, rooms, err := PlannerInput(ctx)
	require.NoError(t, err)
	assert.Empty(t, lessons)
	assert.Len(t, rooms, 2)
	require.Len(t, lines, 2)
	assert.Equal(t, planner.Line{
		ID: f.mathsFlowLine, Hours: 72, GroupIDs: []uint{f.pi101, f.pi102},
		TeacherIDs: []uint{f.petrov, f.ivanova}, Students: 45,
	}, withSortedGroups(lines[1]))

	res := planner.AutoSchedule(lessons, lines, rooms)
	require.Len(t, res.Placed, 3)
	require.NoError(t, SaveLessons(ctx, res.Placed))
	for _, p := range res.Placed {
		assert.NotZero(t, p.ID)
	}

	store, err := GetSchedule(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, store.Len()) // physics lecture + lab for one group, maths lecture for two

	lessons, lines, _, err = PlannerInput(ctx)
	require.NoError(t, err)
	assert.Empty(t, planner.FindCollisions(lessons, lines).Errors)
}

func withSortedGroups(l planner.Line) planner.Line {
	if len(l.GroupIDs) == 2 && l.GroupIDs[0] > l.GroupIDs[1] {
		l.GroupIDs[0], l.GroupIDs[1] = l.GroupIDs[1], l.GroupIDs[0]
	}
	return l
}

func TestImportLessons(t *testing.T) {
	ctx := setup(t)
	f := seed(t, ctx)

	entries := []schedule.Entry{
		{Address: schedule.Address{Week: 1, Day: 1, Pair: 1, Group: "ПИ-101"}, Cell: schedule.Cell{Subject: "Физика", Teachers: "Иванова Т.П.", Classroom: "7-205", LessonType: schedule.Lecture}},
		{Address: schedule.Address{Week: 1, Day: 1, Pair: 2, Group: "ПИ-101"}, Cell: schedule.Cell{Subject: "Мат", Classroom: "7-101"}},
		{Address: schedule.Address{Week: 1, Day: 1, Pair: 2, Group: "ПИ-102"}, Cell: schedule.Cell{Subject: "Мат", Classroom: "7-101"}},
		{Address: schedule.Address{Week: 1, Day: 1, Pair: 3, Group: "ПИ-102"}, Cell: schedule.Cell{Subject: "Физика", Classroom: "7-205"}},
		{Address: schedule.Address{Week: 1, Day: 1, Pair: 4, Group: "ПИ-101"}, Cell: schedule.Cell{Subject: "Физика", Classroom: "0-000"}},
	}

	res, err := ImportLessons(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Created: 2, Existing: 1, Skipped: 2}, res)

	store, err := GetSchedule(ctx)
	require.NoError(t, err)
	cell, ok := store.Read(1, 1, 2, "ПИ-102")
	require.True(t, ok)
	assert.Equal(t, f.mathsFlowLine, cell.CurriculumID)
	assert.Equal(t, schedule.Lab, cell.LessonType)

	res, err = ImportLessons(ctx, entries[:1])
	require.NoError(t, err)
	assert.Equal(t, ImportResult{Existing: 1}, res)
}
