// Package timetable holds the client-side state of the timetable grid: the
// lesson store, the reference data it is edited against, and the active
// selection of group columns.
package timetable

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/MaksLuk/Diploma/internal/models"
	"github.com/MaksLuk/Diploma/internal/schedule"
	"github.com/MaksLuk/Diploma/internal/structure"
)

var (
	ErrNoLesson = errors.New("no lesson at this cell")
	ErrInvalid  = errors.New("invalid lesson")
)

// Remote is the server the editor reads from and writes through.
type Remote interface {
	CreateScheduleCell(ctx context.Context, req models.AddLessonRequest) (uint, error)
	EditScheduleCell(ctx context.Context, id uint, req models.EditLessonRequest) error
	DeleteScheduleCell(ctx context.Context, id uint) error

	FetchSchedule(ctx context.Context) (schedule.Store, error)
	FetchUniversityData(ctx context.Context) ([]models.UniversityData, error)
	FetchSubjects(ctx context.Context) ([]models.SubjectData, error)
	FetchFlows(ctx context.Context) ([]models.FlowData, error)
	FetchCurriculum(ctx context.Context) ([]models.CurriculumData, error)
}

// Content is what a user fills in for a lesson.
type Content struct {
	ClassroomID  uint                `binding:"required"`
	CurriculumID uint                `binding:"required"`
	LessonType   schedule.LessonType `binding:"required,oneof=лекционное лабораторное"`
}

// EditDraft is an open edit of an existing lesson. ID is captured when the
// edit starts and is what the change is applied to.
type EditDraft struct {
	ID uint
	schedule.Address
	Content
}

// Editor owns the timetable store. Every change goes to the server first and
// is folded into the store only after the server accepted it, so a failed
// call leaves the store as it was.
type Editor struct {
	remote   Remote
	validate *validator.Validate

	mu           sync.RWMutex
	store        schedule.Store
	universities []models.UniversityData
	subjects     []models.SubjectData
	flows        []models.FlowData
	curriculum   []models.CurriculumData
	classrooms   []models.ClassroomData
	selection    structure.Selection
	groups       []string
	week         schedule.Week
}

func New(remote Remote) *Editor {
	v := validator.New()
	v.SetTagName("binding")
	return &Editor{remote: remote, validate: v, week: 1}
}

// Load fetches the timetable and reference data and replaces what the
// editor held.
func (e *Editor) Load(ctx context.Context) error {
	var (
		store        schedule.Store
		universities []models.UniversityData
		subjects     []models.SubjectData
		flows        []models.FlowData
		curriculum   []models.CurriculumData
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		store, err = e.remote.FetchSchedule(ctx)
		return errors.Wrap(err, "fetch schedule")
	})
	g.Go(func() (err error) {
		universities, err = e.remote.FetchUniversityData(ctx)
		return errors.Wrap(err, "fetch university data")
	})
	g.Go(func() (err error) {
		subjects, err = e.remote.FetchSubjects(ctx)
		return errors.Wrap(err, "fetch subjects")
	})
	g.Go(func() (err error) {
		flows, err = e.remote.FetchFlows(ctx)
		return errors.Wrap(err, "fetch flows")
	})
	g.Go(func() (err error) {
		curriculum, err = e.remote.FetchCurriculum(ctx)
		return errors.Wrap(err, "fetch curriculum")
	})
	if err := g.Wait(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.store = store
	e.universities = universities
	e.subjects = subjects
	e.flows = flows
	e.curriculum = curriculum
	e.classrooms = structure.Classrooms(universities)
	e.groups = structure.GroupNames(structure.ResolveGroups(universities, e.selection))
	return nil
}

// -------------------- READ --------------------

func (e *Editor) Read(at schedule.Address) (schedule.Cell, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Read(at.Week, at.Day, at.Pair, at.Group)
}

// Snapshot returns a deep copy of the store.
func (e *Editor) Snapshot() (schedule.Store, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Clone()
}

// Select makes sel the active selection and returns its group columns.
func (e *Editor) Select(sel structure.Selection) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection = sel
	e.groups = structure.GroupNames(structure.ResolveGroups(e.universities, sel))
	return append([]string(nil), e.groups...)
}

func (e *Editor) Groups() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]string(nil), e.groups...)
}

func (e *Editor) Week() schedule.Week {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.week
}

func (e *Editor) SetWeek(w schedule.Week) error {
	if !w.Valid() {
		return errors.Wrapf(ErrInvalid, "week %d", w)
	}
	e.mu.Lock()
	e.week = w
	e.mu.Unlock()
	return nil
}

func (e *Editor) Universities() []models.UniversityData {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.UniversityData(nil), e.universities...)
}

func (e *Editor) Curriculum() []models.CurriculumData {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.CurriculumData(nil), e.curriculum...)
}

func (e *Editor) Classrooms() []models.ClassroomData {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.ClassroomData(nil), e.classrooms...)
}

func (e *Editor) Subjects() []models.SubjectData {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.SubjectData(nil), e.subjects...)
}

func (e *Editor) Flows() []models.FlowData {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return append([]models.FlowData(nil), e.flows...)
}

// -------------------- WRITE --------------------

// AddLesson creates a lesson on the server and places it at the cell. A
// lesson taught to a flow is placed under every group of the flow.
func (e *Editor) AddLesson(ctx context.Context, at schedule.Address, c Content) (schedule.Cell, error) {
	req := models.AddLessonRequest{
		Week: at.Week, Day: at.Day, Pair: at.Pair,
		ClassroomID: c.ClassroomID, CurriculumID: c.CurriculumID, LessonType: c.LessonType,
	}
	if err := e.validate.Struct(req); err != nil {
		return schedule.Cell{}, errors.Wrap(ErrInvalid, err.Error())
	}
	if at.Group == "" {
		return schedule.Cell{}, errors.Wrap(ErrInvalid, "no group")
	}
	cell, groups, err := e.display(c, at.Group)
	if err != nil {
		return schedule.Cell{}, err
	}

	id, err := e.remote.CreateScheduleCell(ctx, req)
	if err != nil {
		return schedule.Cell{}, err
	}
	cell.ID = id

	e.mu.Lock()
	for _, g := range groups {
		e.store = e.store.Insert(at.Week, at.Day, at.Pair, g, cell)
	}
	e.mu.Unlock()
	return cell, nil
}

// BeginEdit captures the lesson at the cell for editing. The classroom and
// curriculum line come from the ids the server sent with the cell, or are
// looked up by their display names when those are missing.
func (e *Editor) BeginEdit(at schedule.Address) (EditDraft, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	cell, ok := e.store.Read(at.Week, at.Day, at.Pair, at.Group)
	if !ok {
		return EditDraft{}, errors.Wrap(ErrNoLesson, at.String())
	}

	draft := EditDraft{
		ID:      cell.ID,
		Address: at,
		Content: Content{ClassroomID: cell.ClassroomID, CurriculumID: cell.CurriculumID, LessonType: cell.LessonType},
	}
	if draft.ClassroomID == 0 {
		room, err := structure.ClassroomByNumber(e.classrooms, cell.Classroom)
		if err != nil {
			return EditDraft{}, err
		}
		draft.ClassroomID = room.ID
	}
	if draft.CurriculumID == 0 {
		line, err := structure.CurriculumFor(e.curriculum, cell.Subject, cell.Teachers, at.Group)
		if err != nil {
			return EditDraft{}, err
		}
		draft.CurriculumID = line.ID
	}
	return draft, nil
}

// SubmitEdit sends the edited draft to the server and, once accepted,
// shows the lesson under exactly the groups of its new curriculum line.
func (e *Editor) SubmitEdit(ctx context.Context, d EditDraft) error {
	if err := e.validate.Struct(d.Content); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	cell, groups, err := e.display(d.Content, d.Group)
	if err != nil {
		return err
	}

	err = e.remote.EditScheduleCell(ctx, d.ID, models.EditLessonRequest{
		ClassroomID: d.ClassroomID, CurriculumID: d.CurriculumID, LessonType: d.LessonType,
	})
	if err != nil {
		return err
	}

	cell.ID = d.ID

	e.mu.Lock()
	defer e.mu.Unlock()
	if sameGroups(e.store.Find(d.ID), groups) {
		e.store = e.store.UpdateByID(d.ID, schedule.Patch{
			LessonType:   cell.LessonType,
			Subject:      cell.Subject,
			Teachers:     cell.Teachers,
			Classroom:    cell.Classroom,
			ClassroomID:  cell.ClassroomID,
			CurriculumID: cell.CurriculumID,
		})
		return nil
	}
	// the line changed its groups: drop every copy and place it again
	e.store = e.store.RemoveByID(d.ID)
	for _, g := range groups {
		e.store = e.store.Insert(d.Week, d.Day, d.Pair, g, cell)
	}
	return nil
}

// Delete removes the lesson at the cell on the server and then locally.
func (e *Editor) Delete(ctx context.Context, at schedule.Address) error {
	cell, ok := e.Read(at)
	if !ok {
		return errors.Wrap(ErrNoLesson, at.String())
	}
	if err := e.remote.DeleteScheduleCell(ctx, cell.ID); err != nil {
		return err
	}

	e.mu.Lock()
	e.store = e.store.RemoveByID(cell.ID)
	e.mu.Unlock()
	return nil
}

// display builds the shown fields of a lesson from the reference data and
// returns the groups it is taught to. The curriculum line has to be taught
// to group.
func (e *Editor) display(c Content, group string) (schedule.Cell, []string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	room, ok := structure.ClassroomByID(e.classrooms, c.ClassroomID)
	if !ok {
		return schedule.Cell{}, nil, errors.Wrapf(ErrInvalid, "unknown classroom %d", c.ClassroomID)
	}
	line, ok := structure.CurriculumByID(e.curriculum, c.CurriculumID)
	if !ok {
		return schedule.Cell{}, nil, errors.Wrapf(ErrInvalid, "unknown curriculum line %d", c.CurriculumID)
	}
	if !containsGroup(line.Groups, group) {
		return schedule.Cell{}, nil, errors.Wrapf(ErrInvalid, "%s is not taught to %s", line.SubjectName, group)
	}

	return schedule.Cell{
		LessonType:   c.LessonType,
		Subject:      line.SubjectName,
		Teachers:     line.Teachers(),
		Classroom:    room.Number,
		ClassroomID:  room.ID,
		CurriculumID: line.ID,
	}, append([]string(nil), line.Groups...), nil
}

// sameGroups reports whether the lesson is shown under exactly groups.
func sameGroups(shown []schedule.Entry, groups []string) bool {
	if len(shown) != len(groups) {
		return false
	}
	for _, en := range shown {
		if !containsGroup(groups, en.Group) {
			return false
		}
	}
	return true
}

func containsGroup(groups []string, g string) bool {
	for _, v := range groups {
		if v == g {
			return true
		}
	}
	return false
}
