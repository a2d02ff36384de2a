package db

import (
	"context"

	"github.com/pkg/errors"

	"github.com/MaksLuk/Diploma/internal/models"
	"github.com/MaksLuk/Diploma/internal/schedule"
)

// AddLesson places a curriculum line on the grid and returns the new id.
func AddLesson(ctx context.Context, req models.AddLessonRequest) (uint, error) {
	if err := checkLesson(ctx, req.ClassroomID, req.CurriculumID, req.LessonType); err != nil {
		return 0, err
	}
	if !req.Week.Valid() {
		return 0, errors.Wrapf(ErrInvalid, "week %d: must be 1 or 2", req.Week)
	}
	if !req.Day.Valid() {
		return 0, errors.Wrapf(ErrInvalid, "day %d: must be between 1 and 6", req.Day)
	}
	if !req.Pair.Valid() {
		return 0, errors.Wrapf(ErrInvalid, "pair %d: must be between 1 and 8", req.Pair)
	}

	l := models.Lesson{
		Week:         req.Week,
		Day:          req.Day,
		Pair:         req.Pair,
		ClassroomID:  req.ClassroomID,
		CurriculumID: req.CurriculumID,
		LessonType:   req.LessonType,
	}
	if err := tx(ctx).Create(&l).Error; err != nil {
		return 0, err
	}
	return l.ID, nil
}

// EditLesson replaces the classroom, curriculum line and type of a lesson.
// Its place on the grid stays the same.
func EditLesson(ctx context.Context, id uint, req models.EditLessonRequest) error {
	var l models.Lesson
	if err := tx(ctx).First(&l, id).Error; err != nil {
		return notFound(err, "lesson", id)
	}
	if err := checkLesson(ctx, req.ClassroomID, req.CurriculumID, req.LessonType); err != nil {
		return err
	}

	return tx(ctx).Model(&l).Updates(map[string]any{
		"classroom_id":  req.ClassroomID,
		"curriculum_id": req.CurriculumID,
		"lesson_type":   req.LessonType,
	}).Error
}

func RemoveLesson(ctx context.Context, id uint) error {
	res := tx(ctx).Delete(&models.Lesson{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(ErrNotFound, "lesson %d", id)
	}
	return nil
}

// GetSchedule builds the nested timetable. A lesson of a flow appears under
// every group of the flow with the same id.
func GetSchedule(ctx context.Context) (schedule.Store, error) {
	lessons, err := loadLessons(ctx)
	if err != nil {
		return schedule.Store{}, err
	}

	store := schedule.Store{Data: schedule.WeekCells{}}
	for _, l := range lessons {
		cell := schedule.Cell{
			ID:           l.ID,
			LessonType:   l.LessonType,
			Subject:      l.Curriculum.Subject.Name,
			Teachers:     curriculumData(l.Curriculum).Teachers(),
			Classroom:    l.Classroom.Name,
			ClassroomID:  l.ClassroomID,
			CurriculumID: l.CurriculumID,
		}
		for _, group := range curriculumGroupNames(l.Curriculum) {
			store = store.Insert(l.Week, l.Day, l.Pair, group, cell)
		}
	}
	return store, nil
}

func loadLessons(ctx context.Context) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := tx(ctx).
		Preload("Classroom").
		Preload("Curriculum.Subject").
		Preload("Curriculum.PrimaryTeacher").
		Preload("Curriculum.SecondaryTeacher").
		Preload("Curriculum.Group").
		Preload("Curriculum.Flow.Groups").
		Order("id").
		Find(&lessons).Error
	return lessons, err
}

func checkLesson(ctx context.Context, classroomID, curriculumID uint, t schedule.LessonType) error {
	if err := exists(ctx, &models.Classroom{}, classroomID, "classroom"); err != nil {
		return err
	}
	if err := exists(ctx, &models.Curriculum{}, curriculumID, "curriculum line"); err != nil {
		return err
	}
	if !t.Valid() {
		return errors.Wrapf(ErrInvalid, "lesson type %q", t)
	}
	return nil
}
