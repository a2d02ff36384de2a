package db

import (
	"context"

	"github.com/MaksLuk/Diploma/internal/models"
	"github.com/MaksLuk/Diploma/internal/planner"
)

// PlannerInput loads the lessons, curriculum lines and rooms the planner
// works on.
func PlannerInput(ctx context.Context) ([]planner.Lesson, []planner.Line, []planner.Room, error) {
	var lessons []models.Lesson
	if err := tx(ctx).Order("id").Find(&lessons).Error; err != nil {
		return nil, nil, nil, err
	}
	curriculum, err := loadCurriculum(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	var classrooms []models.Classroom
	if err := tx(ctx).Order("id").Find(&classrooms).Error; err != nil {
		return nil, nil, nil, err
	}

	outLessons := make([]planner.Lesson, len(lessons))
	for i, l := range lessons {
		outLessons[i] = planner.Lesson{
			ID:           l.ID,
			Slot:         planner.Slot{Week: l.Week, Day: l.Day, Pair: l.Pair},
			ClassroomID:  l.ClassroomID,
			CurriculumID: l.CurriculumID,
			LessonType:   l.LessonType,
		}
	}

	lines := make([]planner.Line, len(curriculum))
	for i, c := range curriculum {
		line := planner.Line{ID: c.ID, Hours: c.Hours, TeacherIDs: []uint{c.PrimaryTeacherID}}
		if c.SecondaryTeacherID != nil {
			line.TeacherIDs = append(line.TeacherIDs, *c.SecondaryTeacherID)
		}
		switch {
		case c.Group != nil:
			line.GroupIDs = []uint{c.Group.ID}
			line.Students = c.Group.StudentCount
		case c.Flow != nil:
			for _, g := range c.Flow.Groups {
				line.GroupIDs = append(line.GroupIDs, g.ID)
				line.Students += g.StudentCount
			}
		}
		lines[i] = line
	}

	rooms := make([]planner.Room, len(classrooms))
	for i, r := range classrooms {
		rooms[i] = planner.Room{ID: r.ID, Capacity: r.Capacity}
	}
	return outLessons, lines, rooms, nil
}

// SaveLessons stores the planned lessons in one transaction and fills in
// their ids.
func SaveLessons(ctx context.Context, planned []planner.Lesson) error {
	if len(planned) == 0 {
		return nil
	}
	rows := make([]models.Lesson, len(planned))
	for i, p := range planned {
		rows[i] = models.Lesson{
			Week:         p.Week,
			Day:          p.Day,
			Pair:         p.Pair,
			ClassroomID:  p.ClassroomID,
			CurriculumID: p.CurriculumID,
			LessonType:   p.LessonType,
		}
	}
	if err := tx(ctx).Create(&rows).Error; err != nil {
		return err
	}
	for i := range planned {
		planned[i].ID = rows[i].ID
	}
	return nil
}
