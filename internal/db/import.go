package db

import (
	"context"
	"log"

	"github.com/MaksLuk/Diploma/internal/models"
	"github.com/MaksLuk/Diploma/internal/schedule"
	"github.com/MaksLuk/Diploma/internal/structure"
)

type ImportResult struct {
	Created int `json:"created"`
	// Cells already present in the timetable, or repeated for other groups of a flow.
	Existing int `json:"existing"`
	Skipped  int `json:"skipped"`
}

// ImportLessons creates lessons for cells read from a spreadsheet. The
// classroom is matched by number and the curriculum line by subject and
// group. Cells that cannot be matched are skipped.
func ImportLessons(ctx context.Context, entries []schedule.Entry) (ImportResult, error) {
	var res ImportResult

	curriculum, err := GetCurriculum(ctx)
	if err != nil {
		return res, err
	}
	var rooms []models.Classroom
	if err := tx(ctx).Order("id").Find(&rooms).Error; err != nil {
		return res, err
	}
	roomData := make([]models.ClassroomData, len(rooms))
	for i, r := range rooms {
		roomData[i] = models.ClassroomData{ID: r.ID, Number: r.Name, Capacity: r.Capacity}
	}

	var current []models.Lesson
	if err := tx(ctx).Find(&current).Error; err != nil {
		return res, err
	}
	type key struct {
		week       schedule.Week
		day        schedule.Day
		pair       schedule.Pair
		room       uint
		curriculum uint
	}
	seen := make(map[key]bool, len(current))
	for _, l := range current {
		seen[key{l.Week, l.Day, l.Pair, l.ClassroomID, l.CurriculumID}] = true
	}

	for _, e := range entries {
		room, err := structure.ClassroomByNumber(roomData, e.Cell.Classroom)
		if err != nil {
			log.Printf("⚠️ Skipped %s: %v\n", e.Address, err)
			res.Skipped++
			continue
		}
		line, err := structure.CurriculumFor(curriculum, e.Cell.Subject, e.Cell.Teachers, e.Group)
		if err != nil {
			log.Printf("⚠️ Skipped %s: %v\n", e.Address, err)
			res.Skipped++
			continue
		}

		k := key{e.Week, e.Day, e.Pair, room.ID, line.ID}
		if seen[k] {
			res.Existing++
			continue
		}

		lessonType := e.Cell.LessonType
		if lessonType == "" {
			lessonType = schedule.Lab
		}
		_, err = AddLesson(ctx, models.AddLessonRequest{
			Week:         e.Week,
			Day:          e.Day,
			Pair:         e.Pair,
			ClassroomID:  room.ID,
			CurriculumID: line.ID,
			LessonType:   lessonType,
		})
		if err != nil {
			log.Printf("⚠️ Skipped %s: %v\n", e.Address, err)
			res.Skipped++
			continue
		}
		seen[k] = true
		res.Created++
	}

	log.Printf("📊 Imported lessons: %d created, %d existing, %d skipped\n", res.Created, res.Existing, res.Skipped)
	return res, nil
}
