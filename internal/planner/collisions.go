package planner

import (
	"sort"

	"github.com/MaksLuk/Diploma/internal/schedule"
)

type Collision struct {
	Type      string        `json:"type"` // group, teacher or classroom
	ID        uint          `json:"id"`
	Week      schedule.Week `json:"week"`
	Day       schedule.Day  `json:"day"`
	Pair      schedule.Pair `json:"pair"`
	LessonIDs [2]uint       `json:"lesson_ids"`
}

// Window is a run of free pairs between two lessons of the same day.
type Window struct {
	ID        uint          `json:"id"`
	Week      schedule.Week `json:"week"`
	Day       schedule.Day  `json:"day"`
	StartPair schedule.Pair `json:"window_start_pair"`
	EndPair   schedule.Pair `json:"window_end_pair"`
	Size      int           `json:"window_size"`
}

type Report struct {
	Errors         []Collision `json:"errors"`
	GroupWindows   []Window    `json:"group_windows"`
	TeacherWindows []Window    `json:"teacher_windows"`
}

type dayKey struct {
	id   uint
	week schedule.Week
	day  schedule.Day
}

type occupancy map[dayKey][]Lesson

func (o occupancy) add(id uint, l Lesson) {
	k := dayKey{id, l.Week, l.Day}
	o[k] = append(o[k], l)
}

// sorted returns the keys in id, week, day order with each day's lessons
// sorted by pair.
func (o occupancy) sorted() []dayKey {
	keys := make([]dayKey, 0, len(o))
	for k, ls := range o {
		keys = append(keys, k)
		sort.Slice(ls, func(i, j int) bool {
			if ls[i].Pair != ls[j].Pair {
				return ls[i].Pair < ls[j].Pair
			}
			return ls[i].ID < ls[j].ID
		})
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.id != b.id {
			return a.id < b.id
		}
		if a.week != b.week {
			return a.week < b.week
		}
		return a.day < b.day
	})
	return keys
}

func (o occupancy) collisions(kind string) []Collision {
	var out []Collision
	for _, k := range o.sorted() {
		ls := o[k]
		for i := 1; i < len(ls); i++ {
			if ls[i].Pair == ls[i-1].Pair {
				out = append(out, Collision{
					Type: kind, ID: k.id, Week: k.week, Day: k.day, Pair: ls[i].Pair,
					LessonIDs: [2]uint{ls[i-1].ID, ls[i].ID},
				})
			}
		}
	}
	return out
}

func (o occupancy) windows() []Window {
	var out []Window
	for _, k := range o.sorted() {
		ls := o[k]
		for i := 1; i < len(ls); i++ {
			gap := int(ls[i].Pair-ls[i-1].Pair) - 1
			if gap > 0 {
				out = append(out, Window{
					ID: k.id, Week: k.week, Day: k.day,
					StartPair: ls[i-1].Pair, EndPair: ls[i].Pair, Size: gap,
				})
			}
		}
	}
	return out
}

// FindCollisions reports two lessons in the same pair for one group, teacher
// or classroom, and the idle windows in group and teacher days.
func FindCollisions(lessons []Lesson, lines []Line) Report {
	byID := make(map[uint]Line, len(lines))
	for _, l := range lines {
		byID[l.ID] = l
	}

	groups, teachers, rooms := make(occupancy), make(occupancy), make(occupancy)
	for _, les := range lessons {
		line, ok := byID[les.CurriculumID]
		if !ok {
			continue
		}
		for _, g := range line.GroupIDs {
			groups.add(g, les)
		}
		for _, t := range line.TeacherIDs {
			teachers.add(t, les)
		}
		rooms.add(les.ClassroomID, les)
	}

	var r Report
	r.Errors = append(r.Errors, groups.collisions("group")...)
	r.Errors = append(r.Errors, teachers.collisions("teacher")...)
	r.Errors = append(r.Errors, rooms.collisions("classroom")...)
	r.GroupWindows = groups.windows()
	r.TeacherWindows = teachers.windows()
	return r
}
