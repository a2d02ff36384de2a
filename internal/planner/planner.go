// Package planner places curriculum lines on the two-week grid and checks a
// timetable for overlaps and idle windows.
package planner

import (
	"sort"

	"github.com/MaksLuk/Diploma/internal/schedule"
)

type Slot struct {
	Week schedule.Week `json:"week"`
	Day  schedule.Day  `json:"day"`
	Pair schedule.Pair `json:"pair"`
}

type Lesson struct {
	ID uint `json:"id,omitempty"`
	Slot
	ClassroomID  uint                `json:"classroom_id"`
	CurriculumID uint                `json:"curriculum_id"`
	LessonType   schedule.LessonType `json:"lesson_type"`
}

// Line is a curriculum line: who is taught, by whom and how many students
// the room has to seat.
type Line struct {
	ID         uint
	Hours      int
	GroupIDs   []uint
	TeacherIDs []uint
	Students   int
}

type Room struct {
	ID       uint
	Capacity int
}

// Templates lists the lessons a line needs per two-week cycle by its
// semester hours.
var Templates = map[int][]schedule.LessonType{
	72:  {schedule.Lecture},
	108: {schedule.Lecture, schedule.Lab},
	144: {schedule.Lecture, schedule.Lab, schedule.Lab},
}

type Unplaced struct {
	CurriculumID uint                `json:"curriculum_id"`
	LessonType   schedule.LessonType `json:"lesson_type"`
}

type Result struct {
	Placed   []Lesson   `json:"placed"`
	Unplaced []Unplaced `json:"unplaced"`
	// Lines whose hours have no template.
	Skipped []uint `json:"skipped"`
}

type resource byte

const (
	groupRes resource = iota
	teacherRes
	roomRes
)

type busyKey struct {
	res resource
	id  uint
	Slot
}

type busySet map[busyKey]bool

func (b busySet) mark(slot Slot, room uint, groups, teachers []uint) {
	b[busyKey{roomRes, room, slot}] = true
	for _, g := range groups {
		b[busyKey{groupRes, g, slot}] = true
	}
	for _, t := range teachers {
		b[busyKey{teacherRes, t, slot}] = true
	}
}

func (b busySet) any(res resource, ids []uint, slot Slot) bool {
	for _, id := range ids {
		if b[busyKey{res, id, slot}] {
			return true
		}
	}
	return false
}

// AutoSchedule fills in the lessons each line still misses. Lines that need
// the biggest room go first; each lesson takes the earliest slot and the
// first room where nobody involved is busy.
func AutoSchedule(existing []Lesson, lines []Line, rooms []Room) Result {
	byID := make(map[uint]Line, len(lines))
	for _, l := range lines {
		byID[l.ID] = l
	}

	busy := make(busySet)
	have := make(map[uint]map[schedule.LessonType]int)
	for _, les := range existing {
		line := byID[les.CurriculumID]
		busy.mark(les.Slot, les.ClassroomID, line.GroupIDs, line.TeacherIDs)
		if have[les.CurriculumID] == nil {
			have[les.CurriculumID] = make(map[schedule.LessonType]int)
		}
		have[les.CurriculumID][les.LessonType]++
	}

	type job struct {
		line  Line
		need  []schedule.LessonType
		rooms []uint
	}
	var res Result
	var jobs []job
	for _, l := range lines {
		tmpl, ok := Templates[l.Hours]
		if !ok {
			res.Skipped = append(res.Skipped, l.ID)
			continue
		}
		need := missing(tmpl, have[l.ID])
		if len(need) == 0 || len(l.GroupIDs) == 0 {
			continue
		}
		var fit []uint
		for _, r := range rooms {
			if r.Capacity >= l.Students {
				fit = append(fit, r.ID)
			}
		}
		jobs = append(jobs, job{line: l, need: need, rooms: fit})
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i].line, jobs[j].line
		if a.Students != b.Students {
			return a.Students > b.Students
		}
		return len(a.GroupIDs) > len(b.GroupIDs)
	})

	for _, j := range jobs {
		for _, t := range j.need {
			les, ok := place(busy, j.line, j.rooms)
			if !ok {
				res.Unplaced = append(res.Unplaced, Unplaced{CurriculumID: j.line.ID, LessonType: t})
				continue
			}
			les.LessonType = t
			res.Placed = append(res.Placed, les)
		}
	}
	return res
}

func place(busy busySet, line Line, rooms []uint) (Lesson, bool) {
	for w := schedule.Week(1); w <= schedule.Weeks; w++ {
		for d := schedule.Day(1); d <= schedule.Days; d++ {
			for p := schedule.Pair(1); p <= schedule.Pairs; p++ {
				slot := Slot{Week: w, Day: d, Pair: p}
				if busy.any(groupRes, line.GroupIDs, slot) || busy.any(teacherRes, line.TeacherIDs, slot) {
					continue
				}
				for _, room := range rooms {
					if busy[busyKey{roomRes, room, slot}] {
						continue
					}
					busy.mark(slot, room, line.GroupIDs, line.TeacherIDs)
					return Lesson{Slot: slot, ClassroomID: room, CurriculumID: line.ID}, true
				}
			}
		}
	}
	return Lesson{}, false
}

// missing returns the template lessons not yet covered by have, lectures
// before labs.
func missing(tmpl []schedule.LessonType, have map[schedule.LessonType]int) []schedule.LessonType {
	want := make(map[schedule.LessonType]int)
	for _, t := range tmpl {
		want[t]++
	}
	var out []schedule.LessonType
	for _, t := range []schedule.LessonType{schedule.Lecture, schedule.Lab} {
		for n := want[t] - have[t]; n > 0; n-- {
			out = append(out, t)
		}
	}
	return out
}
