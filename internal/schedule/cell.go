package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Two-week rotating cycle, Monday through Saturday, eight pairs a day.
const (
	Weeks = 2
	Days  = 6
	Pairs = 8
)

type (
	Week int
	Day  int
	Pair int
)

func (w Week) Valid() bool { return w >= 1 && w <= Weeks }
func (d Day) Valid() bool  { return d >= 1 && d <= Days }
func (p Pair) Valid() bool { return p >= 1 && p <= Pairs }

var dayNames = [Days]string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота"}

var pairTimes = [Pairs]string{
	"08:00 - 09:35",
	"09:50 - 11:25",
	"11:40 - 13:15",
	"13:45 - 15:20",
	"15:35 - 17:10",
	"17:25 - 19:00",
	"19:15 - 20:50",
	"21:05 - 22:35",
}

func (d Day) String() string {
	if !d.Valid() {
		return "день " + strconv.Itoa(int(d))
	}
	return dayNames[d-1]
}

// String renders the pair the way the timetable grid labels its rows,
// e.g. "1 пара [08:00 - 09:35]".
func (p Pair) String() string {
	if !p.Valid() {
		return strconv.Itoa(int(p)) + " пара"
	}
	return fmt.Sprintf("%d пара [%s]", int(p), pairTimes[p-1])
}

// ParseDay accepts a Russian or English day name (or a prefix of one) and
// returns 0 when nothing matches.
func ParseDay(s string) Day {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "понедельник"), strings.Contains(s, "mon"):
		return 1
	case strings.Contains(s, "вторник"), strings.Contains(s, "tue"):
		return 2
	case strings.Contains(s, "среда"), strings.Contains(s, "wed"):
		return 3
	case strings.Contains(s, "четверг"), strings.Contains(s, "thu"):
		return 4
	case strings.Contains(s, "пятница"), strings.Contains(s, "fri"):
		return 5
	case strings.Contains(s, "суббота"), strings.Contains(s, "sat"):
		return 6
	default:
		return 0
	}
}

// ParsePair reads the leading pair number from a row label such as
// "3 пара [11:40 - 13:15]".
func ParsePair(s string) Pair {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end == -1 {
		end = len(s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return Pair(n)
}

type LessonType string

const (
	Lecture LessonType = "лекционное"
	Lab     LessonType = "лабораторное"
)

func (t LessonType) Valid() bool { return t == Lecture || t == Lab }

// Address is the coordinate of one grid cell.
type Address struct {
	Week  Week   `json:"week"`
	Day   Day    `json:"day"`
	Pair  Pair   `json:"pair"`
	Group string `json:"group"`
}

func (a Address) String() string {
	return fmt.Sprintf("week %d, %s, %s, %s", a.Week, a.Day, a.Pair, a.Group)
}

// Cell is one scheduled lesson occurrence. ClassroomID and CurriculumID are
// filled in by the server so that clients never have to resolve them back
// from the display strings.
type Cell struct {
	ID           uint       `json:"id"`
	LessonType   LessonType `json:"lesson_type"`
	Subject      string     `json:"subject"`
	Teachers     string     `json:"teachers"`
	Classroom    string     `json:"classroom"`
	ClassroomID  uint       `json:"classroom_id,omitempty"`
	CurriculumID uint       `json:"curriculum_id,omitempty"`
}

// Patch carries the new content of an edited cell. Zero fields keep the
// current value.
type Patch struct {
	LessonType   LessonType
	Subject      string
	Teachers     string
	Classroom    string
	ClassroomID  uint
	CurriculumID uint
}

func (p Patch) apply(c Cell) Cell {
	if p.LessonType != "" {
		c.LessonType = p.LessonType
	}
	if p.Subject != "" {
		c.Subject = p.Subject
	}
	if p.Teachers != "" {
		c.Teachers = p.Teachers
	}
	if p.Classroom != "" {
		c.Classroom = p.Classroom
	}
	if p.ClassroomID != 0 {
		c.ClassroomID = p.ClassroomID
	}
	if p.CurriculumID != 0 {
		c.CurriculumID = p.CurriculumID
	}
	return c
}
