package models

import "github.com/MaksLuk/Diploma/internal/schedule"

// Division is a node of the structural tree. Divisions without a parent are
// universities, their children are faculties, grandchildren are departments.
type Division struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	ShortName *string
	ParentID  *uint `gorm:"index"`

	Parent *Division
}

type Speciality struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;not null"`
	DepartmentID uint   `gorm:"not null;index"`

	Department Division `gorm:"foreignKey:DepartmentID"`
}

type Group struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;not null"`
	Course       Course `gorm:"not null"`
	SpecialityID uint   `gorm:"not null;index"`
	StudentCount int    `gorm:"not null"`

	Speciality Speciality `gorm:"foreignKey:SpecialityID"`
	Flows      []Flow     `gorm:"many2many:flow_groups;"`
}

// TableName keeps the table clear of the GROUPS keyword.
func (Group) TableName() string { return "student_groups" }

// Flow is a set of groups taught a subject together.
type Flow struct {
	ID     uint    `gorm:"primaryKey"`
	Groups []Group `gorm:"many2many:flow_groups;"`
}

type Classroom struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;not null"`
	Capacity     int    `gorm:"not null"`
	FacultyID    uint   `gorm:"not null;index"`
	DepartmentID *uint  `gorm:"index"`

	Faculty    Division  `gorm:"foreignKey:FacultyID"`
	Department *Division `gorm:"foreignKey:DepartmentID"`
}

type Subject struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	ShortName string `gorm:"not null"`
}

type Teacher struct {
	ID           uint   `gorm:"primaryKey"`
	FullName     string `gorm:"uniqueIndex;not null"`
	DepartmentID uint   `gorm:"not null;index"`

	Department Division `gorm:"foreignKey:DepartmentID"`
}

// Curriculum is one line of the study plan: a subject taught to either a
// group or a flow for a number of hours per semester.
type Curriculum struct {
	ID                 uint  `gorm:"primaryKey"`
	SubjectID          uint  `gorm:"not null;index"`
	Hours              int   `gorm:"not null;check:hours_check,hours IN (72, 108, 144)"`
	PrimaryTeacherID   uint  `gorm:"not null"`
	SecondaryTeacherID *uint
	GroupID            *uint `gorm:"index"`
	FlowID             *uint `gorm:"index"`

	Subject          Subject  `gorm:"foreignKey:SubjectID"`
	PrimaryTeacher   Teacher  `gorm:"foreignKey:PrimaryTeacherID"`
	SecondaryTeacher *Teacher `gorm:"foreignKey:SecondaryTeacherID"`
	Group            *Group   `gorm:"foreignKey:GroupID"`
	Flow             *Flow    `gorm:"foreignKey:FlowID"`
}

// Lesson is a curriculum line placed on the two-week grid.
type Lesson struct {
	ID           uint                `gorm:"primaryKey"`
	Week         schedule.Week       `gorm:"not null;check:week_check,week IN (1, 2)"`
	Day          schedule.Day        `gorm:"not null;check:day_check,day BETWEEN 1 AND 6"`
	Pair         schedule.Pair       `gorm:"not null;check:pair_check,pair BETWEEN 1 AND 8"`
	ClassroomID  uint                `gorm:"not null;index"`
	CurriculumID uint                `gorm:"not null;index"`
	LessonType   schedule.LessonType `gorm:"not null"`

	Classroom  Classroom  `gorm:"foreignKey:ClassroomID"`
	Curriculum Curriculum `gorm:"foreignKey:CurriculumID"`
}

type Course string

const (
	Bachelor1   Course = "Бакалавриат, 1"
	Bachelor2   Course = "Бакалавриат, 2"
	Bachelor3   Course = "Бакалавриат, 3"
	Bachelor4   Course = "Бакалавриат, 4"
	Master1     Course = "Магистратура, 1"
	Master2     Course = "Магистратура, 2"
	Specialist1 Course = "Специалитет, 1"
	Specialist2 Course = "Специалитет, 2"
	Specialist3 Course = "Специалитет, 3"
	Specialist4 Course = "Специалитет, 4"
	Specialist5 Course = "Специалитет, 5"
)

var Courses = []Course{
	Bachelor1, Bachelor2, Bachelor3, Bachelor4,
	Master1, Master2,
	Specialist1, Specialist2, Specialist3, Specialist4, Specialist5,
}

func (c Course) Valid() bool {
	for _, k := range Courses {
		if c == k {
			return true
		}
	}
	return false
}

// CurriculumHours are the semester loads the planner has templates for.
var CurriculumHours = []int{72, 108, 144}
