package models

import "github.com/MaksLuk/Diploma/internal/schedule"

// Wire types of the read endpoints. UniversityData is the nested structural
// tree returned by /university_data.

type GroupData struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Course        Course `json:"course"`
	StudentsCount int    `json:"students_count"`
}

type SpecialityData struct {
	ID     uint        `json:"id"`
	Name   string      `json:"name"`
	Groups []GroupData `json:"groups"`
}

type LecturerData struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

type ClassroomData struct {
	ID       uint   `json:"id"`
	Number   string `json:"number"`
	Capacity int    `json:"capacity"`
}

type DepartmentData struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	ShortName    string           `json:"short_name"`
	Specialities []SpecialityData `json:"specialities"`
	Lecturers    []LecturerData   `json:"lecturers"`
	Classrooms   []ClassroomData  `json:"classrooms"`
}

// FacultyData.Classrooms holds the rooms that belong to no department.
type FacultyData struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Departments []DepartmentData `json:"departments"`
	Classrooms  []ClassroomData  `json:"classrooms"`
}

type UniversityData struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	Faculties []FacultyData `json:"faculties"`
}

type SubjectData struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// FlowData lists the names of the flow's groups.
type FlowData struct {
	ID     uint     `json:"id"`
	Groups []string `json:"groups"`
}

// CurriculumData is a study plan line as the UI shows it. Subject is the
// short subject name, SubjectName the full one. Groups holds the single
// group of the line or every group of its flow.
type CurriculumData struct {
	ID               uint     `json:"id"`
	Subject          string   `json:"subject"`
	SubjectName      string   `json:"subject_name"`
	Groups           []string `json:"groups"`
	Hours            int      `json:"hours"`
	PrimaryTeacher   string   `json:"primary_teacher"`
	SecondaryTeacher *string  `json:"secondary_teacher"`
}

// Teachers renders the teachers the way schedule cells display them.
func (c CurriculumData) Teachers() string {
	if c.SecondaryTeacher == nil || *c.SecondaryTeacher == "" {
		return c.PrimaryTeacher
	}
	return c.PrimaryTeacher + ", " + *c.SecondaryTeacher
}

// ScheduleData is the body of GET /schedule.
type ScheduleData = schedule.Store
