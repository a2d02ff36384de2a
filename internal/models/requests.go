package models

import "github.com/MaksLuk/Diploma/internal/schedule"

// Request bodies shared by the API handlers and the client. binding tags are
// checked by gin (validator/v10) on the server and by the timetable editor
// before a request is sent.

type AddDivisionRequest struct {
	Name      string  `json:"name" binding:"required"`
	ShortName *string `json:"short_name"`
	ParentID  *uint   `json:"parent_id"`
}

type AddSpecialityRequest struct {
	DepartmentID uint   `json:"department_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

type AddGroupRequest struct {
	SpecialityID uint   `json:"speciality_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Course       Course `json:"course" binding:"required"`
	StudentCount int    `json:"student_count" binding:"min=0"`
}

type AddTeacherRequest struct {
	DepartmentID uint   `json:"department_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

type AddClassroomRequest struct {
	FacultyID    uint   `json:"faculty_id" binding:"required"`
	DepartmentID *uint  `json:"department_id"`
	Name         string `json:"name" binding:"required"`
	Capacity     int    `json:"capacity" binding:"min=1"`
}

type AddSubjectRequest struct {
	Name      string `json:"name" binding:"required"`
	ShortName string `json:"short_name" binding:"required"`
}

type AddFlowRequest struct {
	Groups []string `json:"groups" binding:"required,min=1,dive,required"`
}

type AddCurriculumRequest struct {
	SubjectID          uint  `json:"subject_id" binding:"required"`
	Hours              int   `json:"hours" binding:"required,oneof=72 108 144"`
	PrimaryTeacherID   uint  `json:"primary_teacher_id" binding:"required"`
	SecondaryTeacherID *uint `json:"secondary_teacher_id"`
	GroupID            *uint `json:"group_id" binding:"required_without=FlowID,excluded_with=FlowID"`
	FlowID             *uint `json:"flow_id" binding:"required_without=GroupID,excluded_with=GroupID"`
}

// AddLessonRequest places a curriculum line on the grid.
type AddLessonRequest struct {
	Week         schedule.Week       `json:"week" binding:"required,min=1,max=2"`
	Day          schedule.Day        `json:"day" binding:"required,min=1,max=6"`
	Pair         schedule.Pair       `json:"pair" binding:"required,min=1,max=8"`
	ClassroomID  uint                `json:"classroom_id" binding:"required"`
	CurriculumID uint                `json:"curriculum_id" binding:"required"`
	LessonType   schedule.LessonType `json:"lesson_type" binding:"required,oneof=лекционное лабораторное"`
}

// EditLessonRequest replaces the content of the lesson named in the path.
type EditLessonRequest struct {
	ClassroomID  uint                `json:"classroom_id" binding:"required"`
	CurriculumID uint                `json:"curriculum_id" binding:"required"`
	LessonType   schedule.LessonType `json:"lesson_type" binding:"required,oneof=лекционное лабораторное"`
}

type IDResponse struct {
	ID uint `json:"id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
