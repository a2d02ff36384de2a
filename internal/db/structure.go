package db

import (
	"context"

	"github.com/pkg/errors"

	"github.com/MaksLuk/Diploma/internal/models"
)

// AddDivision adds a university (no parent), faculty or department.
func AddDivision(ctx context.Context, req models.AddDivisionRequest) (uint, error) {
	if req.ParentID != nil {
		if err := exists(ctx, &models.Division{}, *req.ParentID, "parent division"); err != nil {
			return 0, err
		}
	}
	if err := taken(ctx, &models.Division{}, "name", req.Name, "division"); err != nil {
		return 0, err
	}

	d := models.Division{Name: req.Name, ShortName: req.ShortName, ParentID: req.ParentID}
	if err := create(ctx, &d, "division "+req.Name); err != nil {
		return 0, err
	}
	return d.ID, nil
}

func AddSpeciality(ctx context.Context, req models.AddSpecialityRequest) (uint, error) {
	if err := exists(ctx, &models.Division{}, req.DepartmentID, "department"); err != nil {
		return 0, err
	}
	if err := taken(ctx, &models.Speciality{}, "name", req.Name, "speciality"); err != nil {
		return 0, err
	}

	s := models.Speciality{Name: req.Name, DepartmentID: req.DepartmentID}
	if err := create(ctx, &s, "speciality "+req.Name); err != nil {
		return 0, err
	}
	return s.ID, nil
}

func AddGroup(ctx context.Context, req models.AddGroupRequest) (uint, error) {
	if !req.Course.Valid() {
		return 0, errors.Wrapf(ErrInvalid, "course %q", req.Course)
	}
	if err := exists(ctx, &models.Speciality{}, req.SpecialityID, "speciality"); err != nil {
		return 0, err
	}
	if err := taken(ctx, &models.Group{}, "name", req.Name, "group"); err != nil {
		return 0, err
	}

	g := models.Group{
		Name:         req.Name,
		Course:       req.Course,
		SpecialityID: req.SpecialityID,
		StudentCount: req.StudentCount,
	}
	if err := create(ctx, &g, "group "+req.Name); err != nil {
		return 0, err
	}
	return g.ID, nil
}

func AddTeacher(ctx context.Context, req models.AddTeacherRequest) (uint, error) {
	if err := exists(ctx, &models.Division{}, req.DepartmentID, "department"); err != nil {
		return 0, err
	}
	if err := taken(ctx, &models.Teacher{}, "full_name", req.Name, "teacher"); err != nil {
		return 0, err
	}

	t := models.Teacher{FullName: req.Name, DepartmentID: req.DepartmentID}
	if err := create(ctx, &t, "teacher "+req.Name); err != nil {
		return 0, err
	}
	return t.ID, nil
}

func AddClassroom(ctx context.Context, req models.AddClassroomRequest) (uint, error) {
	if err := exists(ctx, &models.Division{}, req.FacultyID, "faculty"); err != nil {
		return 0, err
	}
	if req.DepartmentID != nil {
		if err := exists(ctx, &models.Division{}, *req.DepartmentID, "department"); err != nil {
			return 0, err
		}
	}
	if err := taken(ctx, &models.Classroom{}, "name", req.Name, "classroom"); err != nil {
		return 0, err
	}

	c := models.Classroom{
		Name:         req.Name,
		Capacity:     req.Capacity,
		FacultyID:    req.FacultyID,
		DepartmentID: req.DepartmentID,
	}
	if err := create(ctx, &c, "classroom "+req.Name); err != nil {
		return 0, err
	}
	return c.ID, nil
}

// GetUniversityData assembles the whole structural tree.
func GetUniversityData(ctx context.Context) ([]models.UniversityData, error) {
	var (
		divisions    []models.Division
		specialities []models.Speciality
		groups       []models.Group
		teachers     []models.Teacher
		classrooms   []models.Classroom
	)
	for _, dst := range []any{&divisions, &specialities, &groups, &teachers, &classrooms} {
		if err := tx(ctx).Order("id").Find(dst).Error; err != nil {
			return nil, err
		}
	}

	children := make(map[uint][]models.Division) // 0 holds the universities
	for _, d := range divisions {
		var parent uint
		if d.ParentID != nil {
			parent = *d.ParentID
		}
		children[parent] = append(children[parent], d)
	}

	specsByDep := make(map[uint][]models.Speciality)
	for _, s := range specialities {
		specsByDep[s.DepartmentID] = append(specsByDep[s.DepartmentID], s)
	}
	groupsBySpec := make(map[uint][]models.GroupData)
	for _, g := range groups {
		groupsBySpec[g.SpecialityID] = append(groupsBySpec[g.SpecialityID], models.GroupData{
			ID: g.ID, Name: g.Name, Course: g.Course, StudentsCount: g.StudentCount,
		})
	}
	teachersByDep := make(map[uint][]models.LecturerData)
	for _, t := range teachers {
		teachersByDep[t.DepartmentID] = append(teachersByDep[t.DepartmentID], models.LecturerData{ID: t.ID, FullName: t.FullName})
	}
	roomsByDep := make(map[uint][]models.ClassroomData)
	roomsByFaculty := make(map[uint][]models.ClassroomData)
	for _, r := range classrooms {
		room := models.ClassroomData{ID: r.ID, Number: r.Name, Capacity: r.Capacity}
		if r.DepartmentID != nil {
			roomsByDep[*r.DepartmentID] = append(roomsByDep[*r.DepartmentID], room)
		} else {
			roomsByFaculty[r.FacultyID] = append(roomsByFaculty[r.FacultyID], room)
		}
	}

	result := make([]models.UniversityData, 0, len(children[0]))
	for _, uni := range children[0] {
		u := models.UniversityData{ID: uni.ID, Name: uni.Name, Faculties: []models.FacultyData{}}
		for _, fac := range children[uni.ID] {
			f := models.FacultyData{
				ID:          fac.ID,
				Name:        fac.Name,
				Departments: []models.DepartmentData{},
				Classrooms:  nonNil(roomsByFaculty[fac.ID]),
			}
			for _, dep := range children[fac.ID] {
				d := models.DepartmentData{
					ID:           dep.ID,
					Name:         dep.Name,
					Specialities: []models.SpecialityData{},
					Lecturers:    nonNil(teachersByDep[dep.ID]),
					Classrooms:   nonNil(roomsByDep[dep.ID]),
				}
				if dep.ShortName != nil {
					d.ShortName = *dep.ShortName
				}
				for _, s := range specsByDep[dep.ID] {
					d.Specialities = append(d.Specialities, models.SpecialityData{
						ID: s.ID, Name: s.Name, Groups: nonNil(groupsBySpec[s.ID]),
					})
				}
				f.Departments = append(f.Departments, d)
			}
			u.Faculties = append(u.Faculties, f)
		}
		result = append(result, u)
	}
	return result, nil
}

// nonNil keeps empty lists as [] rather than null on the wire.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
