package structure

import (
	"github.com/MaksLuk/Diploma/internal/models"
)

// AllDepartments selects the groups of every department of the faculty.
const AllDepartments = "all"

// Selection is the active university, faculty and department. University and
// faculty are matched by name, department by short name or AllDepartments.
type Selection struct {
	University string
	Faculty    string
	Department string
}

// ResolveGroups returns the groups shown as timetable columns for the
// selection, in tree order. An incomplete or unknown selection yields nil.
func ResolveGroups(universities []models.UniversityData, sel Selection) []models.GroupData {
	faculty, ok := findFaculty(universities, sel)
	if !ok || sel.Department == "" {
		return nil
	}

	var groups []models.GroupData
	for _, dep := range faculty.Departments {
		if sel.Department != AllDepartments && dep.ShortName != sel.Department {
			continue
		}
		for _, spec := range dep.Specialities {
			groups = append(groups, spec.Groups...)
		}
	}
	return groups
}

// GroupNames projects groups onto their names.
func GroupNames(groups []models.GroupData) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

// AllGroups lists every group of every university.
func AllGroups(universities []models.UniversityData) []models.GroupData {
	var groups []models.GroupData
	for _, u := range universities {
		for _, f := range u.Faculties {
			for _, d := range f.Departments {
				for _, s := range d.Specialities {
					groups = append(groups, s.Groups...)
				}
			}
		}
	}
	return groups
}

// Classrooms flattens faculty and department rooms into one list.
func Classrooms(universities []models.UniversityData) []models.ClassroomData {
	var rooms []models.ClassroomData
	for _, u := range universities {
		for _, f := range u.Faculties {
			rooms = append(rooms, f.Classrooms...)
			for _, d := range f.Departments {
				rooms = append(rooms, d.Classrooms...)
			}
		}
	}
	return rooms
}

// Lecturers flattens the lecturers of every department.
func Lecturers(universities []models.UniversityData) []models.LecturerData {
	var out []models.LecturerData
	for _, u := range universities {
		for _, f := range u.Faculties {
			for _, d := range f.Departments {
				out = append(out, d.Lecturers...)
			}
		}
	}
	return out
}

func findFaculty(universities []models.UniversityData, sel Selection) (models.FacultyData, bool) {
	if sel.University == "" || sel.Faculty == "" {
		return models.FacultyData{}, false
	}
	for _, u := range universities {
		if u.Name != sel.University {
			continue
		}
		for _, f := range u.Faculties {
			if f.Name == sel.Faculty {
				return f, true
			}
		}
	}
	return models.FacultyData{}, false
}
