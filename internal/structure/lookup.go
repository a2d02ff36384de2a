package structure

import (
	"github.com/pkg/errors"

	"github.com/MaksLuk/Diploma/internal/models"
)

var (
	ErrNoMatch   = errors.New("no match")
	ErrAmbiguous = errors.New("ambiguous match")
)

// ClassroomByNumber finds the room with the given display number.
func ClassroomByNumber(rooms []models.ClassroomData, number string) (models.ClassroomData, error) {
	var found []models.ClassroomData
	for _, r := range rooms {
		if r.Number == number {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return models.ClassroomData{}, errors.Wrapf(ErrNoMatch, "classroom %q", number)
	case 1:
		return found[0], nil
	default:
		return models.ClassroomData{}, errors.Wrapf(ErrAmbiguous, "classroom %q", number)
	}
}

func ClassroomByID(rooms []models.ClassroomData, id uint) (models.ClassroomData, bool) {
	for _, r := range rooms {
		if r.ID == id {
			return r, true
		}
	}
	return models.ClassroomData{}, false
}

func CurriculumByID(lines []models.CurriculumData, id uint) (models.CurriculumData, bool) {
	for _, l := range lines {
		if l.ID == id {
			return l, true
		}
	}
	return models.CurriculumData{}, false
}

// CurriculumFor finds the study plan line a displayed cell was made from: the
// subject (full or short name) must match and the line must be taught to the
// group. teachers narrows the search when it is not empty.
func CurriculumFor(lines []models.CurriculumData, subject, teachers, group string) (models.CurriculumData, error) {
	var found []models.CurriculumData
	for _, l := range lines {
		if l.Subject != subject && l.SubjectName != subject {
			continue
		}
		if teachers != "" && l.Teachers() != teachers {
			continue
		}
		if !contains(l.Groups, group) {
			continue
		}
		found = append(found, l)
	}
	switch len(found) {
	case 0:
		return models.CurriculumData{}, errors.Wrapf(ErrNoMatch, "curriculum %q for %s", subject, group)
	case 1:
		return found[0], nil
	default:
		return models.CurriculumData{}, errors.Wrapf(ErrAmbiguous, "curriculum %q for %s", subject, group)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
