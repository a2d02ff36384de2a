package db

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/MaksLuk/Diploma/internal/models"
)

// AddSubject adds a subject. Only the full name has to be unique.
func AddSubject(ctx context.Context, req models.AddSubjectRequest) (uint, error) {
	if err := taken(ctx, &models.Subject{}, "name", req.Name, "subject"); err != nil {
		return 0, err
	}

	s := models.Subject{Name: req.Name, ShortName: req.ShortName}
	if err := create(ctx, &s, "subject "+req.Name); err != nil {
		return 0, err
	}
	return s.ID, nil
}

func GetSubjects(ctx context.Context) ([]models.SubjectData, error) {
	var subjects []models.Subject
	if err := tx(ctx).Order("id").Find(&subjects).Error; err != nil {
		return nil, err
	}

	out := make([]models.SubjectData, len(subjects))
	for i, s := range subjects {
		out[i] = models.SubjectData{ID: s.ID, Name: s.Name, ShortName: s.ShortName}
	}
	return out, nil
}

// AddFlow groups existing groups, referenced by name, into a flow.
func AddFlow(ctx context.Context, req models.AddFlowRequest) (uint, error) {
	var groups []models.Group
	if err := tx(ctx).Where("name IN ?", req.Groups).Order("id").Find(&groups).Error; err != nil {
		return 0, err
	}

	found := make(map[string]bool, len(groups))
	for _, g := range groups {
		found[g.Name] = true
	}
	var missing []string
	for _, name := range req.Groups {
		if !found[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return 0, errors.Wrapf(ErrNotFound, "groups %s", strings.Join(missing, ", "))
	}

	f := models.Flow{Groups: groups}
	if err := tx(ctx).Create(&f).Error; err != nil {
		return 0, err
	}
	return f.ID, nil
}

func GetFlows(ctx context.Context) ([]models.FlowData, error) {
	var flows []models.Flow
	if err := tx(ctx).Preload("Groups").Order("id").Find(&flows).Error; err != nil {
		return nil, err
	}

	out := make([]models.FlowData, len(flows))
	for i, f := range flows {
		out[i] = models.FlowData{ID: f.ID, Groups: groupNames(f.Groups)}
	}
	return out, nil
}

// AddCurriculum adds a study plan line for exactly one of a group or a flow.
// A subject can be planned once per group or flow.
func AddCurriculum(ctx context.Context, req models.AddCurriculumRequest) (uint, error) {
	if !validHours(req.Hours) {
		return 0, errors.Wrapf(ErrInvalid, "hours %d", req.Hours)
	}
	if (req.GroupID == nil) == (req.FlowID == nil) {
		return 0, errors.Wrap(ErrInvalid, "either a group or a flow must be given")
	}
	if err := exists(ctx, &models.Subject{}, req.SubjectID, "subject"); err != nil {
		return 0, err
	}
	if err := exists(ctx, &models.Teacher{}, req.PrimaryTeacherID, "teacher"); err != nil {
		return 0, err
	}
	if req.SecondaryTeacherID != nil {
		if err := exists(ctx, &models.Teacher{}, *req.SecondaryTeacherID, "teacher"); err != nil {
			return 0, err
		}
	}

	dup := tx(ctx).Model(&models.Curriculum{}).Where("subject_id = ?", req.SubjectID)
	if req.GroupID != nil {
		if err := exists(ctx, &models.Group{}, *req.GroupID, "group"); err != nil {
			return 0, err
		}
		dup = dup.Where("group_id = ?", *req.GroupID)
	} else {
		if err := exists(ctx, &models.Flow{}, *req.FlowID, "flow"); err != nil {
			return 0, err
		}
		dup = dup.Where("flow_id = ?", *req.FlowID)
	}
	var n int64
	if err := dup.Count(&n).Error; err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, errors.Wrap(ErrConflict, "subject is already planned for this group or flow")
	}

	c := models.Curriculum{
		SubjectID:          req.SubjectID,
		Hours:              req.Hours,
		PrimaryTeacherID:   req.PrimaryTeacherID,
		SecondaryTeacherID: req.SecondaryTeacherID,
		GroupID:            req.GroupID,
		FlowID:             req.FlowID,
	}
	if err := tx(ctx).Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func GetCurriculum(ctx context.Context) ([]models.CurriculumData, error) {
	lines, err := loadCurriculum(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.CurriculumData, len(lines))
	for i, c := range lines {
		out[i] = curriculumData(c)
	}
	return out, nil
}

func loadCurriculum(ctx context.Context) ([]models.Curriculum, error) {
	var lines []models.Curriculum
	err := tx(ctx).
		Preload("Subject").
		Preload("PrimaryTeacher").
		Preload("SecondaryTeacher").
		Preload("Group").
		Preload("Flow.Groups").
		Order("id").
		Find(&lines).Error
	return lines, err
}

func curriculumData(c models.Curriculum) models.CurriculumData {
	d := models.CurriculumData{
		ID:             c.ID,
		Subject:        c.Subject.ShortName,
		SubjectName:    c.Subject.Name,
		Groups:         curriculumGroupNames(c),
		Hours:          c.Hours,
		PrimaryTeacher: c.PrimaryTeacher.FullName,
	}
	if c.SecondaryTeacher != nil {
		name := c.SecondaryTeacher.FullName
		d.SecondaryTeacher = &name
	}
	return d
}

// curriculumGroupNames is the single group of the line or the groups of its flow.
func curriculumGroupNames(c models.Curriculum) []string {
	switch {
	case c.Group != nil:
		return []string{c.Group.Name}
	case c.Flow != nil:
		return groupNames(c.Flow.Groups)
	default:
		return []string{}
	}
}

func groupNames(groups []models.Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func validHours(h int) bool {
	for _, v := range models.CurriculumHours {
		if h == v {
			return true
		}
	}
	return false
}
