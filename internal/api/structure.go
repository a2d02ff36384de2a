package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/MaksLuk/Diploma/internal/cache"
	"github.com/MaksLuk/Diploma/internal/db"
	"github.com/MaksLuk/Diploma/internal/models"
)

// respondError maps persistence errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, db.ErrInvalid):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s [%s]: %v\n", c.Request.Method, c.FullPath(), c.GetString("request_id"), err)
	}
	c.JSON(status, models.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
}

// created answers with the new id and drops the cached views that include
// the new row.
func created(c *gin.Context, id uint, keys ...string) {
	cache.Invalidate(c.Request.Context(), keys...)
	c.JSON(http.StatusCreated, models.IDResponse{ID: id})
}

// cached serves key from the cache or computes and stores it.
func cached[T any](c *gin.Context, key string, load func() (T, error)) {
	ctx := c.Request.Context()
	var v T
	if cache.Get(ctx, key, &v) {
		c.JSON(http.StatusOK, v)
		return
	}
	v, err := load()
	if err != nil {
		respondError(c, err)
		return
	}
	cache.Set(ctx, key, v)
	c.JSON(http.StatusOK, v)
}

// GetUniversityData godoc
// @Summary      Get the structural tree
// @Description  Returns universities with their faculties, departments, specialities, groups, lecturers and classrooms
// @Tags         structure
// @Produce      json
// @Success      200  {array}   models.UniversityData
// @Failure      500  {object}  models.ErrorResponse
// @Router       /university_data [get]
func GetUniversityData(c *gin.Context) {
	cached(c, cache.KeyUniversityData, func() ([]models.UniversityData, error) {
		return db.GetUniversityData(c.Request.Context())
	})
}

// AddDivision godoc
// @Summary      Add a structural division
// @Description  A division without parent is a university, its children are faculties, theirs departments
// @Tags         structure
// @Accept       json
// @Produce      json
// @Param        body  body      models.AddDivisionRequest  true  "Division"
// @Success      201   {object}  models.IDResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /structural_divizion [post]
func AddDivision(c *gin.Context) {
	var req models.AddDivisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := db.AddDivision(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id, cache.KeyUniversityData)
}

// AddSpeciality godoc
// @Summary      Add a speciality to a department
// @Tags         structure
// @Accept       json
// @Produce      json
// @Param        body  body      models.AddSpecialityRequest  true  "Speciality"
// @Success      201   {object}  models.IDResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /speciality [post]
func AddSpeciality(c *gin.Context) {
	var req models.AddSpecialityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := db.AddSpeciality(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id, cache.KeyUniversityData)
}

// AddGroup godoc
// @Summary      Add a student group
// @Tags         structure
// @Accept       json
// @Produce      json
// @Param        body  body      models.AddGroupRequest  true  "Group"
// @Success      201   {object}  models.IDResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /group [post]
func AddGroup(c *gin.Context) {
	var req models.AddGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := db.AddGroup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id, cache.KeyUniversityData)
}

// AddTeacher godoc
// @Summary      Add a lecturer to a department
// @Tags         structure
// @Accept       json
// @Produce      json
// @Param        body  body      models.AddTeacherRequest  true  "Lecturer"
// @Success      201   {object}  models.IDResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /teacher [post]
func AddTeacher(c *gin.Context) {
	var req models.AddTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := db.AddTeacher(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id, cache.KeyUniversityData)
}

// AddClassroom godoc
// @Summary      Add a classroom
// @Description  A classroom belongs to a faculty and optionally to one of its departments
// @Tags         structure
// @Accept       json
// @Produce      json
// @Param        body  body      models.AddClassroomRequest  true  "Classroom"
// @Success      201   {object}  models.IDResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /classroom [post]
func AddClassroom(c *gin.Context) {
	var req models.AddClassroomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := db.AddClassroom(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id, cache.KeyUniversityData)
}

// GetSubjects godoc
// @Summary      List subjects
// @Tags         curriculum
// @Produce      json
// @Success      200  {array}   models.SubjectData
// @Router       /subject [get]
func GetSubjects(c *gin.Context) {
	cached(c, cache.KeySubjects, func() ([]models.SubjectData, error) {
		return db.GetSubjects(c.Request.Context())
	})
}

// AddSubject godoc
// @Summary      Add a subject
// @Tags         curriculum
// @Accept       json
// @Produce      json
// @Param        body  body      models.AddSubjectRequest  true  "Subject"
// @Success      201   {object}  models.IDResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /subject [post]
func AddSubject(c *gin.Context) {
	var req models.AddSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := db.AddSubject(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id, cache.KeySubjects)
}

// GetFlows godoc
// @Summary      List flows
// @Tags         curriculum
// @Produce      json
// @Success      200  {array}   models.FlowData
// @Router       /flow [get]
func GetFlows(c *gin.Context) {
	cached(c, cache.KeyFlows, func() ([]models.FlowData, error) {
		return db.GetFlows(c.Request.Context())
	})
}

// AddFlow godoc
// @Summary      Add a flow
// @Description  Groups, given by name, that are taught together
// @Tags         curriculum
// @Accept       json
// @Produce      json
// @Param        body  body      models.AddFlowRequest  true  "Flow"
// @Success      201   {object}  models.IDResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /flow [post]
func AddFlow(c *gin.Context) {
	var req models.AddFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := db.AddFlow(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id, cache.KeyFlows)
}

// GetCurriculum godoc
// @Summary      List curriculum lines
// @Tags         curriculum
// @Produce      json
// @Success      200  {array}   models.CurriculumData
// @Router       /curriculum [get]
func GetCurriculum(c *gin.Context) {
	cached(c, cache.KeyCurriculum, func() ([]models.CurriculumData, error) {
		return db.GetCurriculum(c.Request.Context())
	})
}

// AddCurriculum godoc
// @Summary      Add a curriculum line
// @Description  Plans a subject for exactly one of a group or a flow
// @Tags         curriculum
// @Accept       json
// @Produce      json
// @Param        body  body      models.AddCurriculumRequest  true  "Curriculum line"
// @Success      201   {object}  models.IDResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Failure      409   {object}  models.ErrorResponse
// @Router       /curriculum [post]
func AddCurriculum(c *gin.Context) {
	var req models.AddCurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := db.AddCurriculum(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id, cache.KeyCurriculum)
}
