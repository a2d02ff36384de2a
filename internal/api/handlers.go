package api

import (
	"bytes"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/MaksLuk/Diploma/internal/cache"
	"github.com/MaksLuk/Diploma/internal/db"
	"github.com/MaksLuk/Diploma/internal/excel"
	"github.com/MaksLuk/Diploma/internal/metrics"
	"github.com/MaksLuk/Diploma/internal/models"
	"github.com/MaksLuk/Diploma/internal/planner"
	"github.com/MaksLuk/Diploma/internal/structure"
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportWorkbook renders the timetable workbook; tests swap it.
var exportWorkbook = excel.Export

func lessonID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid lesson id"})
		return 0, false
	}
	return uint(id), true
}

// GetSchedule godoc
// @Summary      Get the timetable
// @Description  Lessons nested by week, day, pair and group name. A flow lesson is listed under every group of the flow with the same id.
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  models.ScheduleData
// @Failure      500  {object}  models.ErrorResponse
// @Router       /schedule [get]
func GetSchedule(c *gin.Context) {
	cached(c, cache.KeySchedule, func() (models.ScheduleData, error) {
		return db.GetSchedule(c.Request.Context())
	})
}

// AddLesson godoc
// @Summary      Place a lesson
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      models.AddLessonRequest  true  "Lesson"
// @Success      201   {object}  models.IDResponse
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /schedule [post]
func AddLesson(c *gin.Context) {
	var req models.AddLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := db.AddLesson(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.Mutation("insert")
	created(c, id, cache.KeySchedule)
}

// EditLesson godoc
// @Summary      Edit a lesson
// @Description  Replaces classroom, curriculum line and type. The lesson keeps its place.
// @Tags         schedule
// @Accept       json
// @Param        id    path  int                       true  "Lesson ID"
// @Param        body  body  models.EditLessonRequest  true  "New content"
// @Success      204
// @Failure      400   {object}  models.ErrorResponse
// @Failure      404   {object}  models.ErrorResponse
// @Router       /schedule/{id} [put]
func EditLesson(c *gin.Context) {
	id, ok := lessonID(c)
	if !ok {
		return
	}
	var req models.EditLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := db.EditLesson(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	metrics.Mutation("update")
	cache.Invalidate(c.Request.Context(), cache.KeySchedule)
	c.Status(http.StatusNoContent)
}

// RemoveLesson godoc
// @Summary      Delete a lesson
// @Tags         schedule
// @Param        id   path  int  true  "Lesson ID"
// @Success      204
// @Failure      404  {object}  models.ErrorResponse
// @Router       /schedule/{id} [delete]
func RemoveLesson(c *gin.Context) {
	id, ok := lessonID(c)
	if !ok {
		return
	}
	if err := db.RemoveLesson(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	metrics.Mutation("remove")
	cache.Invalidate(c.Request.Context(), cache.KeySchedule)
	c.Status(http.StatusNoContent)
}

// AutoSchedule godoc
// @Summary      Fill the timetable automatically
// @Description  Places the lessons every curriculum line still misses where no group, lecturer or classroom is busy
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  planner.Result
// @Failure      500  {object}  models.ErrorResponse
// @Router       /schedule/auto [post]
func AutoSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	lessons, lines, rooms, err := db.PlannerInput(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	res := planner.AutoSchedule(lessons, lines, rooms)
	if err := db.SaveLessons(ctx, res.Placed); err != nil {
		respondError(c, err)
		return
	}

	log.Printf("🗓️ Auto-scheduled %d lessons, %d unplaced, %d lines skipped\n", len(res.Placed), len(res.Unplaced), len(res.Skipped))
	metrics.Planned("placed", len(res.Placed))
	metrics.Planned("unplaced", len(res.Unplaced))
	cache.Invalidate(ctx, cache.KeySchedule)
	c.JSON(http.StatusOK, res)
}

// GetCollisions godoc
// @Summary      Check the timetable
// @Description  Lessons sharing a pair for one group, lecturer or classroom, and idle windows of groups and lecturers
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  planner.Report
// @Failure      500  {object}  models.ErrorResponse
// @Router       /schedule/collisions [get]
func GetCollisions(c *gin.Context) {
	lessons, lines, _, err := db.PlannerInput(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	report := planner.FindCollisions(lessons, lines)
	metrics.SetCollisions(len(report.Errors))
	c.JSON(http.StatusOK, report)
}

// ExportSchedule godoc
// @Summary      Download the timetable as xlsx
// @Description  Columns are the given groups, the groups of the selected department ("all" for the whole faculty), or every group
// @Tags         schedule
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        group       query  []string  false  "Group names"  collectionFormat(multi)
// @Param        university  query  string    false  "University name"
// @Param        faculty     query  string    false  "Faculty name"
// @Param        department  query  string    false  "Department short name or all"
// @Success      200
// @Failure      500  {object}  models.ErrorResponse
// @Router       /schedule/export [get]
func ExportSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	groups := c.QueryArray("group")
	if len(groups) == 0 {
		unis, err := db.GetUniversityData(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		if dep := c.Query("department"); dep != "" {
			groups = structure.GroupNames(structure.ResolveGroups(unis, structure.Selection{
				University: c.Query("university"),
				Faculty:    c.Query("faculty"),
				Department: dep,
			}))
		} else {
			groups = structure.GroupNames(structure.AllGroups(unis))
		}
	}

	store, err := db.GetSchedule(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := exportWorkbook(&buf, store, groups); err != nil {
		log.Println("❌ Failed to export Excel:", err)
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="timetable.xlsx"`)
	c.Data(http.StatusOK, xlsxType, buf.Bytes())
}

// ImportSchedule godoc
// @Summary      Upload an xlsx timetable
// @Description  Reads sheets laid out like the export and creates the lessons that are not there yet
// @Tags         schedule
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Timetable workbook"
// @Success      200   {object}  db.ImportResult
// @Failure      400   {object}  models.ErrorResponse
// @Failure      500   {object}  models.ErrorResponse
// @Router       /schedule/import [post]
func ImportSchedule(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, errors.Wrap(err, "file"))
		return
	}
	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	entries, err := excel.Parse(file)
	if err != nil {
		log.Println("❌ Failed to parse Excel:", err)
		badRequest(c, errors.Wrap(err, "parse workbook"))
		return
	}

	res, err := db.ImportLessons(c.Request.Context(), entries)
	if err != nil {
		respondError(c, err)
		return
	}
	metrics.Planned("imported", res.Created)
	cache.Invalidate(c.Request.Context(), cache.KeySchedule)
	c.JSON(http.StatusOK, res)
}
