package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MaksLuk/Diploma/docs"
	"github.com/MaksLuk/Diploma/internal/config"
	"github.com/MaksLuk/Diploma/internal/db"
	"github.com/MaksLuk/Diploma/internal/metrics"
)

// @title           Timetable API
// @version         1.0
// @description     University structure, curriculum and two-week class timetable.
// @host            localhost:8000
// @BasePath        /
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(requestID())
	r.Use(metrics.Middleware())
	corsCfg := cors.Config{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		if err := db.PingDB(); err != nil {
			c.JSON(500, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Structure
	r.GET("/university_data", GetUniversityData)
	r.POST("/structural_divizion", AddDivision)
	r.POST("/speciality", AddSpeciality)
	r.POST("/group", AddGroup)
	r.POST("/teacher", AddTeacher)
	r.POST("/classroom", AddClassroom)

	// Curriculum
	r.GET("/subject", GetSubjects)
	r.POST("/subject", AddSubject)
	r.GET("/flow", GetFlows)
	r.POST("/flow", AddFlow)
	r.GET("/curriculum", GetCurriculum)
	r.POST("/curriculum", AddCurriculum)

	// Timetable
	sched := r.Group("/schedule")
	{
		sched.GET("", GetSchedule)
		sched.POST("", AddLesson)
		sched.PUT("/:id", EditLesson)
		sched.DELETE("/:id", RemoveLesson)
		sched.POST("/auto", AutoSchedule)
		sched.GET("/collisions", GetCollisions)
		sched.GET("/export", ExportSchedule)
		sched.POST("/import", ImportSchedule)
	}

	return r
}

// requestID tags every request and its response with an X-Request-ID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
