package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MaksLuk/Diploma/internal/cache"
	"github.com/MaksLuk/Diploma/internal/config"
	"github.com/MaksLuk/Diploma/internal/db"
	"github.com/MaksLuk/Diploma/internal/excel"
	"github.com/MaksLuk/Diploma/internal/metrics"
	"github.com/MaksLuk/Diploma/internal/planner"
)

const jobTimeout = 10 * time.Minute

// StartJobs schedules the spreadsheet import (when IMPORT_PATH is set) and
// the collision scan. The caller stops the returned cron on shutdown.
func StartJobs(cfg *config.Config) (*cron.Cron, error) {
	c := cron.New()

	if cfg.ImportPath != "" {
		if _, err := c.AddFunc(cfg.ImportSchedule, func() { ImportJob(cfg.ImportPath) }); err != nil {
			return nil, err
		}
		log.Printf("⏰ Excel import of %s scheduled %s\n", cfg.ImportPath, cfg.ImportSchedule)
	}

	if _, err := c.AddFunc(cfg.CollisionsSchedule, func() { CollisionsJob() }); err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}

func ImportJob(src string) {
	log.Println("Running Excel import job...")
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	rc, err := excel.Open(ctx, src)
	if err != nil {
		log.Println("❌ Failed to open Excel:", err)
		return
	}
	defer rc.Close()

	entries, err := excel.Parse(rc)
	if err != nil {
		log.Println("❌ Failed to parse Excel:", err)
		return
	}

	res, err := db.ImportLessons(ctx, entries)
	if err != nil {
		log.Println("❌ Failed to save lessons:", err)
		return
	}
	metrics.Planned("imported", res.Created)
	cache.Invalidate(ctx, cache.KeySchedule)

	log.Printf("✅ Saved %d lessons\n", res.Created)
}

// CollisionsJob logs the overlaps in the current timetable.
func CollisionsJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	lessons, lines, _, err := db.PlannerInput(ctx)
	if err != nil {
		log.Println("❌ Failed to load timetable:", err)
		return
	}
	report := planner.FindCollisions(lessons, lines)
	metrics.SetCollisions(len(report.Errors))

	if len(report.Errors) == 0 {
		log.Println("✅ No collisions in the timetable")
		return
	}
	for _, e := range report.Errors {
		log.Printf("⚠️ %s %d busy twice: week %d, day %d, pair %d (lessons %d and %d)\n",
			e.Type, e.ID, e.Week, e.Day, e.Pair, e.LessonIDs[0], e.LessonIDs[1])
	}
}
