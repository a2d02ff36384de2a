package excel

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MaksLuk/Diploma/internal/schedule"
)

const sheetPrefix = "Неделя"

// -------------------- SOURCE --------------------

// Open returns the workbook at src, downloading it first when src is an
// http(s) URL.
func Open(ctx context.Context, src string) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		log.Println("📖 Opening Excel file:", src)
		return os.Open(src)
	}

	log.Println("📥 Downloading Excel from:", src)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch excel: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}
	return resp.Body, nil
}

// -------------------- PARSING --------------------

// Parse reads every "Неделя N" sheet of the workbook into timetable entries.
// A cell spanning several group columns yields one entry per group.
func Parse(r io.Reader) ([]schedule.Entry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []schedule.Entry
	for _, sheetName := range f.GetSheetList() {
		week, ok := sheetWeek(sheetName)
		if !ok {
			continue
		}
		log.Println("➡️ Parsing sheet:", sheetName)

		sheetEntries, err := parseSheet(f, sheetName, week)
		if err != nil {
			return nil, fmt.Errorf("error parsing sheet %s: %w", sheetName, err)
		}
		log.Printf("✅ Parsed %d cells from sheet %s\n", len(sheetEntries), sheetName)
		entries = append(entries, sheetEntries...)
	}

	log.Printf("🎉 Finished parsing. Total cells: %d\n", len(entries))
	return entries, nil
}

func ParseFile(path string) ([]schedule.Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

func sheetWeek(name string) (schedule.Week, bool) {
	if !strings.HasPrefix(name, sheetPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(name, sheetPrefix)))
	if err != nil || !schedule.Week(n).Valid() {
		log.Printf("⚠️ Skipped sheet %q: no week number\n", name)
		return 0, false
	}
	return schedule.Week(n), true
}

type coord struct{ col, row int }

func parseSheet(f *excelize.File, sheetName string, week schedule.Week) ([]schedule.Entry, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(map[coord]string)
	for r, row := range rows {
		for c, v := range row {
			grid[coord{c + 1, r + 1}] = v
		}
	}
	if err := spreadMerged(f, sheetName, grid); err != nil {
		return nil, err
	}

	// First row → header
	colToGroup := make(map[int]string)
	if len(rows) > 0 {
		for c := 3; c <= len(rows[0]); c++ {
			name := strings.TrimSpace(grid[coord{c, 1}])
			if name == "" {
				continue
			}
			colToGroup[c] = name
			log.Printf("📌 Found group header: %s at col %d\n", name, c)
		}
	}
	cols := make([]int, 0, len(colToGroup))
	for c := range colToGroup {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	var entries []schedule.Entry
	var day schedule.Day
	for r := 2; r <= len(rows); r++ {
		// the day column is usually merged over the day's pairs
		if d := grid[coord{1, r}]; strings.TrimSpace(d) != "" {
			day = schedule.ParseDay(d)
		}
		pair := schedule.ParsePair(grid[coord{2, r}])

		for _, c := range cols {
			value := grid[coord{c, r}]
			if strings.TrimSpace(value) == "" {
				continue
			}
			if !day.Valid() || !pair.Valid() {
				log.Printf("⏭️ Skipping row %d col %d: no day or pair (%q)\n", r, c, value)
				continue
			}
			cell, ok := parseCell(value)
			if !ok {
				log.Printf("⚠️ Skipped cell at row %d col %d (value: %q)\n", r, c, value)
				continue
			}
			entries = append(entries, schedule.Entry{
				Address: schedule.Address{Week: week, Day: day, Pair: pair, Group: colToGroup[c]},
				Cell:    cell,
			})
		}
	}
	return entries, nil
}

// spreadMerged copies the value of every merged range into each cell it
// covers.
func spreadMerged(f *excelize.File, sheetName string, grid map[coord]string) error {
	mergedCells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return err
	}
	for _, mc := range mergedCells {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return err
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return err
		}
		val := mc.GetCellValue()
		for r := r1; r <= r2; r++ {
			for c := c1; c <= c2; c++ {
				grid[coord{c, r}] = val
			}
		}
	}
	return nil
}

// parseCell splits "subject\nteachers\nclassroom[\nlesson type]".
func parseCell(value string) (schedule.Cell, bool) {
	lines := strings.Split(value, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	if lines[0] == "" {
		return schedule.Cell{}, false
	}

	cell := schedule.Cell{Subject: lines[0]}
	if len(lines) >= 2 {
		cell.Teachers = lines[1]
	}
	if len(lines) >= 3 {
		cell.Classroom = lines[2]
	}
	if len(lines) >= 4 {
		if t := schedule.LessonType(lines[3]); t.Valid() {
			cell.LessonType = t
		}
	}
	return cell, true
}
