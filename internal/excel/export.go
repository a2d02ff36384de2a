package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/MaksLuk/Diploma/internal/schedule"
)

// Export writes the timetable of the given groups as one sheet per week:
// days and pairs down, groups across. A lesson shared by neighbouring group
// columns, as flow lessons are, is written as one merged cell.
func Export(w io.Writer, store schedule.Store, groups []string) error {
	f := excelize.NewFile()
	defer f.Close()

	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center", Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	for week := schedule.Week(1); week <= schedule.Weeks; week++ {
		sheetName := fmt.Sprintf("%s %d", sheetPrefix, week)
		if week == 1 {
			if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
		if err := writeWeek(f, sheetName, store, week, groups, wrap); err != nil {
			return fmt.Errorf("error writing sheet %s: %w", sheetName, err)
		}
	}

	return f.Write(w)
}

func writeWeek(f *excelize.File, sheetName string, store schedule.Store, week schedule.Week, groups []string, style int) error {
	header := []any{"День", "Пара"}
	for _, g := range groups {
		header = append(header, g)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetName, "A", "B", 22); err != nil {
		return err
	}
	if len(groups) > 0 {
		last, _ := excelize.ColumnNumberToName(len(groups) + 2)
		if err := f.SetColWidth(sheetName, "C", last, 28); err != nil {
			return err
		}
	}

	for day := schedule.Day(1); day <= schedule.Days; day++ {
		first := rowOf(day, 1)
		for pair := schedule.Pair(1); pair <= schedule.Pairs; pair++ {
			row := rowOf(day, pair)
			if err := f.SetCellValue(sheetName, cellName(2, row), pair.String()); err != nil {
				return err
			}
			if err := writePair(f, sheetName, store, schedule.Address{Week: week, Day: day, Pair: pair}, groups, row); err != nil {
				return err
			}
		}

		last := rowOf(day, schedule.Pairs)
		if err := f.SetCellValue(sheetName, cellName(1, first), day.String()); err != nil {
			return err
		}
		if err := f.MergeCell(sheetName, cellName(1, first), cellName(1, last)); err != nil {
			return err
		}
	}

	lastCol := len(groups) + 2
	return f.SetCellStyle(sheetName, "A1", cellName(lastCol, rowOf(schedule.Days, schedule.Pairs)), style)
}

// writePair fills one grid row, merging runs of neighbouring columns that
// hold the same lesson.
func writePair(f *excelize.File, sheetName string, store schedule.Store, at schedule.Address, groups []string, row int) error {
	for i := 0; i < len(groups); {
		cell, ok := store.Read(at.Week, at.Day, at.Pair, groups[i])
		if !ok {
			i++
			continue
		}
		j := i + 1
		for j < len(groups) {
			next, ok := store.Read(at.Week, at.Day, at.Pair, groups[j])
			if !ok || next.ID == 0 || next != cell {
				break
			}
			j++
		}

		start := cellName(i+3, row)
		if err := f.SetCellValue(sheetName, start, FormatCell(cell)); err != nil {
			return err
		}
		if j-i > 1 {
			if err := f.MergeCell(sheetName, start, cellName(j+2, row)); err != nil {
				return err
			}
		}
		i = j
	}
	return nil
}

// FormatCell renders a lesson the way grid cells show it.
func FormatCell(c schedule.Cell) string {
	lines := []string{c.Subject, c.Teachers, c.Classroom}
	if c.LessonType != "" {
		lines = append(lines, string(c.LessonType))
	}
	return strings.Join(lines, "\n")
}

func rowOf(day schedule.Day, pair schedule.Pair) int {
	return 2 + int(day-1)*schedule.Pairs + int(pair-1)
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
