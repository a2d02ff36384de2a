package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MaksLuk/Diploma/internal/client"
	"github.com/MaksLuk/Diploma/internal/schedule"
	"github.com/MaksLuk/Diploma/internal/structure"
	"github.com/MaksLuk/Diploma/internal/timetable"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	apiURL string
	out    io.Writer
	editor *timetable.Editor
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage: timetable [-api URL] COMMAND")
	fmt.Fprintln(cli.out, "  groups -university U -faculty F -department D|all              - list the group columns")
	fmt.Fprintln(cli.out, "  show   -week N -university U -faculty F -department D|all      - print a week of the timetable")
	fmt.Fprintln(cli.out, "  add    -week -day -pair -group -classroom NUMBER -curriculum ID -type T - place a lesson")
	fmt.Fprintln(cli.out, "  edit   -week -day -pair -group [-classroom] [-curriculum] [-type]      - change a lesson")
	fmt.Fprintln(cli.out, "  delete -week -day -pair -group                                 - remove a lesson")
}

// cell flags address one grid cell.
type cellFlags struct {
	week, day, pair *int
	group           *string
}

func addCellFlags(fs *flag.FlagSet) cellFlags {
	return cellFlags{
		week:  fs.Int("week", 1, "Week of the cycle, 1 or 2."),
		day:   fs.Int("day", 0, "Day, 1 (Monday) to 6 (Saturday)."),
		pair:  fs.Int("pair", 0, "Pair, 1 to 8."),
		group: fs.String("group", "", "Group name."),
	}
}

func (f cellFlags) address() schedule.Address {
	return schedule.Address{
		Week:  schedule.Week(*f.week),
		Day:   schedule.Day(*f.day),
		Pair:  schedule.Pair(*f.pair),
		Group: *f.group,
	}
}

func addSelectionFlags(fs *flag.FlagSet) func() structure.Selection {
	university := fs.String("university", "", "University name.")
	faculty := fs.String("faculty", "", "Faculty name.")
	department := fs.String("department", structure.AllDepartments, "Department short name, or all.")
	return func() structure.Selection {
		return structure.Selection{University: *university, Faculty: *faculty, Department: *department}
	}
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	global := flag.NewFlagSet("timetable", flag.ContinueOnError)
	global.SetOutput(cli.out)
	apiURL := global.String("api", cli.apiURL, "Base URL of the timetable API.")
	if err := global.Parse(args[1:]); err != nil {
		return err
	}
	rest := global.Args()
	if len(rest) < 1 {
		cli.printUsage()
		return errHelp
	}

	groupsCmd := flag.NewFlagSet("groups", flag.ContinueOnError)
	groupsSel := addSelectionFlags(groupsCmd)

	showCmd := flag.NewFlagSet("show", flag.ContinueOnError)
	showWeek := showCmd.Int("week", 1, "Week of the cycle, 1 or 2.")
	showSel := addSelectionFlags(showCmd)

	addCmd := flag.NewFlagSet("add", flag.ContinueOnError)
	addCell := addCellFlags(addCmd)
	addRoom := addCmd.String("classroom", "", "Classroom number.")
	addLine := addCmd.Uint("curriculum", 0, "Curriculum line id.")
	addType := addCmd.String("type", string(schedule.Lecture), "Lesson type: лекционное or лабораторное.")

	editCmd := flag.NewFlagSet("edit", flag.ContinueOnError)
	editCell := addCellFlags(editCmd)
	editRoom := editCmd.String("classroom", "", "New classroom number.")
	editLine := editCmd.Uint("curriculum", 0, "New curriculum line id.")
	editType := editCmd.String("type", "", "New lesson type.")

	deleteCmd := flag.NewFlagSet("delete", flag.ContinueOnError)
	deleteCell := addCellFlags(deleteCmd)

	for _, fs := range []*flag.FlagSet{groupsCmd, showCmd, addCmd, editCmd, deleteCmd} {
		fs.SetOutput(cli.out)
	}

	parse := func(fs *flag.FlagSet) error {
		if err := fs.Parse(rest[1:]); err != nil {
			return err
		}
		cli.editor = timetable.New(client.New(*apiURL))
		return cli.editor.Load(ctx)
	}

	switch rest[0] {
	case "groups":
		if err := parse(groupsCmd); err != nil {
			return err
		}
		return cli.groups(groupsSel())
	case "show":
		if err := parse(showCmd); err != nil {
			return err
		}
		return cli.show(schedule.Week(*showWeek), showSel())
	case "add":
		if err := parse(addCmd); err != nil {
			return err
		}
		return cli.add(ctx, addCell.address(), *addRoom, *addLine, schedule.LessonType(*addType))
	case "edit":
		if err := parse(editCmd); err != nil {
			return err
		}
		return cli.edit(ctx, editCell.address(), *editRoom, *editLine, schedule.LessonType(*editType))
	case "delete":
		if err := parse(deleteCmd); err != nil {
			return err
		}
		return cli.delete(ctx, deleteCell.address())
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) groups(sel structure.Selection) error {
	groups := cli.editor.Select(sel)
	if len(groups) == 0 {
		return fmt.Errorf("no groups for %s / %s / %s", sel.University, sel.Faculty, sel.Department)
	}
	for _, g := range groups {
		fmt.Fprintln(cli.out, g)
	}
	return nil
}

func (cli *commandLine) show(week schedule.Week, sel structure.Selection) error {
	if err := cli.editor.SetWeek(week); err != nil {
		return err
	}
	groups := cli.editor.Select(sel)
	if len(groups) == 0 {
		return fmt.Errorf("no groups for %s / %s / %s", sel.University, sel.Faculty, sel.Department)
	}

	tw := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Неделя %d\t\t%s\n", week, strings.Join(groups, "\t"))
	for day := schedule.Day(1); day <= schedule.Days; day++ {
		for pair := schedule.Pair(1); pair <= schedule.Pairs; pair++ {
			row := make([]string, len(groups))
			empty := true
			for i, g := range groups {
				if c, ok := cli.editor.Read(schedule.Address{Week: week, Day: day, Pair: pair, Group: g}); ok {
					row[i] = fmt.Sprintf("%s, %s [%d]", c.Subject, c.Classroom, c.ID)
					empty = false
				} else {
					row[i] = "-"
				}
			}
			if empty {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", day, pair, strings.Join(row, "\t"))
		}
	}
	return tw.Flush()
}

func (cli *commandLine) classroomID(number string) (uint, error) {
	room, err := structure.ClassroomByNumber(cli.editor.Classrooms(), number)
	if err != nil {
		return 0, err
	}
	return room.ID, nil
}

func (cli *commandLine) add(ctx context.Context, at schedule.Address, room string, line uint, t schedule.LessonType) error {
	roomID, err := cli.classroomID(room)
	if err != nil {
		return err
	}
	cell, err := cli.editor.AddLesson(ctx, at, timetable.Content{ClassroomID: roomID, CurriculumID: line, LessonType: t})
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "✅ Added lesson %d: %s, %s\n", cell.ID, cell.Subject, cell.Classroom)
	return nil
}

func (cli *commandLine) edit(ctx context.Context, at schedule.Address, room string, line uint, t schedule.LessonType) error {
	draft, err := cli.editor.BeginEdit(at)
	if err != nil {
		return err
	}
	if room != "" {
		if draft.ClassroomID, err = cli.classroomID(room); err != nil {
			return err
		}
	}
	if line != 0 {
		draft.CurriculumID = line
	}
	if t != "" {
		draft.LessonType = t
	}
	if err := cli.editor.SubmitEdit(ctx, draft); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "✅ Updated lesson %d\n", draft.ID)
	return nil
}

func (cli *commandLine) delete(ctx context.Context, at schedule.Address) error {
	cell, ok := cli.editor.Read(at)
	if err := cli.editor.Delete(ctx, at); err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(cli.out, "✅ Deleted lesson %d\n", cell.ID)
	}
	return nil
}
