package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func physics() Cell {
	return Cell{ID: 42, LessonType: Lab, Subject: "Физика", Teachers: "Иванова Т.П.", Classroom: "7-205"}
}

func TestStore_Scenarios(t *testing.T) {
	var empty Store

	// A
	a := empty.Insert(1, 2, 3, "ПИ-101", physics())
	got, ok := a.Read(1, 2, 3, "ПИ-101")
	require.True(t, ok)
	assert.Equal(t, physics(), got)
	_, ok = a.Read(1, 2, 3, "ПИ-102")
	assert.False(t, ok)

	// B
	b := a.UpdateByID(42, Patch{Classroom: "7-206"})
	got, ok = b.Read(1, 2, 3, "ПИ-101")
	require.True(t, ok)
	want := physics()
	want.Classroom = "7-206"
	assert.Equal(t, want, got)

	// C
	c := b.RemoveByID(42)
	_, ok = c.Read(1, 2, 3, "ПИ-101")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())

	// inputs are untouched
	assert.Equal(t, 0, empty.Len())
	got, _ = a.Read(1, 2, 3, "ПИ-101")
	assert.Equal(t, "7-205", got.Classroom)
	assert.Equal(t, 1, b.Len())
}

func TestStore_RemoveKeepsNeighbour(t *testing.T) {
	other := Cell{ID: 43, LessonType: Lecture, Subject: "Математика", Teachers: "Петров А.А.", Classroom: "7-101"}
	s := Store{}.
		Insert(1, 2, 3, "ПИ-101", physics()).
		Insert(1, 2, 4, "ПИ-102", other)

	out := s.RemoveByID(42)

	got, ok := out.Read(1, 2, 4, "ПИ-102")
	require.True(t, ok)
	assert.Equal(t, other, got)
	assert.Equal(t, 1, out.Len())
}

func TestStore_MissIsNoop(t *testing.T) {
	s := Store{}.
		Insert(1, 2, 3, "ПИ-101", physics()).
		Insert(2, 6, 8, "ПИ-102", Cell{ID: 7, LessonType: Lecture, Subject: "История"})

	updated := s.UpdateByID(999, Patch{Classroom: "1-100", LessonType: Lecture})
	assert.True(t, Equal(s, updated))
	assert.Equal(t, s, updated)

	removed := s.RemoveByID(999)
	assert.True(t, Equal(s, removed))
	assert.Equal(t, 2, removed.Len())
}

func TestStore_InsertIsolation(t *testing.T) {
	s := Store{}.
		Insert(1, 1, 1, "A", Cell{ID: 1}).
		Insert(1, 1, 2, "A", Cell{ID: 2}).
		Insert(2, 3, 1, "B", Cell{ID: 3})
	before := s.Entries()

	out := s.Insert(1, 1, 1, "B", Cell{ID: 4})

	for _, e := range before {
		got, ok := out.Read(e.Week, e.Day, e.Pair, e.Group)
		require.True(t, ok, e.Address.String())
		assert.Equal(t, e.Cell, got)
	}
	got, ok := out.Read(1, 1, 1, "B")
	require.True(t, ok)
	assert.Equal(t, uint(4), got.ID)
	assert.Equal(t, len(before)+1, out.Len())

	_, ok = s.Read(1, 1, 1, "B")
	assert.False(t, ok, "receiver must not change")
}

func TestStore_InsertOverwrites(t *testing.T) {
	s := Store{}.Insert(1, 1, 1, "A", Cell{ID: 1, Subject: "old"})
	s = s.Insert(1, 1, 1, "A", Cell{ID: 2, Subject: "new"})

	got, _ := s.Read(1, 1, 1, "A")
	assert.Equal(t, uint(2), got.ID)
	assert.Equal(t, 1, s.Len())
}

func TestStore_UniqueIDs(t *testing.T) {
	var s Store
	id := uint(0)
	for w := Week(1); w <= Weeks; w++ {
		for d := Day(1); d <= Days; d++ {
			for p := Pair(1); p <= Pairs; p += 3 {
				for _, g := range []string{"A", "B"} {
					id++
					s = s.Insert(w, d, p, g, Cell{ID: id})
				}
			}
		}
	}

	seen := make(map[uint]bool)
	for _, e := range s.Entries() {
		assert.False(t, seen[e.Cell.ID], "duplicate id %d", e.Cell.ID)
		seen[e.Cell.ID] = true
	}
	assert.Equal(t, int(id), len(seen))
}

func TestStore_UpdateIsolation(t *testing.T) {
	s := Store{}.
		Insert(1, 1, 1, "A", Cell{ID: 1, Subject: "Физика", LessonType: Lab, Teachers: "X", Classroom: "1"}).
		Insert(1, 1, 1, "B", Cell{ID: 2, Subject: "Химия", LessonType: Lab, Teachers: "Y", Classroom: "2"}).
		Insert(2, 5, 7, "A", Cell{ID: 3, Subject: "Право", LessonType: Lecture, Teachers: "Z", Classroom: "3"})
	before := s.Entries()

	out := s.UpdateByID(2, Patch{LessonType: Lecture, Subject: "Биология", Classroom: "9", ClassroomID: 9, CurriculumID: 5})

	for _, e := range before {
		got, ok := out.Read(e.Week, e.Day, e.Pair, e.Group)
		require.True(t, ok)
		if e.Cell.ID != 2 {
			assert.Equal(t, e.Cell, got)
			continue
		}
		assert.Equal(t, Cell{ID: 2, Subject: "Биология", LessonType: Lecture, Teachers: "Y", Classroom: "9", ClassroomID: 9, CurriculumID: 5}, got)
	}
	assert.Equal(t, s.Len(), out.Len())
}

func TestStore_FoldSharesUntouchedLevels(t *testing.T) {
	s := Store{}.
		Insert(1, 1, 1, "A", Cell{ID: 1}).
		Insert(1, 1, 2, "A", Cell{ID: 2}).
		Insert(1, 3, 1, "A", Cell{ID: 3}).
		Insert(2, 1, 1, "A", Cell{ID: 4})

	out := s.RemoveByID(1)

	// Maps are compared by identity through a write that is visible in both.
	out.Data[2][1][1]["probe"] = Cell{ID: 99}
	_, shared := s.Read(2, 1, 1, "probe")
	assert.True(t, shared, "untouched week must be shared")

	out.Data[1][3][1]["probe"] = Cell{ID: 98}
	_, shared = s.Read(1, 3, 1, "probe")
	assert.True(t, shared, "untouched day must be shared")

	out.Data[1][1][2]["probe"] = Cell{ID: 97}
	_, shared = s.Read(1, 1, 2, "probe")
	assert.True(t, shared, "untouched pair must be shared")

	_, ok := s.Read(1, 1, 1, "A")
	assert.True(t, ok, "rebuilt slot must be a copy")
}

func TestStore_RemoveLeavesEmptySlot(t *testing.T) {
	s := Store{}.Insert(1, 1, 1, "A", Cell{ID: 1})
	out := s.RemoveByID(1)

	groups, ok := out.Data[1][1][1]
	assert.True(t, ok)
	assert.Empty(t, groups)
	assert.True(t, Equal(out, Store{}))
}

func TestStore_FanOutIDIsFoldedEverywhere(t *testing.T) {
	lecture := Cell{ID: 5, LessonType: Lecture, Subject: "Философия", Classroom: "1-1"}
	s := Store{}.
		Insert(1, 1, 1, "A", lecture).
		Insert(1, 1, 1, "B", lecture)

	s = s.UpdateByID(5, Patch{Classroom: "2-2"})
	for _, g := range []string{"A", "B"} {
		got, _ := s.Read(1, 1, 1, g)
		assert.Equal(t, "2-2", got.Classroom)
	}
	assert.Len(t, s.Find(5), 2)
	assert.Equal(t, 0, s.RemoveByID(5).Len())
}

func TestStore_ReadDoesNotMutate(t *testing.T) {
	s := Store{}.Insert(1, 2, 3, "ПИ-101", physics())
	snapshot, err := s.Clone()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, ok := s.Read(1, 2, 3, "ПИ-101")
		assert.True(t, ok)
		assert.Equal(t, physics(), got)
		_, ok = s.Read(2, 6, 8, "nope")
		assert.False(t, ok)
	}
	assert.Equal(t, snapshot, s)
	assert.Len(t, s.Data, 1)
}

func TestStore_Clone(t *testing.T) {
	s := Store{}.Insert(1, 2, 3, "ПИ-101", physics())
	c, err := s.Clone()
	require.NoError(t, err)

	c.Data[1][2][3]["ПИ-101"] = Cell{ID: 1}
	got, _ := s.Read(1, 2, 3, "ПИ-101")
	assert.Equal(t, physics(), got)
}

func TestStore_DecodeSnapshot(t *testing.T) {
	body := `{"data": {
		"1": {"2": {"3": {"ПИ-101": {"id": 42, "lesson_type": "лабораторное", "subject": "Физика",
			"teachers": "Иванова Т.П.", "classroom": "7-205", "classroom_id": 3, "curriculum_id": 8}},
			"4": {}}},
		"2": {}
	}}`

	var s Store
	require.NoError(t, json.Unmarshal([]byte(body), &s))

	got, ok := s.Read(1, 2, 3, "ПИ-101")
	require.True(t, ok)
	assert.Equal(t, Cell{ID: 42, LessonType: Lab, Subject: "Физика", Teachers: "Иванова Т.П.", Classroom: "7-205", ClassroomID: 3, CurriculumID: 8}, got)
	assert.Equal(t, 1, s.Len())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "3 пара [11:40 - 13:15]", Pair(3).String())
	assert.Equal(t, Pair(3), ParsePair(Pair(3).String()))
	assert.Equal(t, Pair(0), ParsePair("пара"))
	assert.Equal(t, "Среда", Day(3).String())
	assert.Equal(t, Day(3), ParseDay("среда"))
	assert.Equal(t, Day(6), ParseDay("Saturday"))
	assert.Equal(t, Day(0), ParseDay("воскресенье"))
	assert.False(t, Week(3).Valid())
	assert.True(t, Lab.Valid())
	assert.False(t, LessonType("семинар").Valid())
}
