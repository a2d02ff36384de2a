package schedule

import (
	"sort"

	"github.com/tiendc/go-deepcopy"
)

type (
	GroupCells map[string]Cell
	PairCells  map[Pair]GroupCells
	DayCells   map[Day]PairCells
	WeekCells  map[Week]DayCells
)

// Store is the sparse week → day → pair → group mapping of lesson cells.
//
// A Store value is never modified after construction: Insert, UpdateByID and
// RemoveByID return a new Store that shares every untouched level with the
// receiver. Callers must not write into the maps they get from Data.
type Store struct {
	Data WeekCells `json:"data"`
}

// Entry is a cell together with its coordinate.
type Entry struct {
	Address
	Cell Cell
}

// Read returns the cell stored at exactly that coordinate.
func (s Store) Read(week Week, day Day, pair Pair, group string) (Cell, bool) {
	c, ok := s.Data[week][day][pair][group]
	return c, ok
}

// Insert writes cell at the coordinate, creating missing levels and
// overwriting whatever was there.
func (s Store) Insert(week Week, day Day, pair Pair, group string, cell Cell) Store {
	days := cloneLevel(s.Data[week])
	pairs := cloneLevel(days[day])
	groups := cloneLevel(pairs[pair])

	groups[group] = cell
	pairs[pair] = groups
	days[day] = pairs

	weeks := cloneLevel(s.Data)
	weeks[week] = days
	return Store{Data: weeks}
}

// UpdateByID replaces the content fields of the cell with the given id.
// The id and coordinate stay as they are. A miss returns the receiver.
func (s Store) UpdateByID(id uint, p Patch) Store {
	return s.fold(id, func(c Cell) (Cell, bool) { return p.apply(c), true })
}

// RemoveByID drops the cell with the given id. The slot it lived in is left
// as an empty mapping. A miss returns the receiver.
func (s Store) RemoveByID(id uint) Store {
	return s.fold(id, func(c Cell) (Cell, bool) { return c, false })
}

// fold rebuilds only the slots that hold id. fn returns the replacement cell
// and whether to keep it. Every other level is carried over as is.
func (s Store) fold(id uint, fn func(Cell) (Cell, bool)) Store {
	var weeks WeekCells
	for w, days := range s.Data {
		var newDays DayCells
		for d, pairs := range days {
			var newPairs PairCells
			for p, groups := range pairs {
				newGroups, hit := foldGroups(groups, id, fn)
				if !hit {
					continue
				}
				if newPairs == nil {
					newPairs = cloneLevel(pairs)
				}
				newPairs[p] = newGroups
			}
			if newPairs == nil {
				continue
			}
			if newDays == nil {
				newDays = cloneLevel(days)
			}
			newDays[d] = newPairs
		}
		if newDays == nil {
			continue
		}
		if weeks == nil {
			weeks = cloneLevel(s.Data)
		}
		weeks[w] = newDays
	}
	if weeks == nil {
		return s
	}
	return Store{Data: weeks}
}

func foldGroups(groups GroupCells, id uint, fn func(Cell) (Cell, bool)) (GroupCells, bool) {
	var out GroupCells
	for name, c := range groups {
		if c.ID != id {
			continue
		}
		if out == nil {
			out = cloneLevel(groups)
		}
		if next, keep := fn(c); keep {
			out[name] = next
		} else {
			delete(out, name)
		}
	}
	return out, out != nil
}

// Len counts the cells in the store.
func (s Store) Len() int {
	n := 0
	for _, days := range s.Data {
		for _, pairs := range days {
			for _, groups := range pairs {
				n += len(groups)
			}
		}
	}
	return n
}

// Entries lists every cell ordered by week, day, pair and group name.
func (s Store) Entries() []Entry {
	out := make([]Entry, 0, s.Len())
	for w, days := range s.Data {
		for d, pairs := range days {
			for p, groups := range pairs {
				for g, c := range groups {
					out = append(out, Entry{Address: Address{Week: w, Day: d, Pair: p, Group: g}, Cell: c})
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address.less(out[j].Address) })
	return out
}

// Find returns every coordinate holding the cell with the given id.
func (s Store) Find(id uint) []Entry {
	var out []Entry
	for _, e := range s.Entries() {
		if e.Cell.ID == id {
			out = append(out, e)
		}
	}
	return out
}

// Equal reports whether both stores hold the same cells at the same
// coordinates. Empty intermediate levels are ignored.
func Equal(a, b Store) bool {
	ea, eb := a.Entries(), b.Entries()
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if ea[i] != eb[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy that the caller is free to modify.
func (s Store) Clone() (Store, error) {
	var out Store
	if s.Data == nil {
		return out, nil
	}
	if err := deepcopy.Copy(&out.Data, s.Data); err != nil {
		return Store{}, err
	}
	return out, nil
}

func (a Address) less(b Address) bool {
	if a.Week != b.Week {
		return a.Week < b.Week
	}
	if a.Day != b.Day {
		return a.Day < b.Day
	}
	if a.Pair != b.Pair {
		return a.Pair < b.Pair
	}
	return a.Group < b.Group
}

// cloneLevel copies one level of the mapping. The copy is never nil.
func cloneLevel[M ~map[K]V, K comparable, V any](m M) M {
	out := make(M, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
