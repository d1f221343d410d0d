// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package ratings

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// DefaultMinRatingsPerItem is the minimum number of observations an item
// needs to be kept in the table.
const DefaultMinRatingsPerItem = 10

// MaxRating is the upper bound of the rating scale.
const MaxRating = 5.0

// Observation is a single rating given by a user to an item.
type Observation struct {
	// UserID identifies the rater.
	UserID int `json:"user_id"`

	// Item is the item identifier (the movie title).
	Item string `json:"item"`

	// Rating is the rating value in [0, 5].
	Rating float64 `json:"rating"`
}

// Table is the dense user-by-item rating matrix.
// Rows are users in ascending ID order, columns are items in
// lexicographic order. Unrated cells hold 0.
//
// A Table is immutable after construction.
type Table struct {
	users     []int
	userIndex map[int]int
	items     []string
	itemIndex map[string]int
	observed  []int
	data      *mat.Dense
}

type cellKey struct {
	user int
	item string
}

type cellAcc struct {
	sum   float64
	count int
}

// NewTable pivots observations into a Table.
//
// Repeated observations for the same user and item are averaged. Items
// observed by fewer than minRatings distinct users are dropped. Users are
// kept even if all their items were dropped; their row is all zeros.
func NewTable(observations []Observation, minRatings int) (*Table, error) {
	if minRatings < 1 {
		minRatings = 1
	}

	cells := make(map[cellKey]*cellAcc, len(observations))
	userSet := make(map[int]struct{})

	for i, obs := range observations {
		if obs.Rating < 0 || obs.Rating > MaxRating {
			return nil, formatErr("observations",
				fmt.Errorf("observation %d: rating %v out of range [0, %v]", i, obs.Rating, MaxRating))
		}
		if obs.Item == "" {
			return nil, formatErr("observations", fmt.Errorf("observation %d: empty item", i))
		}

		userSet[obs.UserID] = struct{}{}

		key := cellKey{user: obs.UserID, item: obs.Item}
		acc, ok := cells[key]
		if !ok {
			acc = &cellAcc{}
			cells[key] = acc
		}
		acc.sum += obs.Rating
		acc.count++
	}

	// Observation counts are distinct users per item.
	counts := make(map[string]int)
	for key := range cells {
		counts[key.item]++
	}

	items := make([]string, 0, len(counts))
	for item, n := range counts {
		if n >= minRatings {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, formatErr("observations", ErrNoItems)
	}
	sort.Strings(items)

	users := make([]int, 0, len(userSet))
	for uid := range userSet {
		users = append(users, uid)
	}
	sort.Ints(users)

	t := &Table{
		users:     users,
		userIndex: make(map[int]int, len(users)),
		items:     items,
		itemIndex: make(map[string]int, len(items)),
		observed:  make([]int, len(items)),
		data:      mat.NewDense(len(users), len(items), nil),
	}
	for i, uid := range users {
		t.userIndex[uid] = i
	}
	for j, item := range items {
		t.itemIndex[item] = j
		t.observed[j] = counts[item]
	}

	for key, acc := range cells {
		j, ok := t.itemIndex[key.item]
		if !ok {
			continue
		}
		t.data.Set(t.userIndex[key.user], j, acc.sum/float64(acc.count))
	}

	return t, nil
}

// Users returns the user IDs in row order.
func (t *Table) Users() []int {
	out := make([]int, len(t.users))
	copy(out, t.users)
	return out
}

// Items returns the item identifiers in column order.
func (t *Table) Items() []string {
	out := make([]string, len(t.items))
	copy(out, t.items)
	return out
}

// Dims returns the number of users and items.
func (t *Table) Dims() (users, items int) {
	return len(t.users), len(t.items)
}

// Rating returns the rating a user gave an item, or 0 if the user did not
// rate it or either identifier is unknown.
func (t *Table) Rating(userID int, item string) float64 {
	i, ok := t.userIndex[userID]
	if !ok {
		return 0
	}
	j, ok := t.itemIndex[item]
	if !ok {
		return 0
	}
	return t.data.At(i, j)
}

// Observed returns how many users actually rated item.
// It returns 0 for items not in the table.
func (t *Table) Observed(item string) int {
	j, ok := t.itemIndex[item]
	if !ok {
		return 0
	}
	return t.observed[j]
}

// Matrix returns the zero-filled users-by-items matrix.
// Callers must not modify it.
func (t *Table) Matrix() mat.Matrix {
	return t.data
}
