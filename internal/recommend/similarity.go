// Cinematch - Item-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/ratings"
)

// SimilarityModel holds the item-item Pearson correlation matrix.
//
// The matrix is stored as a single triangle, so Similarity(a, b) and
// Similarity(b, a) are always identical. The diagonal is exactly 1 and
// undefined correlations (a column with zero variance) are 0.
//
// A SimilarityModel is immutable and safe to share.
type SimilarityModel struct {
	items []string
	index map[string]int
	corr  *mat.SymDense

	undefinedPairs int
}

// BuildSimilarity computes the Pearson correlation of every pair of item
// columns of table across all users, zero-filled cells included.
func BuildSimilarity(table *ratings.Table) *SimilarityModel {
	start := time.Now()

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, table.Matrix(), nil)

	undefined := 0
	n := corr.SymmetricDim()
	for i := 0; i < n; i++ {
		corr.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			v := corr.At(i, j)
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				corr.SetSym(i, j, 0)
				undefined++
			case v > 1:
				corr.SetSym(i, j, 1)
			case v < -1:
				corr.SetSym(i, j, -1)
			}
		}
	}

	items := table.Items()
	index := make(map[string]int, len(items))
	for i, item := range items {
		index[item] = i
	}

	metrics.RecordSimilarityBuild(time.Since(start), undefined)

	return &SimilarityModel{
		items:          items,
		index:          index,
		corr:           &corr,
		undefinedPairs: undefined,
	}
}

// Len returns the number of items in the model.
func (m *SimilarityModel) Len() int {
	return len(m.items)
}

// Items returns the item identifiers in column order.
func (m *SimilarityModel) Items() []string {
	out := make([]string, len(m.items))
	copy(out, m.items)
	return out
}

// Index returns the column index of item.
func (m *SimilarityModel) Index(item string) (int, bool) {
	i, ok := m.index[item]
	return i, ok
}

// Contains reports whether item has similarity data.
func (m *SimilarityModel) Contains(item string) bool {
	_, ok := m.index[item]
	return ok
}

// Similarity returns the correlation between items a and b.
func (m *SimilarityModel) Similarity(a, b string) (float64, bool) {
	i, ok := m.index[a]
	if !ok {
		return 0, false
	}
	j, ok := m.index[b]
	if !ok {
		return 0, false
	}
	return m.corr.At(i, j), true
}

// Row returns the correlation of item with every item in the model,
// itself included.
func (m *SimilarityModel) Row(item string) (map[string]float64, bool) {
	i, ok := m.index[item]
	if !ok {
		return nil, false
	}

	row := make(map[string]float64, len(m.items))
	for j, other := range m.items {
		row[other] = m.corr.At(i, j)
	}
	return row, true
}

// UndefinedPairs returns how many item pairs had an undefined correlation.
func (m *SimilarityModel) UndefinedPairs() int {
	return m.undefinedPairs
}

// at returns the correlation between column indices i and j.
func (m *SimilarityModel) at(i, j int) float64 {
	return m.corr.At(i, j)
}
