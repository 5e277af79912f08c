// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package lanceindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexTypeString(t *testing.T) {
	cases := []struct {
		indexType IndexType
		want      string
	}{
		{IndexTypeAuto, "vector"},
		{IndexTypeIvfPq, "ivf_pq"},
		{IndexTypeIvfFlat, "ivf_flat"},
		{IndexTypeHnswPq, "hnsw_pq"},
		{IndexTypeHnswSq, "hnsw_sq"},
		{IndexTypeBTree, "btree"},
		{IndexTypeBitmap, "bitmap"},
		{IndexTypeLabelList, "label_list"},
		{IndexTypeFts, "fts"},
		{IndexType(99), "vector"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.indexType.String())
	}
}

func TestIndexTypeFeedsBuilder(t *testing.T) {
	desc := NewIndexDescriptionBuilder().
		IndexType(IndexTypeHnswPq.String()).
		DistanceType(DistanceTypeL2).
		Build()

	indexType, ok := desc.IndexType()
	assert.True(t, ok)
	assert.Equal(t, "hnsw_pq", indexType)

	distance, ok := desc.DistanceType()
	assert.True(t, ok)
	assert.Equal(t, "l2", distance)
}
