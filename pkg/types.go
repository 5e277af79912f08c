// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package lanceindex

// IndexType represents the algorithm family of an index
type IndexType int

const (
	IndexTypeAuto IndexType = iota
	IndexTypeIvfPq
	IndexTypeIvfFlat
	IndexTypeHnswPq
	IndexTypeHnswSq
	IndexTypeBTree
	IndexTypeBitmap
	IndexTypeLabelList
	IndexTypeFts
)

// String returns the identifier the engine uses for this index type,
// suitable for IndexDescriptionBuilder.IndexType.
func (t IndexType) String() string {
	switch t {
	case IndexTypeAuto:
		return "vector" // Default to vector index for auto
	case IndexTypeIvfPq:
		return "ivf_pq"
	case IndexTypeIvfFlat:
		return "ivf_flat"
	case IndexTypeHnswPq:
		return "hnsw_pq"
	case IndexTypeHnswSq:
		return "hnsw_sq"
	case IndexTypeBTree:
		return "btree"
	case IndexTypeBitmap:
		return "bitmap"
	case IndexTypeLabelList:
		return "label_list"
	case IndexTypeFts:
		return "fts"
	default:
		return "vector" // Default fallback
	}
}

// Distance metrics supported by vector indexes. A description's distance
// type is one of these for vector index variants and absent otherwise.
const (
	DistanceTypeL2     = "l2"
	DistanceTypeCosine = "cosine"
	DistanceTypeDot    = "dot"
)

// IndexInfo identifies an index on a table. An index listing pairs one
// IndexInfo per index with its IndexDescription.
type IndexInfo struct {
	Name      string   `json:"name"`
	Columns   []string `json:"columns"`
	IndexType string   `json:"index_type"`
}
