// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package lanceindex

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// IndexDescription describes one index on a table: its algorithm, the
// distance metric for vector indexes, and how many rows the index covers.
// The statistics are produced by the indexing engine; the description is a
// passive carrier and performs no validation of the values it holds.
//
// Every field is independently optional. An absent field means the value is
// unknown or not applicable to the index kind, never an error.
//
// Descriptions are immutable once built and safe to share across goroutines
// without synchronization. Use NewIndexDescriptionBuilder to construct one.
type IndexDescription struct {
	distanceType     *string
	indexType        *string
	numIndexedRows   *int64
	numUnindexedRows *int64
}

// indexDescriptionWire is the JSON shape of an IndexDescription. A nil
// pointer field is omitted; a present field serializes even when zero.
type indexDescriptionWire struct {
	DistanceType     *string `json:"distance_type,omitempty"`
	IndexType        *string `json:"index_type,omitempty"`
	NumIndexedRows   *int64  `json:"num_indexed_rows,omitempty"`
	NumUnindexedRows *int64  `json:"num_unindexed_rows,omitempty"`
}

// DistanceType returns the distance metric used by the index (e.g. "l2",
// "cosine", "dot"). Only vector indexes carry a distance type; ok is false
// when none is set.
func (d *IndexDescription) DistanceType() (value string, ok bool) {
	if d.distanceType == nil {
		return "", false
	}
	return *d.distanceType, true
}

// IndexType returns the index algorithm identifier (e.g. "ivf_pq", "btree",
// "bitmap", "hnsw_pq"). ok is false when none is set.
func (d *IndexDescription) IndexType() (value string, ok bool) {
	if d.indexType == nil {
		return "", false
	}
	return *d.indexType, true
}

// NumIndexedRows returns the number of rows covered by this index. ok is
// false when the count is unavailable.
func (d *IndexDescription) NumIndexedRows() (value int64, ok bool) {
	if d.numIndexedRows == nil {
		return 0, false
	}
	return *d.numIndexedRows, true
}

// NumUnindexedRows returns the number of rows not yet covered by this
// index. ok is false when the count is unavailable.
func (d *IndexDescription) NumUnindexedRows() (value int64, ok bool) {
	if d.numUnindexedRows == nil {
		return 0, false
	}
	return *d.numUnindexedRows, true
}

// Equal reports whether d and other hold the same four fields. An absent
// field equals only an absent field. Two nil descriptions are equal.
func (d *IndexDescription) Equal(other *IndexDescription) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return stringPtrEqual(d.distanceType, other.distanceType) &&
		stringPtrEqual(d.indexType, other.indexType) &&
		int64PtrEqual(d.numIndexedRows, other.numIndexedRows) &&
		int64PtrEqual(d.numUnindexedRows, other.numUnindexedRows)
}

// Hash returns a digest of all four fields. Descriptions that compare Equal
// always hash to the same value; the result is stable for the lifetime of
// the process.
func (d *IndexDescription) Hash() uint64 {
	h := xxhash.New()
	hashStringPtr(h, d.distanceType)
	hashStringPtr(h, d.indexType)
	hashInt64Ptr(h, d.numIndexedRows)
	hashInt64Ptr(h, d.numUnindexedRows)
	return h.Sum64()
}

// String renders every field for diagnostics, marking absent fields as
// "unset". The format is not stable and must not be parsed.
func (d *IndexDescription) String() string {
	return fmt.Sprintf(
		"IndexDescription{distance_type=%s, index_type=%s, num_indexed_rows=%s, num_unindexed_rows=%s}",
		renderStringPtr(d.distanceType),
		renderStringPtr(d.indexType),
		renderInt64Ptr(d.numIndexedRows),
		renderInt64Ptr(d.numUnindexedRows),
	)
}

// MarshalJSON encodes the description using the stable wire field names.
// Absent fields are omitted entirely; a present zero count is encoded as 0.
func (d *IndexDescription) MarshalJSON() ([]byte, error) {
	return json.Marshal(indexDescriptionWire{
		DistanceType:     d.distanceType,
		IndexType:        d.indexType,
		NumIndexedRows:   d.numIndexedRows,
		NumUnindexedRows: d.numUnindexedRows,
	})
}

// UnmarshalJSON decodes a description from its wire form. Fields missing
// from the input are left absent.
func (d *IndexDescription) UnmarshalJSON(data []byte) error {
	var wire indexDescriptionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d.distanceType = clonePtr(wire.DistanceType)
	d.indexType = clonePtr(wire.IndexType)
	d.numIndexedRows = clonePtr(wire.NumIndexedRows)
	d.numUnindexedRows = clonePtr(wire.NumUnindexedRows)
	return nil
}

// IndexDescriptionBuilder accumulates fields for an IndexDescription.
// Setters overwrite any value set earlier on the same builder and return
// the builder for chaining. A builder is single-owner: it must not be used
// from multiple goroutines without external synchronization.
//
// Build may be called more than once; each call snapshots the current
// fields into an independent description, so reusing or mutating the
// builder afterwards never changes descriptions already built.
type IndexDescriptionBuilder struct {
	distanceType     *string
	indexType        *string
	numIndexedRows   *int64
	numUnindexedRows *int64
}

// NewIndexDescriptionBuilder returns an empty builder. Building it without
// any setter calls yields a description with every field absent.
func NewIndexDescriptionBuilder() *IndexDescriptionBuilder {
	return &IndexDescriptionBuilder{}
}

// DistanceType records the distance metric for the description.
func (b *IndexDescriptionBuilder) DistanceType(distanceType string) *IndexDescriptionBuilder {
	b.distanceType = &distanceType
	return b
}

// IndexType records the index algorithm identifier for the description.
func (b *IndexDescriptionBuilder) IndexType(indexType string) *IndexDescriptionBuilder {
	b.indexType = &indexType
	return b
}

// NumIndexedRows records the covered-row count for the description.
func (b *IndexDescriptionBuilder) NumIndexedRows(numIndexedRows int64) *IndexDescriptionBuilder {
	b.numIndexedRows = &numIndexedRows
	return b
}

// NumUnindexedRows records the uncovered-row count for the description.
func (b *IndexDescriptionBuilder) NumUnindexedRows(numUnindexedRows int64) *IndexDescriptionBuilder {
	b.numUnindexedRows = &numUnindexedRows
	return b
}

// Build snapshots the builder's current fields into a new immutable
// IndexDescription. Fields never set remain absent.
func (b *IndexDescriptionBuilder) Build() *IndexDescription {
	return &IndexDescription{
		distanceType:     clonePtr(b.distanceType),
		indexType:        clonePtr(b.indexType),
		numIndexedRows:   clonePtr(b.numIndexedRows),
		numUnindexedRows: clonePtr(b.numUnindexedRows),
	}
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// The hash layout tags each field with a presence byte and length-prefixes
// string values so adjacent fields can never alias each other.
func hashStringPtr(h *xxhash.Digest, v *string) {
	if v == nil {
		_, _ = h.Write([]byte{0})
		return
	}
	var n [9]byte
	n[0] = 1
	binary.LittleEndian.PutUint64(n[1:], uint64(len(*v)))
	_, _ = h.Write(n[:])
	_, _ = h.WriteString(*v)
}

func hashInt64Ptr(h *xxhash.Digest, v *int64) {
	if v == nil {
		_, _ = h.Write([]byte{0})
		return
	}
	var n [9]byte
	n[0] = 1
	binary.LittleEndian.PutUint64(n[1:], uint64(*v))
	_, _ = h.Write(n[:])
}

func renderStringPtr(v *string) string {
	if v == nil {
		return "unset"
	}
	return *v
}

func renderInt64Ptr(v *int64) string {
	if v == nil {
		return "unset"
	}
	return strconv.FormatInt(*v, 10)
}
