// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

/*
Package lanceindex provides the index metadata types shared by LanceDB
tooling: an immutable description of a single index (its algorithm, its
distance metric for vector indexes, and its row-coverage statistics)
together with the builder that assembles one.

The description is a pure value type. It does not create or maintain
indexes, and it never computes its own statistics; the indexing engine
produces the values and hands them over. Every field is independently
optional, and an absent field means "unknown or not applicable" rather
than an error. Nothing is validated: the description carries exactly what
it was given.

# Building a description

Descriptions are built field by field with a fluent builder:

	desc := lanceindex.NewIndexDescriptionBuilder().
		IndexType(lanceindex.IndexTypeIvfPq.String()).
		DistanceType(lanceindex.DistanceTypeCosine).
		NumIndexedRows(300).
		NumUnindexedRows(0).
		Build()

Any field never set stays absent in the result, so an empty builder yields
a description with every field absent. Setters overwrite earlier values,
and the builder can be reused: each Build call snapshots the current state
into an independent description.

# Reading fields

Accessors return the value together with a presence flag:

	if metric, ok := desc.DistanceType(); ok {
		fmt.Printf("distance metric: %s\n", metric)
	}

Presence is distinct from the zero value. A scalar index reports no
distance type at all, while a fully built vector index may report
NumUnindexedRows of exactly 0.

# Comparing descriptions

Descriptions compare field-wise with Equal, with absent fields equal only
to absent fields, and Hash returns a digest consistent with Equal, so
descriptions can be deduplicated or grouped by key:

	seen := map[uint64][]*lanceindex.IndexDescription{}
	bucket := seen[desc.Hash()]

# Wire format

A description marshals to and from JSON using the stable field names
distance_type, index_type, num_indexed_rows and num_unindexed_rows.
Absent fields are omitted from the output and fields missing from the
input stay absent, so present-with-zero always survives a round trip.

# Thread safety

A built description is immutable and safe to share across goroutines.
A builder is not: it belongs to a single owner until Build is called.
*/
package lanceindex
