// Package topk selects the most frequent words of a table.
//
// Results are ordered by descending count, ties by ascending word bytes.
// Small tables are fully sorted; larger ones stream through a bounded
// min-heap of size k. Both strategies return identical results.
package topk
