// Package table implements the word-count hash table.
//
// A Table is an open-addressing map from word bytes to a count, with linear
// probing over a power-of-two slot array. Each entry caches the full 32-bit
// hash, the word length and a 16-bit fingerprint so that most mismatches are
// rejected without touching the word bytes. Word bytes are copied into the
// arena owned by the table.
//
// A Table is single-writer: each worker owns one during tokenization and the
// merger owns the global one. Release frees the slot array and the arena.
package table
