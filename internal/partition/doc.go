// Package partition splits an input buffer into word-aligned ranges and runs
// one tokenizer worker per range.
//
// Cut points start at the even split i*L/N and move forward past any letters,
// so no cut falls inside a word and every word belongs to exactly one range.
// The Scheduler starts one goroutine per range, each with its own table, and
// returns only after all of them finished. The input is never written.
package partition
