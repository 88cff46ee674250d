// Package dictation implements the text side of dictation grading: target
// and attempt normalization, word-level diffing, and reduction of the diff
// into an accuracy score with missed and correct word sets.
package dictation
