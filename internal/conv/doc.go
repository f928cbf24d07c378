// Package conv provides overflow-checked integer conversions for sizes and
// line numbers that arrive from outside the process.
package conv
