//go:build rawtextdebug

package strslice

const checked = true
