//go:build !rawtextdebug

package strslice

const checked = false
