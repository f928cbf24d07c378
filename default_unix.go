//go:build unix

package rawtext

import "github.com/hupe1980/rawtext/source"

func defaultSource() source.Source {
	return source.NewFile("")
}
