package rawtext_test

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/rawtext"
	"github.com/hupe1980/rawtext/numconv"
	"github.com/hupe1980/rawtext/source"
	"github.com/hupe1980/rawtext/strslice"
)

// Example_sumNumbers reads a document line by line and adds up the numeric lines.
func Example_sumNumbers() {
	mem := source.NewMemory()
	mem.Put("numbers.txt", []byte("  10\n\t20\nnot a number\n  12\n"))

	doc, err := rawtext.Open(context.Background(), "numbers.txt",
		rawtext.WithSource(mem),
		rawtext.WithTrimSet(" \t"),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer doc.Close()

	var total uint64
	r := doc.Lines()
	for r.Next() {
		if numconv.IsNumber(r.Line()) {
			total += numconv.ParseUint(r.Line())
		}
	}

	var out bytes.Buffer
	_ = numconv.WriteUint(&out, total)
	fmt.Println(out.String())
	// Output: 42
}

// Example_split shows how Split consumes its receiver.
func Example_split() {
	record := strslice.FromString("alice,30,berlin")

	var field strslice.Slice
	for !record.IsEmpty() {
		record.Split(',', &field)
		fmt.Println(field)
	}
	// Output:
	// alice
	// 30
	// berlin
}
