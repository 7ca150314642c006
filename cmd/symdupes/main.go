// # cmd/symdupes/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"symgraph/internal/dedup"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s file.o [file2.o ...]\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	scanner := dedup.NewScanner()
	for _, path := range flag.Args() {
		if err := scanner.Add(path); err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
		}
	}

	groups := scanner.Duplicates()
	if len(groups) == 0 {
		fmt.Println("No duplicate code sections found.")
		return
	}

	for _, group := range groups {
		fmt.Printf("%s:\n", group.Hash)
		for _, file := range group.Files {
			fmt.Printf("    %s\n", file)
		}
	}
}
