package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

func main() {
	rawFlag := flag.Bool("raw", false, "Print raw byte counts instead of humanized values")
	flag.Parse()

	src := newSource()

	mem, err := src.VirtualMemory()
	if err != nil {
		fmt.Printf("Error reading memory stats: %v\n", err)
		os.Exit(1)
	}

	swap, err := src.SwapMemory()
	if err != nil {
		fmt.Printf("Error reading swap stats: %v\n", err)
		os.Exit(1)
	}

	format := func(v uint64) string {
		if *rawFlag {
			return fmt.Sprintf("%d", v)
		}
		return humanize.IBytes(v)
	}

	fmt.Println("Memory:")
	fmt.Printf("  total:     %s\n", format(mem.Total))
	fmt.Printf("  used:      %s\n", format(mem.Used))
	fmt.Printf("  free:      %s\n", format(mem.Free))
	fmt.Printf("  available: %s\n", format(mem.Available))
	fmt.Printf("  cached:    %s\n", format(mem.Cached))
	fmt.Printf("  buffers:   %s\n", format(mem.Buffers))
	fmt.Printf("  active:    %s\n", format(mem.Active))
	fmt.Printf("  inactive:  %s\n", format(mem.Inactive))

	fmt.Println("Swap:")
	fmt.Printf("  total: %s\n", format(swap.Total))
	fmt.Printf("  used:  %s\n", format(swap.Used))
	fmt.Printf("  free:  %s\n", format(swap.Free))
	fmt.Printf("  in:    %d pages\n", swap.SwappedIn)
	fmt.Printf("  out:   %d pages\n", swap.SwappedOut)
}
