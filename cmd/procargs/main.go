package main

import (
	"flag"
	"fmt"
	"os"

	"procinfo/proc"
)

func main() {
	pidFlag := flag.Int("pid", 0, "Process ID to inspect")
	flag.Parse()

	if *pidFlag == 0 {
		fmt.Println("Error: --pid is required")
		flag.Usage()
		os.Exit(1)
	}

	src := newSource()
	pid := proc.ProcessID(*pidFlag)

	args, err := src.Cmdline(pid)
	if err != nil {
		switch {
		case proc.IsNoSuchProcess(err):
			fmt.Printf("No process with PID %d\n", pid)
		case proc.IsAccessDenied(err):
			fmt.Printf("Not allowed to read the arguments of PID %d\n", pid)
		default:
			fmt.Printf("Error reading arguments of PID %d: %v\n", pid, err)
		}
		os.Exit(1)
	}

	if len(args) == 0 {
		fmt.Printf("PID %d has no readable arguments (kernel thread or zombie)\n", pid)
		return
	}

	for i, arg := range args {
		fmt.Printf("argv[%d] = %s\n", i, arg)
	}
}
