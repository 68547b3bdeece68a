package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"procinfo/proc"
)

func main() {
	nameFlag := flag.String("name", "", "List only processes with this exact name")
	patternFlag := flag.String("pattern", "", "List only processes whose name matches this regexp")
	cmdlineFlag := flag.String("cmdline", "", "List only processes with this substring in their command line")
	treeFlag := flag.Int("tree", 0, "Print the process tree rooted at this PID instead of a table")
	flag.Parse()

	src := newSource()
	finder := proc.NewFinder(src)

	if *treeFlag != 0 {
		root, err := finder.Tree(proc.ProcessID(*treeFlag))
		if err != nil {
			fmt.Printf("Error building tree for PID %d: %v\n", *treeFlag, err)
			os.Exit(1)
		}
		printTree(root, 0)
		return
	}

	var (
		snaps []proc.Snapshot
		err   error
	)
	switch {
	case *nameFlag != "":
		snaps, err = finder.FindByName(*nameFlag)
	case *patternFlag != "":
		snaps, err = finder.FindByNamePattern(*patternFlag)
	case *cmdlineFlag != "":
		snaps, err = finder.FindByCmdlineArg(*cmdlineFlag)
	default:
		snaps, err = finder.FindAll()
	}
	if err != nil {
		fmt.Printf("Error listing processes: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PID\tPPID\tUSER\tSTATE\tTHREADS\tRSS\tNAME")
	for _, s := range snaps {
		user := s.User
		if user == "" {
			user = fmt.Sprintf("%d", s.UID)
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\t%s\t%s\n",
			s.PID, s.PPID, user, s.State, s.Threads, humanize.IBytes(s.RSS), s.Name)
	}
	w.Flush()
}

func printTree(node *proc.TreeNode, depth int) {
	fmt.Printf("%s%d %s\n", strings.Repeat("  ", depth), node.Process.PID, node.Process.Name)
	for _, child := range node.Children {
		printTree(child, depth+1)
	}
}
