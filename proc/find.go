package proc

import (
	"fmt"
	"regexp"
	"strings"
)

// SourceFinder implements the Finder interface on top of any Source.
// It works from full enumeration snapshots, so every call observes one
// consistent pass over the process table.
type SourceFinder struct {
	src Source
}

// NewFinder creates a Finder backed by the given Source
func NewFinder(src Source) Finder {
	return &SourceFinder{src: src}
}

// FindByPID finds a process by its PID
func (f *SourceFinder) FindByPID(pid ProcessID) (*Snapshot, error) {
	return f.src.Snapshot(pid)
}

// FindByName finds processes by their name (exact match)
func (f *SourceFinder) FindByName(name string) ([]Snapshot, error) {
	return f.findByNamePattern("^" + regexp.QuoteMeta(name) + "$")
}

// FindByNamePattern finds processes by their name (pattern match)
func (f *SourceFinder) FindByNamePattern(pattern string) ([]Snapshot, error) {
	return f.findByNamePattern(pattern)
}

// FindAll returns information about all running processes
func (f *SourceFinder) FindAll() ([]Snapshot, error) {
	return f.src.Snapshots()
}

func (f *SourceFinder) findByNamePattern(pattern string) ([]Snapshot, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}

	all, err := f.src.Snapshots()
	if err != nil {
		return nil, err
	}

	var results []Snapshot
	for _, s := range all {
		if re.MatchString(s.Name) {
			results = append(results, s)
		}
	}

	return results, nil
}

// FindByCmdlineArg finds processes that have a specific argument in their command line
func (f *SourceFinder) FindByCmdlineArg(arg string) ([]Snapshot, error) {
	return f.findByCmdline(func(args []string) bool {
		for _, a := range args {
			if strings.Contains(a, arg) {
				return true
			}
		}
		return false
	})
}

// FindByCmdlinePattern finds processes with command line arguments matching a pattern
func (f *SourceFinder) FindByCmdlinePattern(pattern string) ([]Snapshot, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return f.findByCmdline(func(args []string) bool {
		return re.MatchString(strings.Join(args, " "))
	})
}

func (f *SourceFinder) findByCmdline(match func([]string) bool) ([]Snapshot, error) {
	all, err := f.src.Snapshots()
	if err != nil {
		return nil, err
	}

	var results []Snapshot
	for _, s := range all {
		args, err := f.src.Cmdline(s.PID)
		if err != nil {
			// Process may have terminated, or we lack permission to
			// read its arguments. Either way it cannot match.
			continue
		}
		if match(args) {
			results = append(results, s)
		}
	}

	return results, nil
}

// FindChildren finds all direct child processes of a given PID
func (f *SourceFinder) FindChildren(parentPID ProcessID) ([]Snapshot, error) {
	all, err := f.src.Snapshots()
	if err != nil {
		return nil, err
	}

	var children []Snapshot
	for _, s := range all {
		if s.PPID == parentPID {
			children = append(children, s)
		}
	}

	return children, nil
}

// FindDescendants finds all descendant processes (children, grandchildren, etc.) of a given PID
func (f *SourceFinder) FindDescendants(rootPID ProcessID) ([]Snapshot, error) {
	all, err := f.src.Snapshots()
	if err != nil {
		return nil, err
	}

	byParent := make(map[ProcessID][]Snapshot)
	for _, s := range all {
		byParent[s.PPID] = append(byParent[s.PPID], s)
	}

	var results []Snapshot
	queue := []ProcessID{rootPID}
	for len(queue) > 0 {
		pid := queue[0]
		queue = queue[1:]
		for _, child := range byParent[pid] {
			results = append(results, child)
			queue = append(queue, child.PID)
		}
	}

	return results, nil
}

// Tree returns a tree-like representation of processes starting from a root PID
func (f *SourceFinder) Tree(rootPID ProcessID) (*TreeNode, error) {
	root, err := f.src.Snapshot(rootPID)
	if err != nil {
		return nil, err
	}

	all, err := f.src.Snapshots()
	if err != nil {
		return nil, err
	}

	byParent := make(map[ProcessID][]Snapshot)
	for _, s := range all {
		byParent[s.PPID] = append(byParent[s.PPID], s)
	}

	var build func(s Snapshot) *TreeNode
	build = func(s Snapshot) *TreeNode {
		node := &TreeNode{Process: s}
		for _, child := range byParent[s.PID] {
			if child.PID == s.PID {
				continue // PID 0 lists itself as its own parent on some systems
			}
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	return build(*root), nil
}
