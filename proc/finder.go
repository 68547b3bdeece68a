package proc

// Finder defines operations for discovering processes and their relationships
type Finder interface {
	// FindByPID finds a process by its PID
	FindByPID(pid ProcessID) (*Snapshot, error)

	// FindByName finds processes by their name (exact match)
	FindByName(name string) ([]Snapshot, error)

	// FindByNamePattern finds processes by their name (pattern match)
	FindByNamePattern(pattern string) ([]Snapshot, error)

	// FindAll returns information about all running processes
	FindAll() ([]Snapshot, error)

	// FindByCmdlineArg finds processes that have a specific argument in their command line
	FindByCmdlineArg(arg string) ([]Snapshot, error)

	// FindByCmdlinePattern finds processes with command line arguments matching a pattern
	FindByCmdlinePattern(pattern string) ([]Snapshot, error)

	// Process hierarchy operations
	Hierarchy
}

// Hierarchy defines operations for working with process relationships
type Hierarchy interface {
	// FindChildren finds all direct child processes of a given PID
	FindChildren(parentPID ProcessID) ([]Snapshot, error)

	// FindDescendants finds all descendant processes (children, grandchildren, etc.) of a given PID
	FindDescendants(rootPID ProcessID) ([]Snapshot, error)

	// Tree returns a tree-like representation of processes starting from a root PID
	Tree(rootPID ProcessID) (*TreeNode, error)
}
