package models

import "strings"

// DefaultMaxBranches caps how many branches are loaded when no limit is configured.
const DefaultMaxBranches = 200

type Branch struct {
	Name      string
	IsCurrent bool
}

// BranchList holds branch names, most recently committed first.
// Names are unique and the list never grows past the limit it was built with.
type BranchList []string

// NewBranchList builds a list from raw names, dropping blanks and duplicates
// and keeping at most max entries. A max of zero or less means DefaultMaxBranches.
func NewBranchList(names []string, max int) BranchList {
	if max <= 0 {
		max = DefaultMaxBranches
	}

	seen := make(map[string]bool, len(names))
	list := make(BranchList, 0, min(len(names), max))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		list = append(list, name)
		if len(list) == max {
			break
		}
	}
	return list
}

// Index returns the position of name, or -1.
func (l BranchList) Index(name string) int {
	for i, b := range l {
		if b == name {
			return i
		}
	}
	return -1
}

// Promote returns a copy of the list with name moved to the front. The
// relative order of the remaining names is preserved. Unknown names are
// inserted at the front.
func (l BranchList) Promote(name string) BranchList {
	out := make(BranchList, 0, len(l)+1)
	out = append(out, name)
	for _, b := range l {
		if b != name {
			out = append(out, b)
		}
	}
	return out
}

// Branches annotates the list with the currently checked out branch.
func (l BranchList) Branches(current string) []Branch {
	branches := make([]Branch, len(l))
	for i, name := range l {
		branches[i] = Branch{Name: name, IsCurrent: name == current}
	}
	return branches
}
