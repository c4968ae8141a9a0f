package contents

import "sort"

// Counter accumulates how many file entries mention each package.
type Counter map[string]int

// Add credits pkg with one file entry.
func (c Counter) Add(pkg string) { c[pkg]++ }

// Len returns the number of distinct packages seen.
func (c Counter) Len() int { return len(c) }

// Stat is one row of a ranking: a package and its file count.
type Stat struct {
	Package string
	Files   int
}

// Top returns the n packages with the most files, ordered by count
// descending. Ties are broken by package name ascending so the ranking
// is deterministic. If n exceeds the number of packages, all are
// returned; n <= 0 returns nil.
func (c Counter) Top(n int) []Stat {
	if n <= 0 {
		return nil
	}

	stats := make([]Stat, 0, len(c))
	for pkg, files := range c {
		stats = append(stats, Stat{Package: pkg, Files: files})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Files != stats[j].Files {
			return stats[i].Files > stats[j].Files
		}
		return stats[i].Package < stats[j].Package
	})

	if n < len(stats) {
		stats = stats[:n]
	}
	return stats
}
