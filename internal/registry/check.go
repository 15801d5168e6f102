package registry

import (
	"fmt"

	"github.com/addfont-dev/addfont/internal/fontname"
)

// Problem describes one violated registry invariant.
type Problem struct {
	Index   int    // position in the google list
	Name    string // entry name at that position
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("google[%d] %q: %s", p.Index, p.Name, p.Message)
}

// Check verifies the invariants every successful run leaves behind: the
// google list is in collation order and no two names are equal ignoring
// case. It returns nil when the registry is consistent.
func (r *Registry) Check() []Problem {
	var problems []Problem
	c := fontname.NewCollator()
	firstSeen := make(map[string]int, len(r.Google))

	for i, f := range r.Google {
		if i > 0 && c.Less(f.Name, r.Google[i-1].Name) {
			problems = append(problems, Problem{
				Index:   i,
				Name:    f.Name,
				Message: fmt.Sprintf("sorts before previous entry %q", r.Google[i-1].Name),
			})
		}
		key := fontname.Key(f.Name)
		if j, ok := firstSeen[key]; ok {
			problems = append(problems, Problem{
				Index:   i,
				Name:    f.Name,
				Message: fmt.Sprintf("duplicates google[%d] %q", j, r.Google[j].Name),
			})
			continue
		}
		firstSeen[key] = i
	}
	return problems
}

// Dedupe drops every entry whose name repeats an earlier one, ignoring
// case, and returns the names it dropped.
func (r *Registry) Dedupe() []string {
	var dropped []string
	seen := make(map[string]bool, len(r.Google))
	kept := r.Google[:0]
	for _, f := range r.Google {
		key := fontname.Key(f.Name)
		if seen[key] {
			dropped = append(dropped, f.Name)
			continue
		}
		seen[key] = true
		kept = append(kept, f)
	}
	r.Google = kept
	return dropped
}
