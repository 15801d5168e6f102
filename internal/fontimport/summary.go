package fontimport

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Summary markers, one per outcome group.
const (
	markAdded    = "+"
	markSkipped  = "="
	markNotFound = "?"
)

// AddedFont is the JSON form of an added font in a Summary.
type AddedFont struct {
	Name             string `json:"name"`
	AvailableWeights []int  `json:"availableWeights"`
	DefaultWeight    int    `json:"defaultWeight"`
}

// Summary is the machine-readable report of an import run.
type Summary struct {
	Added    []AddedFont `json:"added"`
	Skipped  []string    `json:"skipped"`
	NotFound []string    `json:"notFound"`

	// Write reports whether the run goes on to save the registry. It is
	// false for dry runs and runs that added nothing. The summary is built
	// before the save, so a failed save is reported by the error instead.
	Write bool `json:"write"`
}

// Summary builds the report for r. write records whether the registry is
// about to be saved.
func (r *Result) Summary(write bool) Summary {
	s := Summary{
		Added:    []AddedFont{},
		Skipped:  []string{},
		NotFound: []string{},
		Write:    write,
	}
	for _, o := range r.Outcomes {
		switch o.Status {
		case Added:
			s.Added = append(s.Added, AddedFont{
				Name:             o.Font.Name,
				AvailableWeights: o.Font.AvailableWeights,
				DefaultWeight:    o.Font.DefaultWeight,
			})
		case Skipped:
			s.Skipped = append(s.Skipped, o.Family)
		case NotFound:
			s.NotFound = append(s.NotFound, o.Request)
		}
	}
	return s
}

// PrintJSON writes the summary as indented JSON.
func (s Summary) PrintJSON(w io.Writer) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// PrintText writes the human-readable summary: a totals line followed by
// one block per non-empty group.
func (s Summary) PrintText(w io.Writer, registryName string) {
	fmt.Fprintf(w, "\nSummary: %d added, %d skipped, %d not found\n",
		len(s.Added), len(s.Skipped), len(s.NotFound))

	if len(s.Added) > 0 {
		verb := "Added to"
		if !s.Write {
			verb = "Would add to"
		}
		fmt.Fprintf(w, "\n%s %s:\n", verb, registryName)
		for _, f := range s.Added {
			fmt.Fprintf(w, "  %s %s\n", markAdded, f.Name)
			fmt.Fprintf(w, "      Available weights: %s\n", joinInts(f.AvailableWeights))
			fmt.Fprintf(w, "      Default weight: %d\n", f.DefaultWeight)
		}
	}

	if len(s.Skipped) > 0 {
		fmt.Fprintf(w, "\nAlready in %s:\n", registryName)
		for _, name := range s.Skipped {
			fmt.Fprintf(w, "  %s %s\n", markSkipped, name)
		}
	}

	if len(s.NotFound) > 0 {
		fmt.Fprintln(w, "\nNot found in catalog:")
		for _, name := range s.NotFound {
			fmt.Fprintf(w, "  %s %s\n", markNotFound, name)
		}
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
