package fontimport

import (
	log "github.com/sirupsen/logrus"

	"github.com/addfont-dev/addfont/internal/catalog"
	"github.com/addfont-dev/addfont/internal/registry"
)

// ProgressFunc is called once per requested name, in request order, as soon
// as the name has been resolved.
type ProgressFunc func(o Outcome)

// Importer merges catalog fonts into a registry.
type Importer struct {
	Catalog  *catalog.Catalog
	Registry *registry.Registry
	Progress ProgressFunc
}

// Result collects the outcomes of one Import call in request order.
type Result struct {
	Outcomes []Outcome
}

// Import resolves every name and appends the added fonts to the registry,
// which is re-sorted when anything was added. Names are independent: a miss
// or a duplicate never stops the rest. A name that repeats an earlier name
// of the same call is skipped, because by then its font is in the registry.
func (im *Importer) Import(names []string) *Result {
	res := &Result{Outcomes: make([]Outcome, 0, len(names))}

	for _, name := range names {
		o := Resolve(name, im.Catalog, im.Registry)
		log.WithFields(log.Fields{
			"request": name,
			"status":  o.Status.String(),
			"family":  o.Family,
		}).Debug("resolved font")

		if o.Status == Added {
			im.Registry.Add(o.Font)
		}
		res.Outcomes = append(res.Outcomes, o)
		if im.Progress != nil {
			im.Progress(o)
		}
	}

	if res.Changed() {
		im.Registry.Sort()
	}
	return res
}

// Changed reports whether at least one font was added.
func (r *Result) Changed() bool {
	return len(r.Added()) > 0
}

// Added returns the outcomes of fonts that were added.
func (r *Result) Added() []Outcome { return r.filter(Added) }

// Skipped returns the outcomes of names already present in the registry.
func (r *Result) Skipped() []Outcome { return r.filter(Skipped) }

// NotFound returns the outcomes of names missing from the catalog.
func (r *Result) NotFound() []Outcome { return r.filter(NotFound) }

func (r *Result) filter(s Status) []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == s {
			out = append(out, o)
		}
	}
	return out
}
