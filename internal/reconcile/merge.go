package reconcile

import (
	"slices"
	"strings"

	"lexasta/internal/schema"
)

// Provenance maps a leaf path to the name of the source its merged value came
// from. List leaves fed by several sources map to every contributor, joined
// by ", ".
type Provenance map[string]string

// Merge is the deterministic reconciliation of records, in input order:
// scalars are first-writer-wins, lists are a deduplicated union in order of
// first appearance, and leaves null everywhere stay null. A single record is
// returned as is. Merge is pure; inputs are never modified.
func Merge(records ...*schema.Record) *schema.Record {
	sources := make([]Source, len(records))
	for i, r := range records {
		sources[i] = Source{Record: r}
	}
	merged, _ := MergeSources(sources)
	return merged
}

// MergeSources is Merge with provenance tracking by Source.Name.
func MergeSources(sources []Source) (*schema.Record, Provenance) {
	prov := Provenance{}
	switch len(sources) {
	case 0:
		return (&schema.Record{}).Normalize(), prov
	case 1:
		rec := sources[0].Record
		if rec == nil {
			rec = &schema.Record{}
		}
		for _, l := range rec.Leaves() {
			if !l.Value.Empty() {
				prov[l.Path] = sources[0].Name
			}
		}
		return rec, prov
	}

	inputs := make([][]schema.Leaf, len(sources))
	for i, s := range sources {
		rec := s.Record
		if rec == nil {
			rec = &schema.Record{}
		}
		inputs[i] = rec.Leaves()
	}

	out := &schema.Record{}
	for i, target := range out.MutableLeaves() {
		values := make([]schema.Value, len(sources))
		for j := range sources {
			values[j] = *inputs[j][i].Value
		}
		merged, from := mergeLeaf(values)
		*target.Value = merged
		if len(from) > 0 {
			names := make([]string, 0, len(from))
			for _, j := range from {
				names = append(names, sources[j].Name)
			}
			prov[target.Path] = strings.Join(names, ", ")
		}
	}
	return out, prov
}

// mergeLeaf merges one leaf across inputs and returns the indexes of the
// inputs that contributed.
func mergeLeaf(values []schema.Value) (schema.Value, []int) {
	hasList := slices.ContainsFunc(values, schema.Value.IsList)
	if hasList {
		var items []string
		var from []int
		for i, v := range values {
			if !v.IsList() {
				continue
			}
			added := false
			for _, it := range v.Items() {
				if !slices.Contains(items, it) {
					items = append(items, it)
					added = true
				}
			}
			if added {
				from = append(from, i)
			}
		}
		return schema.List(items...), from
	}

	for i, v := range values {
		if v.IsScalar() {
			return v, []int{i}
		}
	}
	return schema.Null(), nil
}

