package schema

import (
	"fmt"
	"strings"
)

// listKeys are the leaves the model is asked to fill with lists.
var listKeys = map[string]bool{
	"analisi_legale.criticita":           true,
	"analisi_legale.elementi_attenzione": true,
	"rischi":                             true,
	"opportunita":                        true,
}

var hints = map[string]string{
	"procedura.tipo":           "esecuzione immobiliare | fallimento | liquidazione coatta | altro",
	"giudizio.livello_rischio": strings.Join(RiskLevels, " | "),
	"giudizio.convenienza":     strings.Join(AttractivenessSet, " | "),
}

// IsListLeaf reports whether the leaf at path is expected to hold a list.
func IsListLeaf(path string) bool { return listKeys[path] }

// Skeleton renders the record shape as an indented JSON template, in display
// order, used to instruct the model. Scalar leaves show "..." or the closed
// set of accepted values; list leaves show ["...", "..."].
func Skeleton() string {
	var empty Record
	empty.Normalize()

	var b strings.Builder
	b.WriteString("{\n")
	var lines []string
	for _, g := range empty.Groups() {
		var inner []string
		for _, f := range g.Fields {
			inner = append(inner, fmt.Sprintf("    %q: %s", f.Key, placeholder(g.Key+"."+f.Key)))
		}
		lines = append(lines, fmt.Sprintf("  %q: {\n%s\n  }", g.Key, strings.Join(inner, ",\n")))
	}
	for _, f := range empty.TopLevelFields() {
		lines = append(lines, fmt.Sprintf("  %q: %s", f.Key, placeholder(f.Key)))
	}
	b.WriteString(strings.Join(lines, ",\n"))
	b.WriteString("\n}")
	return b.String()
}

func placeholder(path string) string {
	if listKeys[path] {
		return `["...", "..."]`
	}
	if h, ok := hints[path]; ok {
		return fmt.Sprintf("%q", h)
	}
	return `"..."`
}
