package export

import (
	"fmt"
	"io"
	"strings"
)

const rule = "════════════════════════════════════════════════════════════"

// Text renders the plain-text report.
func Text(w io.Writer, rep Report) error {
	rec := normalized(rep.Record)
	g, al := rec.Verdict, rec.LegalAnalysis

	var b strings.Builder
	fmt.Fprintf(&b, "LEXASTA — REPORT ANALISI AVVISO DI VENDITA\n%s\n", rule)
	fmt.Fprintf(&b, "Generato il: %s\n", rep.GeneratedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "Documenti analizzati: %d\n\n", rep.Analyzed)

	fmt.Fprintf(&b, "GIUDIZIO\n")
	fmt.Fprintf(&b, "Livello di rischio: %s\n", orNotAvailable(g.RiskLevel))
	fmt.Fprintf(&b, "Convenienza: %s\n", orNotAvailable(g.Attractiveness))
	fmt.Fprintf(&b, "Sintesi: %s\n\n", orNotAvailable(g.Synthesis))

	fmt.Fprintf(&b, "ANALISI LEGALE\n")
	fmt.Fprintf(&b, "Completezza Art. 490 c.p.c.: %s\n", orNotAvailable(al.Compliance))
	fmt.Fprintf(&b, "Conformità normativa: %s\n", orNotAvailable(al.RegulatoryConformity))
	writeList(&b, "Criticità", items(al.CriticalIssues))
	b.WriteString("\n")

	fmt.Fprintf(&b, "VALUTAZIONE ECONOMICA\n%s\n", orNotAvailable(rec.EconomicAssessment))
	fmt.Fprintf(&b, "Spese stimate: %s\n\n", orNotAvailable(rec.EstimatedCosts))

	writeList(&b, "RISCHI", items(rec.Risks))
	writeList(&b, "OPPORTUNITÀ", items(rec.Opportunities))
	b.WriteString("\n")

	for _, s := range Sections(Rows(rec)) {
		fmt.Fprintf(&b, "%s\n", s.Category)
		for _, r := range s.Rows {
			fmt.Fprintf(&b, "  %s: %s\n", r.Label, r.Value)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "RACCOMANDAZIONE\n%s\n\n", orNotAvailable(g.Recommendation))
	fmt.Fprintf(&b, "%s\n%s\n", rule, Disclaimer)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, title string, list []string) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range list {
		fmt.Fprintf(b, "  • %s\n", item)
	}
}
