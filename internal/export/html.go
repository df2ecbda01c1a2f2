package export

import (
	"html/template"
	"io"

	"lexasta/internal/schema"
)

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"text":   func(v schema.Value) string { return v.Text(listSep) },
	"or_nd":  orNotAvailable,
	"items":  items,
	"level":  riskClass,
	"anyset": anySet,
}).Parse(`<!DOCTYPE html>
<html lang="it">
<head>
<meta charset="utf-8">
<title>LexAsta — Report Analisi Avviso di Vendita</title>
<style>
body{font-family:Georgia,serif;max-width:900px;margin:40px auto;color:#1a1a1a;line-height:1.5}
h1{font-size:24px;border-bottom:2px solid #1a1a1a;padding-bottom:8px}
h2{font-size:16px;text-transform:uppercase;letter-spacing:1px;margin-top:32px}
.meta{color:#666;font-size:13px}
.verdict{padding:16px 20px;border-left:6px solid #999;background:#f6f6f6}
.verdict.low{border-color:#2e7d32}
.verdict.mid{border-color:#f9a825}
.verdict.high{border-color:#c62828}
table{width:100%;border-collapse:collapse;font-size:13px}
th,td{text-align:left;padding:6px 8px;border-bottom:1px solid #ddd;vertical-align:top}
th.cat{background:#1a1a1a;color:#fff}
td.nd{color:#999}
footer{margin-top:40px;font-size:11px;color:#666;border-top:1px solid #ddd;padding-top:8px}
</style>
</head>
<body>
<h1>LexAsta — Report Analisi Avviso di Vendita</h1>
<p class="meta">Generato il {{.GeneratedAt.Format "02/01/2006 15:04"}} · Documenti analizzati: {{.Analyzed}}</p>
{{with .Record}}
<div class="verdict {{level .Verdict.RiskLevel}}">
<p><strong>Rischio:</strong> {{or_nd .Verdict.RiskLevel}} · <strong>Convenienza:</strong> {{or_nd .Verdict.Attractiveness}}</p>
<p>{{or_nd .Verdict.Synthesis}}</p>
</div>

<h2>Analisi Legale</h2>
<p><strong>Completezza Art. 490 c.p.c.:</strong> {{or_nd .LegalAnalysis.Compliance}}</p>
<p><strong>Conformità normativa:</strong> {{or_nd .LegalAnalysis.RegulatoryConformity}}</p>
{{if anyset .LegalAnalysis.CriticalIssues}}
<h2>Criticità</h2>
<ul>{{range items .LegalAnalysis.CriticalIssues}}<li>{{.}}</li>{{end}}</ul>
{{end}}

<h2>Valutazione Economica</h2>
<p>{{or_nd .EconomicAssessment}}</p>
<p><strong>Spese stimate:</strong> {{or_nd .EstimatedCosts}}</p>

{{if anyset .Risks}}
<h2>Rischi</h2>
<ul>{{range items .Risks}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{if anyset .Opportunities}}
<h2>Opportunità</h2>
<ul>{{range items .Opportunities}}<li>{{.}}</li>{{end}}</ul>
{{end}}
{{end}}

<h2>Dati Estratti</h2>
<table>
{{range .Sections}}<tr><th class="cat" colspan="2">{{.Category}}</th></tr>
{{range .Rows}}<tr><td>{{.Label}}</td><td{{if .Missing}} class="nd"{{end}}>{{.Value}}</td></tr>
{{end}}{{end}}</table>

{{with .Record}}
<h2>Raccomandazione</h2>
<p>{{or_nd .Verdict.Recommendation}}</p>
{{end}}

<footer>{{.Disclaimer}}</footer>
</body>
</html>
`))

type htmlView struct {
	Report
	Sections   []Section
	Disclaimer string
}

// HTML renders the printable report.
func HTML(w io.Writer, rep Report) error {
	rep.Record = normalized(rep.Record)
	return htmlTemplate.Execute(w, htmlView{
		Report:     rep,
		Sections:   Sections(Rows(rep.Record)),
		Disclaimer: Disclaimer,
	})
}

func normalized(rec *schema.Record) *schema.Record {
	if rec == nil {
		return (&schema.Record{}).Normalize()
	}
	return rec.Clone().Normalize()
}

func orNotAvailable(v schema.Value) string {
	if v.Empty() {
		return NotAvailable
	}
	return v.Text(listSep)
}

// items returns list items, or the scalar as a single item.
func items(v schema.Value) []string {
	switch {
	case v.IsList():
		return v.Items()
	case v.IsScalar():
		return []string{v.String()}
	default:
		return nil
	}
}

func anySet(v schema.Value) bool { return !v.Empty() }

func riskClass(v schema.Value) string {
	switch v.String() {
	case schema.RiskLow:
		return "low"
	case schema.RiskMedium:
		return "mid"
	case schema.RiskHigh:
		return "high"
	default:
		return ""
	}
}
