// Package export renders a unified record as HTML, plain text, CSV and XLSX.
package export

import (
	"lexasta/internal/schema"
)

// NotAvailable marks a field with no value in any document.
const NotAvailable = "N/D"

// listSep joins list values inside a single cell.
const listSep = " | "

// Row is one line of the field table.
type Row struct {
	Category string
	Label    string
	Value    string
	Missing  bool
}

// Category names of the field table.
const (
	CategoryProcedure = "DATI PROCEDURA"
	CategoryProperty  = "IMMOBILE"
	CategoryFinancial = "ASPETTI ECONOMICI"
	CategoryLiens     = "VINCOLI E ONERI"
	CategorySale      = "MODALITÀ VENDITA"
	CategoryIssues    = "CRITICITÀ"
	CategoryVerdict   = "GIUDIZIO"
)

func row(category, label string, v schema.Value) Row {
	if v.Empty() {
		return Row{Category: category, Label: label, Value: NotAvailable, Missing: true}
	}
	return Row{Category: category, Label: label, Value: v.Text(listSep)}
}

// Rows returns the static field table of a record. Every field appears, in
// display order; absent values read NotAvailable.
func Rows(rec *schema.Record) []Row {
	r := rec.Clone()
	if r == nil {
		r = &schema.Record{}
	}
	r.Normalize()
	p, im, ec, vin, mo, al, g := r.Procedure, r.Property, r.Financials, r.Encumbrances, r.SaleTerms, r.LegalAnalysis, r.Verdict

	return []Row{
		row(CategoryProcedure, "Tipo di Procedura", p.Kind),
		row(CategoryProcedure, "Tribunale", p.Court),
		row(CategoryProcedure, "Numero RGE", p.CaseNumber),
		row(CategoryProcedure, "Giudice dell'Esecuzione", p.Judge),
		row(CategoryProcedure, "Professionista Delegato", p.Delegate),
		row(CategoryProcedure, "Data Pubblicazione Avviso", p.PublicationDate),

		row(CategoryProperty, "Tipologia", im.Type),
		row(CategoryProperty, "Ubicazione Completa", im.Location),
		row(CategoryProperty, "Superficie Catastale", im.SurveyedArea),
		cadastralRow(im),
		row(CategoryProperty, "Categoria Catastale", im.CadastralCategory),
		row(CategoryProperty, "Rendita Catastale", im.CadastralIncome),

		row(CategoryFinancial, "Valore di Stima", ec.AppraisedValue),
		row(CategoryFinancial, "Prezzo Base Prima Asta", ec.FirstAuctionBase),
		row(CategoryFinancial, "Prezzo Base Seconda Asta", ec.SecondAuctionBase),
		row(CategoryFinancial, "Offerta Minima", ec.MinimumBid),
		row(CategoryFinancial, "Sconto sulla Stima", ec.DiscountPercentage),
		row(CategoryFinancial, "Offerte Aumentative (rilanci)", ec.MinimumIncrement),
		row(CategoryFinancial, "Cauzione Richiesta", ec.Deposit),

		row(CategoryLiens, "Ipoteche Iscritte", vin.Mortgages),
		row(CategoryLiens, "Trascrizioni", vin.RegisteredAnnotations),
		row(CategoryLiens, "Altri Gravami", vin.OtherLiens),
		row(CategoryLiens, "Occupanti", vin.Occupants),
		row(CategoryLiens, "Situazione Giuridica Occupanti", vin.OccupantsStanding),

		row(CategorySale, "Data Prima Asta", mo.FirstAuctionDate),
		row(CategorySale, "Data Seconda Asta", mo.SecondAuctionDate),
		row(CategorySale, "Termine Presentazione Offerte", mo.BidDeadline),
		row(CategorySale, "Modalità Offerta", mo.BidModality),
		row(CategorySale, "Modalità Pagamento", mo.PaymentModality),
		row(CategorySale, "Tribunale Competente", mo.CompetentCourt),

		row(CategoryIssues, "Rischi Identificati", r.Risks),
		row(CategoryIssues, "Elementi di Attenzione", al.AttentionPoints),
		row(CategoryIssues, "Completezza Art. 490 c.p.c.", al.Compliance),
		row(CategoryIssues, "Conformità Normativa", al.RegulatoryConformity),

		row(CategoryVerdict, "Livello di Rischio", g.RiskLevel),
		row(CategoryVerdict, "Convenienza", g.Attractiveness),
		row(CategoryVerdict, "Sintesi", g.Synthesis),
		row(CategoryVerdict, "Raccomandazione", g.Recommendation),
	}
}

// cadastralRow combines sheet, parcel and sub-unit in one row.
func cadastralRow(im *schema.Property) Row {
	const label = "Foglio / Particella"
	if im.Sheet.Empty() && im.Parcel.Empty() && im.SubUnit.Empty() {
		return Row{Category: CategoryProperty, Label: label, Value: NotAvailable, Missing: true}
	}
	dash := func(v schema.Value) string {
		if v.Empty() {
			return "—"
		}
		return v.Text(listSep)
	}
	value := dash(im.Sheet) + " / " + dash(im.Parcel)
	if !im.SubUnit.Empty() {
		value += " / Sub. " + im.SubUnit.Text(listSep)
	}
	return Row{Category: CategoryProperty, Label: label, Value: value}
}

// Section is a run of consecutive rows sharing a category.
type Section struct {
	Category string
	Rows     []Row
}

// Sections groups rows by category, preserving order.
func Sections(rows []Row) []Section {
	var out []Section
	for _, r := range rows {
		if len(out) == 0 || out[len(out)-1].Category != r.Category {
			out = append(out, Section{Category: r.Category})
		}
		out[len(out)-1].Rows = append(out[len(out)-1].Rows, r)
	}
	return out
}
