// Package schema defines the fixed shape of a foreclosure-notice analysis.
//
// Every extraction and every reconciled report is a Record. All leaves are
// enumerated statically so the merge and the renderers can walk the whole
// shape without reflection.
package schema

// Procedure holds the court-procedure data (procedura).
type Procedure struct {
	Kind            Value `json:"tipo"`
	Court           Value `json:"tribunale"`
	CaseNumber      Value `json:"rge"`
	Judge           Value `json:"giudice"`
	Delegate        Value `json:"delegato"`
	PublicationDate Value `json:"data_pubblicazione"`
}

// Property holds the real-estate unit data (immobile).
type Property struct {
	Type              Value `json:"tipologia"`
	Location          Value `json:"ubicazione"`
	SurveyedArea      Value `json:"superficie_catastale"`
	Sheet             Value `json:"foglio"`
	Parcel            Value `json:"particella"`
	SubUnit           Value `json:"subalterno"`
	CadastralCategory Value `json:"categoria_catastale"`
	CadastralIncome   Value `json:"rendita_catastale"`
	Description       Value `json:"descrizione"`
}

// Financials holds prices and deposits (economico).
type Financials struct {
	FirstAuctionBase   Value `json:"prezzo_base_prima_asta"`
	SecondAuctionBase  Value `json:"prezzo_base_seconda_asta"`
	MinimumBid         Value `json:"offerta_minima"`
	AppraisedValue     Value `json:"valore_stima"`
	MinimumIncrement   Value `json:"rilanci_minimi"`
	Deposit            Value `json:"cauzione"`
	DiscountPercentage Value `json:"sconto_percentuale"`
}

// Encumbrances holds liens and occupancy (vincoli).
type Encumbrances struct {
	Mortgages             Value `json:"ipoteche"`
	RegisteredAnnotations Value `json:"trascrizioni"`
	OtherLiens            Value `json:"altri_gravami"`
	Occupants             Value `json:"occupanti"`
	OccupantsStanding     Value `json:"situazione_giuridica_occupanti"`
}

// SaleTerms holds auction dates and modalities (modalita_vendita).
type SaleTerms struct {
	FirstAuctionDate  Value `json:"data_prima_asta"`
	SecondAuctionDate Value `json:"data_seconda_asta"`
	BidDeadline       Value `json:"termine_offerte"`
	BidModality       Value `json:"modalita_offerta"`
	PaymentModality   Value `json:"modalita_pagamento"`
	CompetentCourt    Value `json:"tribunale_competente"`
}

// LegalAnalysis holds the compliance review (analisi_legale).
type LegalAnalysis struct {
	Compliance           Value `json:"completezza_490cpc"`
	CriticalIssues       Value `json:"criticita"`
	AttentionPoints      Value `json:"elementi_attenzione"`
	RegulatoryConformity Value `json:"conformita_normativa"`
}

// Verdict holds the final judgement (giudizio).
type Verdict struct {
	RiskLevel      Value `json:"livello_rischio"`
	Attractiveness Value `json:"convenienza"`
	Synthesis      Value `json:"sintesi"`
	Recommendation Value `json:"raccomandazione"`
}

// Record is one StructuredRecord. A nil group is an absent group.
type Record struct {
	Procedure          *Procedure     `json:"procedura"`
	Property           *Property      `json:"immobile"`
	Financials         *Financials    `json:"economico"`
	Encumbrances       *Encumbrances  `json:"vincoli"`
	SaleTerms          *SaleTerms     `json:"modalita_vendita"`
	LegalAnalysis      *LegalAnalysis `json:"analisi_legale"`
	Risks              Value          `json:"rischi"`
	Opportunities      Value          `json:"opportunita"`
	EconomicAssessment Value          `json:"valutazione_economica"`
	EstimatedCosts     Value          `json:"spese_stimate"`
	Verdict            *Verdict       `json:"giudizio"`
}

// Risk levels and attractiveness grades accepted in the verdict.
const (
	RiskLow    = "BASSO"
	RiskMedium = "MEDIO"
	RiskHigh   = "ALTO"

	AttractivenessHigh   = "ALTA"
	AttractivenessMedium = "MEDIA"
	AttractivenessLow    = "BASSA"
)

var (
	RiskLevels        = []string{RiskLow, RiskMedium, RiskHigh}
	AttractivenessSet = []string{AttractivenessHigh, AttractivenessMedium, AttractivenessLow}
)

// Group keys, in display order.
const (
	GroupProcedure     = "procedura"
	GroupProperty      = "immobile"
	GroupFinancials    = "economico"
	GroupEncumbrances  = "vincoli"
	GroupSaleTerms     = "modalita_vendita"
	GroupLegalAnalysis = "analisi_legale"
	GroupVerdict       = "giudizio"
)

// Field is a named pointer to one leaf.
type Field struct {
	Key   string
	Value *Value
}

func (p *Procedure) Fields() []Field {
	return []Field{
		{"tipo", &p.Kind},
		{"tribunale", &p.Court},
		{"rge", &p.CaseNumber},
		{"giudice", &p.Judge},
		{"delegato", &p.Delegate},
		{"data_pubblicazione", &p.PublicationDate},
	}
}

func (p *Property) Fields() []Field {
	return []Field{
		{"tipologia", &p.Type},
		{"ubicazione", &p.Location},
		{"superficie_catastale", &p.SurveyedArea},
		{"foglio", &p.Sheet},
		{"particella", &p.Parcel},
		{"subalterno", &p.SubUnit},
		{"categoria_catastale", &p.CadastralCategory},
		{"rendita_catastale", &p.CadastralIncome},
		{"descrizione", &p.Description},
	}
}

func (f *Financials) Fields() []Field {
	return []Field{
		{"prezzo_base_prima_asta", &f.FirstAuctionBase},
		{"prezzo_base_seconda_asta", &f.SecondAuctionBase},
		{"offerta_minima", &f.MinimumBid},
		{"valore_stima", &f.AppraisedValue},
		{"rilanci_minimi", &f.MinimumIncrement},
		{"cauzione", &f.Deposit},
		{"sconto_percentuale", &f.DiscountPercentage},
	}
}

func (e *Encumbrances) Fields() []Field {
	return []Field{
		{"ipoteche", &e.Mortgages},
		{"trascrizioni", &e.RegisteredAnnotations},
		{"altri_gravami", &e.OtherLiens},
		{"occupanti", &e.Occupants},
		{"situazione_giuridica_occupanti", &e.OccupantsStanding},
	}
}

func (s *SaleTerms) Fields() []Field {
	return []Field{
		{"data_prima_asta", &s.FirstAuctionDate},
		{"data_seconda_asta", &s.SecondAuctionDate},
		{"termine_offerte", &s.BidDeadline},
		{"modalita_offerta", &s.BidModality},
		{"modalita_pagamento", &s.PaymentModality},
		{"tribunale_competente", &s.CompetentCourt},
	}
}

func (l *LegalAnalysis) Fields() []Field {
	return []Field{
		{"completezza_490cpc", &l.Compliance},
		{"criticita", &l.CriticalIssues},
		{"elementi_attenzione", &l.AttentionPoints},
		{"conformita_normativa", &l.RegulatoryConformity},
	}
}

func (v *Verdict) Fields() []Field {
	return []Field{
		{"livello_rischio", &v.RiskLevel},
		{"convenienza", &v.Attractiveness},
		{"sintesi", &v.Synthesis},
		{"raccomandazione", &v.Recommendation},
	}
}

// TopLevelFields returns the leaves that sit directly on the record.
func (r *Record) TopLevelFields() []Field {
	return []Field{
		{"rischi", &r.Risks},
		{"opportunita", &r.Opportunities},
		{"valutazione_economica", &r.EconomicAssessment},
		{"spese_stimate", &r.EstimatedCosts},
	}
}

// Group is a nested group of a record. Fields is nil when the group is absent.
type Group struct {
	Key    string
	Fields []Field
}

// Groups returns the nested groups in display order.
func (r *Record) Groups() []Group {
	g := func(key string, present bool, fields func() []Field) Group {
		if !present {
			return Group{Key: key}
		}
		return Group{Key: key, Fields: fields()}
	}
	return []Group{
		g(GroupProcedure, r.Procedure != nil, func() []Field { return r.Procedure.Fields() }),
		g(GroupProperty, r.Property != nil, func() []Field { return r.Property.Fields() }),
		g(GroupFinancials, r.Financials != nil, func() []Field { return r.Financials.Fields() }),
		g(GroupEncumbrances, r.Encumbrances != nil, func() []Field { return r.Encumbrances.Fields() }),
		g(GroupSaleTerms, r.SaleTerms != nil, func() []Field { return r.SaleTerms.Fields() }),
		g(GroupLegalAnalysis, r.LegalAnalysis != nil, func() []Field { return r.LegalAnalysis.Fields() }),
		g(GroupVerdict, r.Verdict != nil, func() []Field { return r.Verdict.Fields() }),
	}
}

// Leaf is a leaf addressed by its dotted path, e.g. "procedura.tribunale".
type Leaf struct {
	Path  string
	Value *Value
}

// Leaves enumerates every leaf of a normalized copy of the record in display order.
func (r *Record) Leaves() []Leaf {
	return r.Clone().MutableLeaves()
}

// MutableLeaves normalizes r and enumerates its leaves in display order. The
// returned values point into r.
func (r *Record) MutableLeaves() []Leaf {
	r.Normalize()
	var out []Leaf
	for _, g := range r.Groups() {
		for _, f := range g.Fields {
			out = append(out, Leaf{Path: g.Key + "." + f.Key, Value: f.Value})
		}
	}
	for _, f := range r.TopLevelFields() {
		out = append(out, Leaf{Path: f.Key, Value: f.Value})
	}
	return out
}

// Normalize fills absent groups so every leaf of the shape exists. It returns r.
func (r *Record) Normalize() *Record {
	if r.Procedure == nil {
		r.Procedure = &Procedure{}
	}
	if r.Property == nil {
		r.Property = &Property{}
	}
	if r.Financials == nil {
		r.Financials = &Financials{}
	}
	if r.Encumbrances == nil {
		r.Encumbrances = &Encumbrances{}
	}
	if r.SaleTerms == nil {
		r.SaleTerms = &SaleTerms{}
	}
	if r.LegalAnalysis == nil {
		r.LegalAnalysis = &LegalAnalysis{}
	}
	if r.Verdict == nil {
		r.Verdict = &Verdict{}
	}
	return r
}

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := &Record{
		Procedure:          cloneGroup(r.Procedure),
		Property:           cloneGroup(r.Property),
		Financials:         cloneGroup(r.Financials),
		Encumbrances:       cloneGroup(r.Encumbrances),
		SaleTerms:          cloneGroup(r.SaleTerms),
		LegalAnalysis:      cloneGroup(r.LegalAnalysis),
		Verdict:            cloneGroup(r.Verdict),
		Risks:              r.Risks.clone(),
		Opportunities:      r.Opportunities.clone(),
		EconomicAssessment: r.EconomicAssessment.clone(),
		EstimatedCosts:     r.EstimatedCosts.clone(),
	}
	return out
}

// GroupPtr is satisfied by pointers to the nested group types.
type GroupPtr[T any] interface {
	*T
	Fields() []Field
}

func cloneGroup[T any, P GroupPtr[T]](g P) P {
	if g == nil {
		return nil
	}
	c := P(new(T))
	*c = *g
	for _, f := range c.Fields() {
		*f.Value = f.Value.clone()
	}
	return c
}

func (v Value) clone() Value {
	if v.kind == KindList {
		v.list = append([]string{}, v.list...)
	}
	return v
}
