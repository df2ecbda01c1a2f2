package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"model provider not registered: claude"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"analysis queued"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}

// --- Unified record (for documentation) ---

// NoticeRecord documents the shape of a per-document or unified record.
// Every leaf is a string, a list of strings, or null.
type NoticeRecord struct {
	Procedura            ProceduraDoc     `json:"procedura"`
	Immobile             ImmobileDoc      `json:"immobile"`
	Economico            EconomicoDoc     `json:"economico"`
	Vincoli              VincoliDoc       `json:"vincoli"`
	ModalitaVendita      ModalitaDoc      `json:"modalita_vendita"`
	AnalisiLegale        AnalisiLegaleDoc `json:"analisi_legale"`
	Rischi               []string         `json:"rischi" example:"Immobile occupato,Abuso edilizio"`
	Opportunita          []string         `json:"opportunita" example:"Prezzo inferiore alla stima"`
	ValutazioneEconomica string           `json:"valutazione_economica" example:"Prezzo base congruo rispetto al mercato"`
	SpeseStimate         string           `json:"spese_stimate" example:"Circa 8.000 euro di spese condominiali arretrate"`
	Giudizio             GiudizioDoc      `json:"giudizio"`
}

// ProceduraDoc documents the procedura group.
type ProceduraDoc struct {
	Tipo              string `json:"tipo" example:"esecuzione immobiliare"`
	Tribunale         string `json:"tribunale" example:"Tribunale di Milano"`
	RGE               string `json:"rge" example:"123/2024"`
	Giudice           string `json:"giudice" example:"Dott.ssa Rossi"`
	Delegato          string `json:"delegato" example:"Avv. Bianchi"`
	DataPubblicazione string `json:"data_pubblicazione" example:"10/01/2025"`
}

// ImmobileDoc documents the immobile group.
type ImmobileDoc struct {
	Tipologia           string `json:"tipologia" example:"appartamento"`
	Ubicazione          string `json:"ubicazione" example:"Via Roma 10, Milano"`
	SuperficieCatastale string `json:"superficie_catastale" example:"85 mq"`
	Foglio              string `json:"foglio" example:"12"`
	Particella          string `json:"particella" example:"345"`
	Subalterno          string `json:"subalterno" example:"7"`
	CategoriaCatastale  string `json:"categoria_catastale" example:"A/2"`
	RenditaCatastale    string `json:"rendita_catastale" example:"euro 750,00"`
	Descrizione         string `json:"descrizione" example:"Trilocale al secondo piano"`
}

// EconomicoDoc documents the economico group.
type EconomicoDoc struct {
	PrezzoBasePrimaAsta   string `json:"prezzo_base_prima_asta" example:"150.000,00"`
	PrezzoBaseSecondaAsta string `json:"prezzo_base_seconda_asta" example:"112.500,00"`
	OffertaMinima         string `json:"offerta_minima" example:"112.500,00"`
	ValoreStima           string `json:"valore_stima" example:"180.000,00"`
	RilanciMinimi         string `json:"rilanci_minimi" example:"2.000,00"`
	Cauzione              string `json:"cauzione" example:"10% del prezzo offerto"`
	ScontoPercentuale     string `json:"sconto_percentuale" example:"17%"`
}

// VincoliDoc documents the vincoli group.
type VincoliDoc struct {
	Ipoteche                     string `json:"ipoteche"`
	Trascrizioni                 string `json:"trascrizioni"`
	AltriGravami                 string `json:"altri_gravami"`
	Occupanti                    string `json:"occupanti" example:"debitore esecutato"`
	SituazioneGiuridicaOccupanti string `json:"situazione_giuridica_occupanti" example:"senza titolo opponibile"`
}

// ModalitaDoc documents the modalita_vendita group.
type ModalitaDoc struct {
	DataPrimaAsta       string `json:"data_prima_asta" example:"15/03/2025"`
	DataSecondaAsta     string `json:"data_seconda_asta"`
	TermineOfferte      string `json:"termine_offerte" example:"14/03/2025 ore 12:00"`
	ModalitaOfferta     string `json:"modalita_offerta" example:"telematica"`
	ModalitaPagamento   string `json:"modalita_pagamento" example:"saldo entro 120 giorni"`
	TribunaleCompetente string `json:"tribunale_competente" example:"Tribunale di Milano"`
}

// AnalisiLegaleDoc documents the analisi_legale group.
type AnalisiLegaleDoc struct {
	Completezza490cpc   string   `json:"completezza_490cpc" example:"completo"`
	Criticita           []string `json:"criticita" example:"Manca la planimetria"`
	ElementiAttenzione  []string `json:"elementi_attenzione"`
	ConformitaNormativa string   `json:"conformita_normativa"`
}

// GiudizioDoc documents the giudizio group.
type GiudizioDoc struct {
	LivelloRischio  string `json:"livello_rischio" enums:"BASSO,MEDIO,ALTO" example:"MEDIO"`
	Convenienza     string `json:"convenienza" enums:"ALTA,MEDIA,BASSA" example:"ALTA"`
	Sintesi         string `json:"sintesi"`
	Raccomandazione string `json:"raccomandazione"`
}
