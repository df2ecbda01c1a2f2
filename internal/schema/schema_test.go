package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		text  string
	}{
		{"null", `null`, KindNull, ""},
		{"empty string is null", `""`, KindNull, ""},
		{"blank string is null", `"   "`, KindNull, ""},
		{"string", `"Tribunale di Milano"`, KindScalar, "Tribunale di Milano"},
		{"number keeps literal", `150000.50`, KindScalar, "150000.50"},
		{"bool", `true`, KindScalar, "true"},
		{"list", `["a", "", "b"]`, KindList, "a|b"},
		{"empty list", `[]`, KindList, ""},
		{"list with numbers", `[1, "x"]`, KindList, "1|x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Value
			require.NoError(t, json.Unmarshal([]byte(tt.input), &v))
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.text, v.Text("|"))
		})
	}
}

func TestValue_UnmarshalJSON_RejectsObjects(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`[{"a":1}]`), &v))
}

func TestValue_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A Value `json:"a"`
		B Value `json:"b"`
		C Value `json:"c"`
		D Value `json:"d"`
	}{Null(), Scalar("x"), List("p", "q"), List()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":null,"b":"x","c":["p","q"],"d":[]}`, string(b))
}

func TestRecord_NormalizeProducesEveryLeafAsNull(t *testing.T) {
	var r Record
	r.Normalize()

	b, err := json.Marshal(&r)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	proc, ok := m["procedura"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, proc, "tribunale")
	assert.Nil(t, proc["tribunale"])
	assert.Contains(t, m, "rischi")
	assert.Nil(t, m["rischi"])

	sale := m["modalita_vendita"].(map[string]any)
	assert.Contains(t, sale, "tribunale_competente")
}

func TestRecord_LeavesEnumeratesWholeShape(t *testing.T) {
	leaves := (&Record{}).Leaves()

	// 6 + 9 + 7 + 5 + 6 + 4 + 4 group leaves, 4 top-level leaves.
	assert.Len(t, leaves, 45)
	assert.Equal(t, "procedura.tipo", leaves[0].Path)
	assert.Equal(t, "spese_stimate", leaves[len(leaves)-1].Path)
	for _, l := range leaves {
		assert.True(t, l.Value.IsNull(), l.Path)
	}
}

func TestRecord_CloneIsDeep(t *testing.T) {
	orig := &Record{
		LegalAnalysis: &LegalAnalysis{CriticalIssues: List("a")},
		Encumbrances:  &Encumbrances{Mortgages: List("ipoteca 1")},
		Risks:         List("r1"),
	}
	c := orig.Clone()
	c.Risks = List("changed")
	c.LegalAnalysis.CriticalIssues = Scalar("x")
	c.Encumbrances.Mortgages.list[0] = "mutated"

	assert.Equal(t, []string{"r1"}, orig.Risks.Items())
	assert.True(t, orig.LegalAnalysis.CriticalIssues.IsList())
	assert.Equal(t, []string{"ipoteca 1"}, orig.Encumbrances.Mortgages.Items())
	assert.Nil(t, c.Procedure)
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
}

func TestExtractJSON(t *testing.T) {
	body, err := ExtractJSON("Ecco il JSON:\n```json\n{\"procedura\":{}}\n```\nFine.")
	require.NoError(t, err)
	assert.Equal(t, `{"procedura":{}}`, body)

	_, err = ExtractJSON("nessun json qui")
	assert.ErrorIs(t, err, ErrNoJSONObject)
}

func TestDecode_Success(t *testing.T) {
	raw := "```json\n" + `{
		"procedura": {"tribunale": "Tribunale di Milano", "rge": 123},
		"immobile": null,
		"rischi": ["occupante moroso"],
		"giudizio": {"livello_rischio": " medio ", "convenienza": "ALTA"}
	}` + "\n```"

	rec, err := Decode(raw, nil)
	require.NoError(t, err)

	assert.Equal(t, "Tribunale di Milano", rec.Procedure.Court.String())
	assert.Equal(t, "123", rec.Procedure.CaseNumber.String())
	require.NotNil(t, rec.Property)
	assert.True(t, rec.Property.Location.IsNull())
	assert.Equal(t, []string{"occupante moroso"}, rec.Risks.Items())
	assert.Equal(t, RiskMedium, rec.Verdict.RiskLevel.String())
	assert.Equal(t, AttractivenessHigh, rec.Verdict.Attractiveness.String())
	assert.True(t, rec.Opportunities.IsNull())
}

func TestDecode_UnknownVerdictLevelBecomesNull(t *testing.T) {
	rec, err := Decode(`{"giudizio": {"livello_rischio": "MEDIO-ALTO", "sintesi": "ok"}}`, nil)
	require.NoError(t, err)

	assert.True(t, rec.Verdict.RiskLevel.IsNull())
	assert.Equal(t, "ok", rec.Verdict.Synthesis.String())
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "mi dispiace, non posso"},
		{"truncated", `{"procedura": {"tribunale": "Mil`},
		{"group is a string", `{"procedura": "Tribunale di Milano"}`},
		{"leaf is an object", `{"procedura": {"tribunale": {"nome": "Milano"}}}`},
		{"array of records", `[{"procedura": {"tribunale": "Tribunale di Milano"}}, {"procedura": {"tribunale": "Tribunale di Roma"}}]`},
		{"concatenated records", "{\"procedura\": {\"tribunale\": \"Tribunale di Milano\"}}\n{\"procedura\": {\"tribunale\": \"Tribunale di Roma\"}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := Decode(tt.raw, nil)
			assert.Error(t, err)
			assert.Nil(t, rec)
		})
	}
}

func TestDecode_RejectsSecondValue(t *testing.T) {
	_, err := Decode("```json\n{\"procedura\": {\"rge\": \"12/2024\"}}{\"procedura\": {\"rge\": \"99/2023\"}}\n```", nil)
	assert.ErrorIs(t, err, ErrMultipleValues)
}

func TestRecordSchema_CoversEveryGroup(t *testing.T) {
	s := RecordSchema()
	props := s["properties"].(map[string]any)
	for _, key := range []string{GroupProcedure, GroupProperty, GroupFinancials, GroupEncumbrances,
		GroupSaleTerms, GroupLegalAnalysis, GroupVerdict, "rischi", "opportunita",
		"valutazione_economica", "spese_stimate"} {
		assert.Contains(t, props, key)
	}
}

func TestSkeleton_IsValidTemplate(t *testing.T) {
	sk := Skeleton()
	require.True(t, json.Valid([]byte(sk)), sk)
	assert.Contains(t, sk, `"criticita": ["...", "..."]`)
	assert.Contains(t, sk, `"livello_rischio": "BASSO | MEDIO | ALTO"`)

	rec, err := Decode(sk, nil)
	require.NoError(t, err)
	assert.True(t, rec.Verdict.RiskLevel.IsNull())
	assert.True(t, rec.Risks.IsList())
	assert.True(t, IsListLeaf("rischi"))
	assert.False(t, IsListLeaf("procedura.tribunale"))
}
