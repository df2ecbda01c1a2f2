package extraction_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexasta/internal/config"
	"lexasta/internal/domain"
	"lexasta/internal/extraction"
	"lexasta/internal/model"
	"lexasta/internal/port"
	"lexasta/mocks"
)

var extractionCfg = config.ExtractionConfig{MaxPromptChars: 15000, MaxTokens: 4096}

const validReply = "```json\n" + `{
  "procedura": {"tipo": "esecuzione immobiliare", "tribunale": "Tribunale di Milano", "rge": "123/2024"},
  "economico": {"prezzo_base_prima_asta": "150.000,00"},
  "rischi": ["occupante moroso"],
  "giudizio": {"livello_rischio": "MEDIO", "convenienza": "ALTA", "sintesi": "Buona occasione"}
}` + "\n```"

func TestExtract_TextDocument(t *testing.T) {
	client := new(mocks.MockModelClient)
	client.On("Complete", mock.Anything, mock.MatchedBy(func(req port.ModelRequest) bool {
		return req.Image == nil &&
			req.MaxTokens == 4096 &&
			strings.Contains(req.System, `"tribunale_competente"`) &&
			strings.HasPrefix(req.Prompt, "Analizza il seguente avviso di vendita immobiliare (file: avviso.txt):\n\n")
	})).Return(&port.ModelResponse{Text: validReply, Model: "claude-opus-4-6"}, nil).Once()

	rec, err := extraction.New(client, extractionCfg, nil).
		Extract(context.Background(), domain.TextContent("Tribunale di Milano ..."), "avviso.txt")

	require.NoError(t, err)
	assert.Equal(t, "Tribunale di Milano", rec.Procedure.Court.String())
	assert.Equal(t, []string{"occupante moroso"}, rec.Risks.Items())
	require.NotNil(t, rec.SaleTerms)
	assert.True(t, rec.SaleTerms.CompetentCourt.IsNull())
	client.AssertNumberOfCalls(t, "Complete", 1)
}

func TestExtract_TruncatesPromptText(t *testing.T) {
	var captured port.ModelRequest
	client := new(mocks.MockModelClient)
	client.On("Complete", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(port.ModelRequest) }).
		Return(&port.ModelResponse{Text: "{}"}, nil)

	long := strings.Repeat("à", 20000)
	_, err := extraction.New(client, extractionCfg, nil).Extract(context.Background(), domain.TextContent(long), "lungo.txt")
	require.NoError(t, err)

	body := strings.TrimPrefix(captured.Prompt, "Analizza il seguente avviso di vendita immobiliare (file: lungo.txt):\n\n")
	assert.Equal(t, 15000, len([]rune(body)))
}

func TestExtract_ImageDocument(t *testing.T) {
	img := &domain.Image{MediaType: "image/png", Data: "QUJD"}
	client := new(mocks.MockModelClient)
	client.On("Complete", mock.Anything, mock.MatchedBy(func(req port.ModelRequest) bool {
		return req.Image == img && req.Prompt == "Analizza questo avviso di vendita immobiliare (file: scan.png)."
	})).Return(&port.ModelResponse{Text: validReply}, nil)

	rec, err := extraction.New(client, extractionCfg, nil).Extract(context.Background(), domain.Content{Image: img}, "scan.png")

	require.NoError(t, err)
	assert.Equal(t, "MEDIO", rec.Verdict.RiskLevel.String())
}

func TestExtract_Failures(t *testing.T) {
	tests := []struct {
		name  string
		reply *port.ModelResponse
		err   error
	}{
		{"model error", nil, &model.ModelError{Provider: "claude", StatusCode: 401, Message: "invalid x-api-key"}},
		{"prose reply", &port.ModelResponse{Text: "Mi dispiace, non riesco ad analizzare il documento."}, nil},
		{"truncated json", &port.ModelResponse{Text: `{"procedura": {"tribunale": "Tri`}, nil},
		{"wrong shape", &port.ModelResponse{Text: `{"rischi": {"uno": "x"}}`}, nil},
		{"two records", &port.ModelResponse{Text: `[{"procedura": {"rge": "1/2024"}}, {"procedura": {"rge": "2/2024"}}]`}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.MockModelClient)
			if tt.err != nil {
				client.On("Complete", mock.Anything, mock.Anything).Return(nil, tt.err).Once()
			} else {
				client.On("Complete", mock.Anything, mock.Anything).Return(tt.reply, nil).Once()
			}

			rec, err := extraction.New(client, extractionCfg, nil).Extract(context.Background(), domain.TextContent("x"), "a.txt")

			assert.Nil(t, rec)
			var exErr *domain.ExtractionError
			require.ErrorAs(t, err, &exErr)
			assert.Equal(t, "a.txt", exErr.Document)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
			}
			client.AssertNumberOfCalls(t, "Complete", 1)
		})
	}
}

func TestExtract_InvalidReplyLogPreservesCharacters(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	reply := strings.Repeat("a", 499) + "è una risposta senza JSON"
	client := new(mocks.MockModelClient)
	client.On("Complete", mock.Anything, mock.Anything).Return(&port.ModelResponse{Text: reply}, nil).Once()

	_, err := extraction.New(client, extractionCfg, log).Extract(context.Background(), domain.TextContent("x"), "a.txt")
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "extraction.invalid_reply")
	assert.Contains(t, out, "aè...")
	assert.NotContains(t, out, `\ufffd`)
}
