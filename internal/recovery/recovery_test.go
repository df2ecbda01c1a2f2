package recovery

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexasta/internal/config"
	"lexasta/internal/domain"
)

type failingSource struct{}

func (failingSource) Open() (io.ReadCloser, error) { return nil, errors.New("disk gone") }

func newRecoverer() *Recoverer {
	return New(config.RecoveryConfig{MinLineLength: 8, MinTextChars: 100}, nil)
}

func doc(name string, data []byte) domain.Document {
	kind, _ := domain.KindForName(name)
	return domain.Document{Name: name, Kind: kind, Source: domain.BytesSource(data)}
}

func TestRecover_PlainTextIsVerbatim(t *testing.T) {
	text := "Tribunale di Milano\nR.G.E. 123/2024\n  città  "
	got, err := newRecoverer().Recover(context.Background(), doc("avviso.txt", []byte(text)))
	require.NoError(t, err)
	assert.Equal(t, text, got.Text)
	assert.False(t, got.IsImage())
}

func TestRecover_ImageIsBase64Payload(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}
	got, err := newRecoverer().Recover(context.Background(), doc("scan.PNG", data))
	require.NoError(t, err)
	require.NotNil(t, got.Image)
	assert.Equal(t, "image/png", got.Image.MediaType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), got.Image.Data)

	got, err = newRecoverer().Recover(context.Background(), doc("foto.jpg", data))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", got.Image.MediaType)
}

func TestRecover_OpaqueBinaryScrapesText(t *testing.T) {
	var b strings.Builder
	b.WriteString("%PDF-1.4\x00\x01\x02\n")
	b.WriteString("AVVISO DI VENDITA IMMOBILIARE\x00\n")
	b.WriteString("12345678901234\n")
	b.WriteString("Tribunale di Milano      sezione esecuzioni immobiliari\n")
	b.WriteString("Prezzo base euro 150.000,00 offerta minima euro 112.500,00\n")
	b.WriteString("\xff\xfe\xfd\n")

	got, err := newRecoverer().Recover(context.Background(), doc("perizia.pdf", []byte(b.String())))
	require.NoError(t, err)

	assert.Equal(t,
		"AVVISO DI VENDITA IMMOBILIARE\nTribunale di Milano sezione esecuzioni immobiliari\n"+
			"Prezzo base euro 150.000,00 offerta minima euro 112.500,00",
		got.Text)
}

func TestRecover_ShortScrapeYieldsPlaceholder(t *testing.T) {
	got, err := newRecoverer().Recover(context.Background(), doc("atto.docx", []byte("\x00\x01 breve testo letto \x02")))
	require.NoError(t, err)
	assert.Equal(t, Unreadable("atto.docx"), got.Text)
	assert.Equal(t, "[Testo non estraibile da atto.docx: fornisci il contenuto come .txt]", got.Text)
}

func TestRecover_ReadErrors(t *testing.T) {
	d := domain.Document{Name: "x.txt", Kind: domain.KindPlainText, Source: failingSource{}}
	_, err := newRecoverer().Recover(context.Background(), d)

	var readErr *domain.ReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, "x.txt", readErr.Document)

	_, err = newRecoverer().Recover(context.Background(), domain.Document{Name: "y.txt"})
	assert.ErrorAs(t, err, &readErr)
}

func TestScrapeBinary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"drops short lines", "abcdefgh\nabcdefghi", "abcdefghi"},
		{"needs three letters in a row", "12 ab 34 cd 56 ef\nab1cd2ef3gh4\nabc 123 456 789", "abc 123 456 789"},
		{"trimmed length counts", "     abcd     \nlunga riga valida", "lunga riga valida"},
		{"collapses whitespace runs", "uno   due      tre quattro", "uno due tre quattro"},
		{"control bytes are dropped", "uno\tdue tre\x00 quattro", "unodue tre quattro"},
		{"two spaces survive", "uno  due tre quattro", "uno  due tre quattro"},
		{"nothing usable", "\x00\x01\x02", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrapeBinary([]byte(tt.in), 8))
		})
	}
}
