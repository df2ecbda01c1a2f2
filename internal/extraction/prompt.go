package extraction

import (
	"fmt"

	"lexasta/internal/schema"
)

// SystemPrompt returns the instructions sent with every extraction call.
func SystemPrompt() string {
	return `Sei un avvocato esperto in diritto immobiliare ed esecuzioni forzate con 20 anni di esperienza nell'analisi di procedure esecutive immobiliari.

Analizza l'avviso di vendita immobiliare fornito e restituisci un JSON strutturato con la seguente forma ESATTA (usa null per dati mancanti, mai stringhe vuote):

` + schema.Skeleton() + `

Regole:
- usa un tono professionale e tecnico;
- elenca rischi e opportunita concreti, riferiti al documento;
- "livello_rischio" e "convenienza" devono usare esclusivamente i valori indicati.

Restituisci SOLO il JSON valido, senza markdown, senza commenti, senza testo aggiuntivo.`
}

// TextPrompt returns the user prompt for a text document, truncating the
// text to maxChars runes.
func TextPrompt(filename, text string, maxChars int) string {
	return fmt.Sprintf("Analizza il seguente avviso di vendita immobiliare (file: %s):\n\n%s",
		filename, truncateRunes(text, maxChars))
}

// ImagePrompt returns the instruction that accompanies an image document.
func ImagePrompt(filename string) string {
	return fmt.Sprintf("Analizza questo avviso di vendita immobiliare (file: %s).", filename)
}

func truncateRunes(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	return string(r[:maxChars])
}
