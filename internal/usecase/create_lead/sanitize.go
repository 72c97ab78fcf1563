package create_lead

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
	"github.com/m04kA/SMC-DomesBooking/pkg/ptr"
)

// sanitizedInput текстовые поля после очистки
type sanitizedInput struct {
	fullName    string
	checkInRaw  string
	checkOutRaw string
	notes       *string
	snapshot    json.RawMessage
}

// sanitize обрезает пробелы и длину текстовых полей.
// Превышение длины не ошибка, лишнее молча отбрасывается.
func sanitize(req *Request) sanitizedInput {
	in := sanitizedInput{
		fullName:    sanitizeText(req.FullName, domain.MaxFullNameLength),
		checkInRaw:  sanitizeText(req.CheckInRaw, domain.MaxDateLength),
		checkOutRaw: sanitizeText(req.CheckOutRaw, domain.MaxDateLength),
		snapshot:    normalizeSnapshot(req.AvailabilitySnapshot),
	}

	if notes := sanitizeText(req.Notes, domain.MaxNotesLength); notes != "" {
		in.notes = ptr.Ptr(notes)
	}

	return in
}

// sanitizeText убирает пробелы по краям и обрезает до maxLen символов (рун, не байт)
func sanitizeText(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}

// normalizeSnapshot возвращает nil для пустого снимка и JSON null
func normalizeSnapshot(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	return trimmed
}
