package handlers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-DomesBooking/internal/domain"
)

// GuestCount количество гостей из тела запроса.
// Отсутствующее поле и null дают domain.MinGuests, число берётся как есть,
// строка разбирается как число, true и false дают 1 и 0. Всё остальное
// превращается в NaN и отклоняется валидацией как неверное количество гостей.
type GuestCount float64

// UnmarshalJSON реализует json.Unmarshaler
func (g *GuestCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*g = GuestCount(domain.MinGuests)
		return nil
	case bytes.Equal(data, []byte("true")):
		*g = 1
		return nil
	case bytes.Equal(data, []byte("false")):
		*g = 0
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = parseGuestString(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		*g = GuestCount(math.NaN())
		return nil
	}
	*g = GuestCount(n)
	return nil
}

// Value возвращает количество гостей, подставляя значение по умолчанию для отсутствующего поля
func (g *GuestCount) Value() float64 {
	if g == nil {
		return domain.MinGuests
	}
	return float64(*g)
}

func parseGuestString(s string) GuestCount {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return GuestCount(math.NaN())
	}
	return GuestCount(n)
}
