package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Rupiah is an amount as sent by the API. Decimal columns arrive either
// as JSON numbers or as strings ("150000.00").
type Rupiah float64

func (r *Rupiah) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = 0
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*r = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*r = Rupiah(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*r = Rupiah(f)
	return nil
}

func (r Rupiah) IsFree() bool {
	return r <= 0
}
