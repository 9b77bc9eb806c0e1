package entity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Decimal is a numeric value carried as its decimal string form so that
// prices survive the JSON -> postgres numeric round trip without float
// precision loss. It accepts both number and string JSON forms and always
// marshals as a string.
type Decimal string

func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*d = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*d = Decimal(strings.TrimSpace(str))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*d = Decimal(n.String())
	return nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// IsZero reports whether the value is absent or numerically zero.
// Unparseable values count as non-zero; they fail later at the database
// boundary instead of the validation step.
func (d Decimal) IsZero() bool {
	if d == "" {
		return true
	}
	f, err := strconv.ParseFloat(string(d), 64)
	if err != nil {
		return false
	}
	return f == 0
}

func (d Decimal) String() string { return string(d) }
