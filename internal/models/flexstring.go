package models

import (
	"encoding/json"
	"strconv"
)

// FlexString is a string that also accepts a JSON number when decoding.
// The archive scrapers and the OCR extractor are not consistent about
// quoting contest ids and drawn numbers, so every field that crosses that
// boundary uses this type. It always re-encodes as a string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 4 && string(data) == "null" {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Int returns the numeric value, or 0 if the string is not a number.
func (f FlexString) Int() int {
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return 0
	}
	return n
}
