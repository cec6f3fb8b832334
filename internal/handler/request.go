package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Numeric and boolean body fields accept JSON scalars and their string forms.

var jsonNull = []byte("null")

// flexInt decodes 7, "7" and null (as 0).
type flexInt int64

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not an integer", s)
	}
	*f = flexInt(n)
	return nil
}

// flexBool decodes true/false, 1/0 and their string forms. null is false.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "", "false", "0":
		*f = false
	case "true", "1":
		*f = true
	default:
		return fmt.Errorf("%q is not a boolean", s)
	}
	return nil
}

// flexString decodes strings and bare numbers, keeping the digits verbatim.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	s, err := scalarText(data)
	if err != nil {
		return err
	}
	*f = flexString(s)
	return nil
}

// scalarText returns the text of a JSON string, number or boolean.
// null yields "".
func scalarText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, jsonNull) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		return "", fmt.Errorf("expected a scalar value, got %s", data[:1])
	}
	return string(data), nil
}

// programRequest is the body of POST /programs.
type programRequest struct {
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	Description *string  `json:"description"`
	StartDate   string   `json:"start_date"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Repeats     flexBool `json:"repeats"`
	RepeatType  *string  `json:"repeat_type"`
}

// registrationRequest is the body of POST /register.
type registrationRequest struct {
	ProgramID    flexInt `json:"program_id"`
	FullName     string  `json:"full_name"`
	Age          flexInt `json:"age"`
	SpecialNotes *string `json:"special_notes"`
}

// paymentRequest is the body of POST /pay.
type paymentRequest struct {
	registrationRequest
	CardNumber flexString `json:"card_number"`
	Expiration flexString `json:"expiration"`
	CVV        flexString `json:"cvv"`
}
