package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var null = []byte("null")

// FlexInt decodes an integer sent either as a JSON number or as a quoted string.
// The hotel API emits both depending on the endpoint.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*i = 0

		return nil
	}

	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		*i = 0

		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s: %w", string(data), err)
	}

	*i = FlexInt(value)

	return nil
}

func (i FlexInt) Int() int {
	return int(i)
}

func (i FlexInt) String() string {
	return strconv.Itoa(int(i))
}

// FlexString decodes a string that may arrive as a bare JSON number, e.g. room "101" or 101.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, null) {
		*s = ""

		return nil
	}

	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("invalid string %s: %w", string(data), err)
		}

		*s = FlexString(value)

		return nil
	}

	*s = FlexString(string(data))

	return nil
}

func (s FlexString) String() string {
	return string(s)
}
