package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// YearLevel is a student's year of study. The web client posts it as a string
// taken from a <select>, other clients send a number; both decode.
// It matches the INTEGER column, so values outside int32 are rejected.
type YearLevel int32

// UnmarshalJSON accepts 2 and "2"
func (y *YearLevel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*y = 0
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	} else {
		raw = string(data)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*y = 0
		return nil
	}

	n, err := strconv.ParseInt(raw, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("yearlevel is out of range, got %s", raw)
	}
	if err != nil {
		return fmt.Errorf("yearlevel must be a whole number, got %q", raw)
	}
	*y = YearLevel(n)
	return nil
}
