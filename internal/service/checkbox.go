package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Checkbox is a submitted form flag. It accepts the browser's "on"/"off" as
// well as anything strconv.ParseBool understands. A nil *Checkbox means the
// field was not submitted.
//
// Browsers send nothing for an unchecked box, so templates clear a flag by
// rendering a hidden "off" input after the checkbox: only the first value of
// a repeated field is bound.
type Checkbox bool

// UnmarshalParam implements gin's binding.BindUnmarshaler.
func (c *Checkbox) UnmarshalParam(param string) error {
	v, err := parseCheckbox(param)
	if err != nil {
		return err
	}
	*c = Checkbox(v)
	return nil
}

// UnmarshalJSON accepts booleans and the same strings as form posts.
func (c *Checkbox) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*c = Checkbox(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("checkbox: %s is not a boolean", data)
	}
	return c.UnmarshalParam(s)
}

func parseCheckbox(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("checkbox: %q is not a boolean", raw)
	}
	return v, nil
}

func checked(v bool) *Checkbox {
	c := Checkbox(v)
	return &c
}

func flagOr(value *Checkbox, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return bool(*value)
}
