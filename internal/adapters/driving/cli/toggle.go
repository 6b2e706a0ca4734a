package cli

import (
	"fmt"
	"strconv"
)

// toggle is a flag that always takes a value: "--lighting 0" and
// "--lighting=false" both work, and unset toggles leave settings alone.
type toggle struct {
	set   bool
	value bool
}

func (t *toggle) String() string {
	if !t.set {
		return ""
	}
	return strconv.FormatBool(t.value)
}

func (t *toggle) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("expected 0, 1, true or false, got %q", s)
	}
	t.set, t.value = true, v
	return nil
}

func (t *toggle) Type() string {
	return "0|1"
}
