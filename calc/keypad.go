// SPDX-License-Identifier: MIT

package calc

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Keypad keys other than digits.
const (
	KeyClear  = "C"
	KeyEquals = "="
	KeyPoint  = "."
)

// KeypadError is the display shown after a failed evaluation.
const KeypadError = "Error"

const keypadZero = "0"

// Keys lists the keypad buttons in layout order.
var Keys = []string{
	"7", "8", "9", "/",
	"4", "5", "6", "*",
	"1", "2", "3", "-",
	"0", ".", "=", "+",
	"C", "(", ")", "^",
}

// ErrKey is returned by Press for a key that is not on the keypad.
var ErrKey = fmt.Errorf("calc: unknown key: %w", ErrSyntax)

// Keypad is the button-driven calculator. The display starts at "0";
// any key but "." replaces a lone "0", "C" clears, "=" evaluates the
// display and shows the result or "Error". After "Error" the next key
// starts a fresh entry.
type Keypad struct {
	display string
	log     *zap.Logger
}

// NewKeypad returns a cleared Keypad. A nil logger is replaced by zap.NewNop.
func NewKeypad(log *zap.Logger) *Keypad {
	if log == nil {
		log = zap.NewNop()
	}

	return &Keypad{display: keypadZero, log: log}
}

// Display returns the current display text.
func (k *Keypad) Display() string { return k.display }

// Press applies one key and returns the new display.
func (k *Keypad) Press(key string) (string, error) {
	if !isKey(key) {
		return k.display, fmt.Errorf("%q: %w", key, ErrKey)
	}

	switch key {
	case KeyClear:
		k.display = keypadZero
	case KeyEquals:
		v, err := Eval(k.display)
		if err != nil {
			k.log.Debug("keypad evaluation failed", zap.String("expr", k.display), zap.Error(err))
			k.display = KeypadError
			break
		}
		k.display = FormatResult(v)
	default:
		if k.display == KeypadError || (k.display == keypadZero && key != KeyPoint) {
			k.display = key
			break
		}
		k.display += key
	}

	return k.display, nil
}

// PressAll applies every key in seq, which is read one character at a time.
func (k *Keypad) PressAll(seq string) (string, error) {
	for _, r := range strings.Split(seq, "") {
		if _, err := k.Press(r); err != nil {
			return k.display, err
		}
	}

	return k.display, nil
}

func isKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}

	return false
}
