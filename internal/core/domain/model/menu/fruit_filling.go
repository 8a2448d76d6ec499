package menu

import (
	"fmt"
	"strings"

	"pointofsale/internal/pkg/errs"
)

// FruitFilling is the fruit baked into a Cobbler.
//
// The zero value is Cherry, which is the filling of a freshly started Cobbler.
type FruitFilling int

const (
	Cherry FruitFilling = iota
	Blueberry
	Peach
)

// getFruitFillingStrings returns the display names of the valid fillings.
func getFruitFillingStrings() map[FruitFilling]string {
	return map[FruitFilling]string{
		Cherry:    "Cherry",
		Blueberry: "Blueberry",
		Peach:     "Peach",
	}
}

// FruitFillings returns every filling in declaration order.
func FruitFillings() []FruitFilling {
	return []FruitFilling{Cherry, Blueberry, Peach}
}

// ParseFruitFilling maps a display name to its filling. Matching ignores case
// and surrounding whitespace.
//
//	fruit, err := menu.ParseFruitFilling("peach") // Peach, nil
func ParseFruitFilling(s string) (FruitFilling, error) {
	name := strings.TrimSpace(s)
	for fruit, str := range getFruitFillingStrings() {
		if strings.EqualFold(str, name) {
			return fruit, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("fruit filling is invalid", fmt.Errorf("%q is not a fruit filling", s))
}

// Validate reports values outside the closed set of fillings. It is used for
// values arriving from storage or transport, not by the Cobbler setters.
func (f FruitFilling) Validate() error {
	if _, ok := getFruitFillingStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fruit filling is invalid", fmt.Errorf("%d is not a fruit filling", f))
	}
	return nil
}

// String returns the display name, or "Unknown" for values outside the set.
func (f FruitFilling) String() string {
	if str, ok := getFruitFillingStrings()[f]; ok {
		return str
	}
	return "Unknown"
}
