// Package words spells out monetary amounts in Bulgarian, as required
// on printed invoices ("словом" line).
package words

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency carries the spelled-out nouns for a currency. The nouns are
// explicit parameters rather than being pattern-matched out of the
// result, so switching the base currency cannot corrupt the phrase.
// The One forms are the singular nouns used when the respective part
// is exactly 1 ("един лев", "една стотинка").
type Currency struct {
	Unit       string
	UnitOne    string
	Subunit    string
	SubunitOne string
	// SubunitFeminine selects "една/две" over "един/два" for the
	// fractional clause (стотинки are feminine, цента are not).
	SubunitFeminine bool
}

// Predefined currencies
var (
	EUR = Currency{Unit: "евро", UnitOne: "евро", Subunit: "цента", SubunitOne: "цент"}
	BGN = Currency{Unit: "лева", UnitOne: "лев", Subunit: "стотинки", SubunitOne: "стотинка", SubunitFeminine: true}
)

var units = []string{"нула", "един", "два", "три", "четири", "пет", "шест", "седем", "осем", "девет"}

// 1 and 2 take the feminine form before "хиляди"
var unitsFeminine = []string{"нула", "една", "две", "три", "четири", "пет", "шест", "седем", "осем", "девет"}

var teens = []string{
	"десет", "единадесет", "дванадесет", "тринадесет", "четиринадесет",
	"петнадесет", "шестнадесет", "седемнадесет", "осемнадесет", "деветнадесет",
}

var tens = []string{
	"", "", "двадесет", "тридесет", "четиридесет",
	"петдесет", "шестдесет", "седемдесет", "осемдесет", "деветдесет",
}

var hundreds = []string{
	"", "сто", "двеста", "триста", "четиристотин",
	"петстотин", "шестстотин", "седемстотин", "осемстотин", "деветстотин",
}

// Amount spells out a non-negative amount with its currency nouns, e.g.
// 1234.56 EUR -> "хиляда двеста тридесет и четири евро и петдесет и
// шест цента". Values of a billion or more are beyond invoice range and
// are rendered as digits.
func Amount(d decimal.Decimal, c Currency) string {
	if d.IsNegative() {
		d = d.Abs()
	}
	d = d.Round(2)

	whole := d.IntPart()
	cents := d.Sub(decimal.NewFromInt(whole)).Mul(decimal.NewFromInt(100)).IntPart()

	if whole >= 1_000_000_000 {
		return d.StringFixed(2) + " " + c.Unit
	}

	unit := c.Unit
	if whole == 1 && c.UnitOne != "" {
		unit = c.UnitOne
	}
	phrase := Cardinal(whole) + " " + unit

	if cents > 0 {
		sub := c.Subunit
		if cents == 1 && c.SubunitOne != "" {
			sub = c.SubunitOne
		}
		phrase += " и " + underThousand(cents, c.SubunitFeminine) + " " + sub
	}
	return phrase
}

// Cardinal spells out a non-negative integer below one billion.
func Cardinal(n int64) string {
	if n == 0 {
		return units[0]
	}

	var groups []string

	if m := n / 1_000_000; m > 0 {
		if m == 1 {
			groups = append(groups, "един милион")
		} else {
			groups = append(groups, underThousand(m, false)+" милиона")
		}
		n %= 1_000_000
	}

	if k := n / 1000; k > 0 {
		if k == 1 {
			groups = append(groups, "хиляда")
		} else {
			groups = append(groups, underThousand(k, true)+" хиляди")
		}
		n %= 1000
	}

	if n > 0 {
		rest := underThousand(n, false)
		// "хиляда и сто" but "хиляда двеста тридесет и четири": the
		// connective goes before the final group only when that group
		// does not already carry one.
		if len(groups) > 0 && !strings.Contains(rest, " и ") {
			return strings.Join(groups, " ") + " и " + rest
		}
		groups = append(groups, rest)
	}

	return strings.Join(groups, " ")
}

// underThousand spells 1..999. The connective "и" precedes the last
// word when the number decomposes into more than one: "сто и пет",
// "сто двадесет и пет".
func underThousand(n int64, feminine bool) string {
	var parts []string

	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
		n %= 100
	}

	switch {
	case n == 0:
	case n < 10:
		if feminine {
			parts = append(parts, unitsFeminine[n])
		} else {
			parts = append(parts, units[n])
		}
	case n < 20:
		parts = append(parts, teens[n-10])
	default:
		parts = append(parts, tens[n/10])
		if u := n % 10; u > 0 {
			if feminine {
				parts = append(parts, unitsFeminine[u])
			} else {
				parts = append(parts, units[u])
			}
		}
	}

	if len(parts) > 1 {
		return strings.Join(parts[:len(parts)-1], " ") + " и " + parts[len(parts)-1]
	}
	return parts[0]
}
