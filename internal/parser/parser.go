// Package parser extracts candidate transactions from bank notification
// text. It is a best-effort classifier over free-form message formats:
// false negatives are expected, faults are not.
package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/model"
)

// Candidate is a parser-produced tentative record. It carries only what the
// message itself says; admission to the ledger fills in the rest.
type Candidate struct {
	Amount   decimal.Decimal
	Merchant string // title-cased hint, never empty
	IsCredit bool
}

// Fallback merchant labels used when the message names no counterparty.
const (
	fallbackDebit  = "Bank UPI"
	fallbackCredit = "Bank Alert"
)

// amountPattern matches a currency marker (Rs, Rs., INR or the rupee sign)
// followed by a numeral group with optional thousands separators and an
// optional two-digit decimal part. The numeral is required: a bare currency
// mention does not match.
var amountPattern = regexp.MustCompile(`(?i)(?:\bRs\.?|\bINR|₹)\s*(\d+(?:,\d+)*(?:\.\d{2})?)`)

// Parse scans text for a transaction. The second return value is false when
// no amount pattern is found or the matched numeral fails to parse; both are
// normal outcomes, not errors.
func Parse(text string) (Candidate, bool) {
	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return Candidate{}, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil || amount.IsNegative() {
		// Malformed numeral: treat as a parse miss.
		return Candidate{}, false
	}

	isCredit := classifyDirection(text)

	return Candidate{
		Amount:   amount,
		Merchant: merchantHint(text, isCredit),
		IsCredit: isCredit,
	}, true
}

func classifyDirection(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "credited") || strings.Contains(lower, "received")
}

// merchantHint takes the token following the first "at " in the text, or a
// fixed fallback label when there is none.
func merchantHint(text string, isCredit bool) string {
	fallback := fallbackDebit
	if isCredit {
		fallback = fallbackCredit
	}

	idx := strings.Index(text, "at ")
	if idx < 0 {
		return fallback
	}

	rest := text[idx+len("at "):]
	token := rest
	if end := strings.IndexFunc(rest, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }); end >= 0 {
		token = rest[:end]
	}
	token = strings.Trim(token, ".,;:!")
	if token == "" {
		return fallback
	}
	return model.TitleMerchant(token)
}
