package agent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Intent is a coarse classification of a user message, used only when
// the LLM is unreachable and the agent falls back to direct tool
// routing.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentIncomeTax
	IntentCompoundInterest
	IntentPercentage
	IntentPaperSearch
	IntentWebSearch
)

// Keyword tables for intent detection. Matching is done on the
// lowercased message, most specific intent first.
var intentKeywords = []struct {
	intent Intent
	terms  []string
}{
	{IntentIncomeTax, []string{"imposto de renda", "calcular ir", "ir de", "irpf"}},
	{IntentCompoundInterest, []string{"juros compostos", "juros simples", "montante", "compound interest"}},
	{IntentPercentage, []string{"% de", "porcent", "percentual"}},
	{IntentPaperSearch, []string{"artigos científicos", "artigos cientificos", "papers", "arxiv", "pesquisa acadêmica"}},
	{IntentWebSearch, []string{"busque na web", "pesquise na internet", "notícias", "noticias", "cotação", "cotacao"}},
}

// DetectIntent classifies a user message by keyword.
func DetectIntent(message string) Intent {
	lower := strings.ToLower(message)
	for _, entry := range intentKeywords {
		for _, term := range entry.terms {
			if strings.Contains(lower, term) {
				return entry.intent
			}
		}
	}
	return IntentUnknown
}

var (
	moneyRe   = regexp.MustCompile(`R?\$?\s*([\d.,]+)`)
	percentRe = regexp.MustCompile(`([\d.,]+)\s*%`)
	periodRe  = regexp.MustCompile(`(?i)(\d+)\s*(anos?|meses?|dias?|years?|months?)`)
)

// ExtractedValues holds the numbers pulled out of a natural-language
// message in Brazilian notation ("R$ 10.000,50", "8,5%", "5 anos").
type ExtractedValues struct {
	Money      float64
	HasMoney   bool
	Percent    float64
	HasPercent bool
	Periods    int
	HasPeriods bool
}

// ExtractValues scans a message for a monetary amount, a percentage and
// a period count. Percent and period matches are removed from the money
// scan so "15% de 10.000" does not read 15 as the amount and "18 meses"
// does not read 18.
func ExtractValues(message string) ExtractedValues {
	var v ExtractedValues

	if m := percentRe.FindStringSubmatch(message); m != nil {
		if f, err := parseBRLNumber(m[1]); err == nil {
			v.Percent = f
			v.HasPercent = true
		}
	}

	moneyText := periodRe.ReplaceAllString(percentRe.ReplaceAllString(message, ""), "")
	if m := moneyRe.FindStringSubmatch(moneyText); m != nil {
		if f, err := parseBRLNumber(m[1]); err == nil {
			v.Money = f
			v.HasMoney = true
		}
	}

	if m := periodRe.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			v.Periods = n
			v.HasPeriods = true
		}
	}

	return v
}

// parseBRLNumber converts Brazilian number notation to a float:
// "10.000,50" becomes 10000.50. A value with no comma keeps a single
// dot as the decimal separator ("0.5"), since "10.000" style thousands
// always pair with a comma decimal or a round value.
func parseBRLNumber(s string) (float64, error) {
	s = strings.TrimSpace(strings.Trim(s, ".,"))
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if strings.Count(s, ".") > 1 || isThousandsOnly(s) {
		s = strings.ReplaceAll(s, ".", "")
	}

	return strconv.ParseFloat(s, 64)
}

// isThousandsOnly reports whether a dotted number like "10.000" is a
// thousands grouping rather than a decimal ("10.5" is not).
func isThousandsOnly(s string) bool {
	i := strings.LastIndex(s, ".")
	return i >= 0 && len(s)-i-1 == 3
}
