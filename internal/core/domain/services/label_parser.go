package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"depot/internal/core/domain/model/parcel"
)

// CourierRule maps label markers to the courier name stored on the parcel.
type CourierRule struct {
	Name    string
	Markers []string
}

// PatternRule is one entry of an ordered regex cascade. Clean post-processes the match.
type PatternRule struct {
	Name    string
	Pattern *regexp.Regexp
	Clean   func(string) string
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// DefaultCourierRules lists the couriers the depot receives from, in priority order.
func DefaultCourierRules() []CourierRule {
	return []CourierRule{
		{Name: "Purolator", Markers: []string{"PUROLATOR"}},
		{Name: "FedEx", Markers: []string{"FEDEX", "FED EX"}},
		{Name: "UPS", Markers: []string{"UPS"}},
		{Name: "Canada Post", Markers: []string{"CANADA POST", "POSTES CANADA"}},
		{Name: "Dragonfly", Markers: []string{"DRAGONFLY"}},
	}
}

// DefaultTrackingRules prefers long digit runs over grouped digits over generic tokens.
func DefaultTrackingRules() []PatternRule {
	return []PatternRule{
		{Name: "digits", Pattern: regexp.MustCompile(`\b[0-9]{12,}\b`), Clean: stripSpaces},
		{Name: "grouped", Pattern: regexp.MustCompile(`\b[0-9]{4}\s?[0-9]{4}\s?[0-9]{4}\b`), Clean: stripSpaces},
		{Name: "alphanumeric", Pattern: regexp.MustCompile(`\b[A-Z0-9]{10,}\b`), Clean: stripSpaces},
	}
}

func DefaultPhoneRules() []PatternRule {
	return []PatternRule{
		{Name: "dashed", Pattern: regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)},
		{Name: "parenthesized", Pattern: regexp.MustCompile(`\(\d{3}\)\s?\d{3}[-.]?\d{4}`)},
	}
}

// DefaultPostalRules match against the uppercased text.
func DefaultPostalRules() []PatternRule {
	return []PatternRule{
		{Name: "canadian", Pattern: regexp.MustCompile(`\b[A-Z][0-9][A-Z]\s?[0-9][A-Z][0-9]\b`), Clean: stripSpaces},
	}
}

// DefaultNameKeywords are structural words that disqualify a line from being the recipient name.
func DefaultNameKeywords() []string {
	return []string{"TRACKING", "DELIVERY", "SHIP", "FROM"}
}

// LabelParser extracts a parcel.Label candidate from OCR text.
// Every field is best effort: Parse never fails and leaves unmatched fields empty.
// Address is not extracted; it comes from the registry or the operator.
type LabelParser struct {
	couriers     []CourierRule
	tracking     []PatternRule
	phones       []PatternRule
	postals      []PatternRule
	nameKeywords []string
}

// NewLabelParser returns a parser with the default rule tables.
func NewLabelParser() LabelParser {
	return NewLabelParserWithRules(
		DefaultCourierRules(),
		DefaultTrackingRules(),
		DefaultPhoneRules(),
		DefaultPostalRules(),
		DefaultNameKeywords(),
	)
}

// NewLabelParserWithRules builds a parser from custom tables. Courier markers are
// always added to the name keywords.
func NewLabelParserWithRules(
	couriers []CourierRule,
	tracking, phones, postals []PatternRule,
	nameKeywords []string,
) LabelParser {
	keywords := make([]string, 0, len(nameKeywords)+len(couriers))
	for _, kw := range nameKeywords {
		keywords = append(keywords, strings.ToUpper(kw))
	}
	for _, c := range couriers {
		for _, m := range c.Markers {
			keywords = append(keywords, strings.ToUpper(m))
		}
	}

	return LabelParser{
		couriers:     couriers,
		tracking:     tracking,
		phones:       phones,
		postals:      postals,
		nameKeywords: keywords,
	}
}

// Parse runs every rule table against text.
func (p LabelParser) Parse(text string) parcel.Label {
	upper := strings.ToUpper(text)

	return parcel.Label{
		Courier:       p.courier(upper),
		RecipientName: p.name(text),
		Tracking:      firstMatch(p.tracking, text),
		Phone:         firstMatch(p.phones, text),
		Postal:        firstMatch(p.postals, upper),
	}
}

func (p LabelParser) courier(upper string) string {
	for _, rule := range p.couriers {
		for _, marker := range rule.Markers {
			if strings.Contains(upper, strings.ToUpper(marker)) {
				return rule.Name
			}
		}
	}
	return ""
}

func (p LabelParser) name(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if p.looksLikeName(line) {
			return line
		}
	}
	return ""
}

func (p LabelParser) looksLikeName(line string) bool {
	length := utf8.RuneCountInString(line)
	if length <= 3 || length >= 50 {
		return false
	}

	letters := 0
	for _, r := range line {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if float64(letters)/float64(length) <= 0.6 {
		return false
	}

	upper := strings.ToUpper(line)
	for _, kw := range p.nameKeywords {
		if strings.Contains(upper, kw) {
			return false
		}
	}
	return true
}

func firstMatch(rules []PatternRule, text string) string {
	for _, rule := range rules {
		m := rule.Pattern.FindString(text)
		if m == "" {
			continue
		}
		if rule.Clean != nil {
			m = rule.Clean(m)
		}
		return m
	}
	return ""
}
