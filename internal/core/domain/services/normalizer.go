package services

import (
	"strings"
	"unicode"

	"depot/internal/core/domain/model/kernel"
)

// Normalizer rewrites postal codes and addresses into the form the depot stores.
// It is safe for concurrent use.
//
// Example:
//
//	n := services.NewNormalizer(kernel.ElliotLake())
//	n.NormalizePostal("2s9")             // "P5A 2S9"
//	n.NormalizeAddress("12 Main St", "") // "12 Main St, Elliot Lake, ON"
type Normalizer struct {
	region kernel.Region
}

// NewNormalizer binds a normalizer to region.
func NewNormalizer(region kernel.Region) Normalizer {
	return Normalizer{region: region}
}

// Region returns the region the normalizer fills in.
func (n Normalizer) Region() kernel.Region {
	return n.region
}

// NormalizePostal canonicalizes a Canadian postal code:
//   - empty input yields the region prefix alone
//   - whitespace is removed and letters uppercased
//   - 3 characters are treated as the local half and prefixed: "2S9" -> "P5A 2S9"
//   - 6 characters get a space after the third: "P5A2S9" -> "P5A 2S9"
//   - anything else is returned stripped, never rejected
func (n Normalizer) NormalizePostal(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return n.region.PostalPrefix()
	}

	code := strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))

	switch len(code) {
	case 3:
		return n.region.PostalPrefix() + " " + code
	case 6:
		return code[:3] + " " + code[3:]
	default:
		return code
	}
}

// NormalizeAddress appends the missing locality to a street address.
// The city is recognized under any of its configured spellings, the province
// as ", <code>" or ", <name>", both case-insensitively.
//
// postal does not influence the result; callers pass it so the signature can grow
// region selection by postal prefix without changing call sites.
func (n Normalizer) NormalizeAddress(raw, postal string) string {
	address := strings.TrimSpace(raw)
	if address == "" {
		return n.region.Locality()
	}

	lower := strings.ToLower(address)
	hasCity := false
	for _, city := range n.region.CityNames() {
		if strings.Contains(lower, strings.ToLower(city)) {
			hasCity = true
			break
		}
	}

	hasProvince := strings.Contains(lower, ", "+strings.ToLower(n.region.ProvinceCode()))
	if name := n.region.ProvinceName(); name != "" && strings.Contains(lower, ", "+strings.ToLower(name)) {
		hasProvince = true
	}

	switch {
	case !hasCity && !hasProvince:
		return address + ", " + n.region.Locality()
	case hasCity && !hasProvince:
		return address + ", " + n.region.ProvinceCode()
	default:
		return address
	}
}

// StreetOf returns the part of an address before the first comma.
func StreetOf(address string) string {
	street, _, _ := strings.Cut(address, ",")
	return strings.TrimSpace(street)
}
