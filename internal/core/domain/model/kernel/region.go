package kernel

import (
	"errors"
	"strings"

	"depot/internal/pkg/errs"
)

// ErrRegionIsNotConstructed is returned when a zero-value Region is used.
var ErrRegionIsNotConstructed = errors.New("Region must be created via NewRegion")

// Region describes the depot's locality: the values the normalizer fills in when a label
// omits them. Every recipient lives in the same town, so one Region is configured per process.
type Region struct {
	city         string
	cityAliases  []string
	provinceCode string
	provinceName string
	postalPrefix string

	isConstructed bool
}

// NewRegion builds a Region. city, provinceCode and a three character postalPrefix are required;
// aliases are alternative spellings of city that OCR and operators commonly produce.
func NewRegion(city string, aliases []string, provinceCode, provinceName, postalPrefix string) (Region, error) {
	r := Region{
		city:          strings.TrimSpace(city),
		provinceCode:  strings.ToUpper(strings.TrimSpace(provinceCode)),
		provinceName:  strings.TrimSpace(provinceName),
		postalPrefix:  strings.ToUpper(strings.TrimSpace(postalPrefix)),
		isConstructed: true,
	}

	for _, alias := range aliases {
		if alias = strings.TrimSpace(alias); alias != "" {
			r.cityAliases = append(r.cityAliases, alias)
		}
	}

	var problems []error
	if r.city == "" {
		problems = append(problems, errs.NewValueIsRequiredError("city"))
	}
	if r.provinceCode == "" {
		problems = append(problems, errs.NewValueIsRequiredError("province code"))
	}
	if len(r.postalPrefix) != 3 {
		problems = append(problems, errs.NewValueIsInvalidError("postal prefix"))
	}
	if err := errors.Join(problems...); err != nil {
		return Region{}, err
	}

	return r, nil
}

// ElliotLake is the region the depot was built for.
func ElliotLake() Region {
	r, _ := NewRegion("Elliot Lake", []string{"Elliott Lake"}, "ON", "Ontario", "P5A")
	return r
}

// Validate reports whether the region was built by NewRegion.
func (r Region) Validate() error {
	if !r.isConstructed {
		return ErrRegionIsNotConstructed
	}
	return nil
}

func (r Region) City() string {
	return r.city
}

func (r Region) ProvinceCode() string {
	return r.provinceCode
}

func (r Region) ProvinceName() string {
	return r.provinceName
}

func (r Region) PostalPrefix() string {
	return r.postalPrefix
}

// CityNames returns the city followed by its aliases.
func (r Region) CityNames() []string {
	names := make([]string, 0, len(r.cityAliases)+1)
	names = append(names, r.city)
	return append(names, r.cityAliases...)
}

// Locality renders "<city>, <province code>".
func (r Region) Locality() string {
	return r.city + ", " + r.provinceCode
}
