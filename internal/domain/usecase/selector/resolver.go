package selector

import (
	"regexp"
	"strings"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
	"bdmep-api/pkg/util/textutils"
)

var (
	attributeCodePattern = regexp.MustCompile(`^[Ii]\d{3}$`)
	stationCodePattern   = regexp.MustCompile(`^[A-Za-z]\d{3}$`)
	// city letters and spaces, an optional separator, then the state
	cityStatePattern = regexp.MustCompile(`(?i)^([ a-z]+)[^a-z]?([a-z]{2})$`)
)

// ResolveAttributeCodes resolves selectors against an attribute catalog snapshot.
//
// Each selector is tried, in order, as an attribute code present in the catalog, as an alias of
// the frequency and station type, and as a description compared case-insensitively. The first
// selector that matches nothing stops the resolution with ErrUnresolvedSelector.
func ResolveAttributeCodes(catalog []entity.Attribute, frequency entity.Frequency, stationType entity.StationType, selector entity.Selector) ([]string, error) {
	if selector.IsAll() {
		codes := make([]string, 0, len(catalog))
		for _, a := range catalog {
			codes = append(codes, a.Code)
		}
		return codes, nil
	}

	byCode := make(map[string]bool, len(catalog))
	for _, a := range catalog {
		byCode[strings.ToUpper(a.Code)] = true
	}

	codes := make([]string, 0, len(selector.Items()))
	for _, item := range selector.Items() {
		code, ok := resolveAttribute(item, catalog, byCode, frequency, stationType)
		if !ok {
			return nil, model.NewUnresolvedSelector(model.CatalogAttributes, item)
		}
		codes = append(codes, code)
	}
	return dedupe(codes), nil
}

func resolveAttribute(item string, catalog []entity.Attribute, byCode map[string]bool, frequency entity.Frequency, stationType entity.StationType) (string, bool) {
	trimmed := strings.TrimSpace(item)

	if attributeCodePattern.MatchString(trimmed) {
		if code := strings.ToUpper(trimmed); byCode[code] {
			return code, true
		}
	}

	if code, ok := entity.LookupAliasCode(trimmed, frequency, stationType); ok {
		return code, true
	}

	for _, a := range catalog {
		if strings.EqualFold(strings.TrimSpace(a.Description), trimmed) {
			return a.Code, true
		}
	}
	return "", false
}

// ResolveStationCodes resolves selectors against a station catalog snapshot.
//
// A selector is either a station code, which must exist in the catalog, or "City ST" with an
// optional separator. City names are compared upper case with diacritics removed and may match
// several stations. Anything else is ErrInvalidSelectorFormat.
func ResolveStationCodes(catalog []entity.Station, selector entity.Selector) ([]string, error) {
	if selector.IsAll() {
		codes := make([]string, 0, len(catalog))
		for _, s := range catalog {
			codes = append(codes, s.Code)
		}
		return codes, nil
	}

	codes := make([]string, 0, len(selector.Items()))
	for _, item := range selector.Items() {
		matched, err := resolveStation(item, catalog)
		if err != nil {
			return nil, err
		}
		codes = append(codes, matched...)
	}
	return dedupe(codes), nil
}

func resolveStation(item string, catalog []entity.Station) ([]string, error) {
	trimmed := strings.TrimSpace(item)

	if stationCodePattern.MatchString(trimmed) {
		code := strings.ToUpper(trimmed)
		for _, s := range catalog {
			if strings.ToUpper(s.Code) == code {
				return []string{code}, nil
			}
		}
		return nil, model.NewUnresolvedSelector(model.CatalogStations, item)
	}

	match := cityStatePattern.FindStringSubmatch(textutils.StripDiacritics(trimmed))
	if match == nil {
		return nil, model.NewInvalidSelectorFormat(model.CatalogStations, item)
	}

	city := textutils.FoldUpper(match[1])
	state := strings.ToUpper(match[2])

	var codes []string
	for _, s := range catalog {
		if strings.ToUpper(strings.TrimSpace(s.State)) == state && textutils.FoldUpper(s.City) == city {
			codes = append(codes, s.Code)
		}
	}
	if len(codes) == 0 {
		return nil, model.NewUnresolvedSelector(model.CatalogStations, item)
	}
	return codes, nil
}

// dedupe keeps the first occurrence of every code
func dedupe(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	res := codes[:0]
	for _, c := range codes {
		if !seen[c] {
			seen[c] = true
			res = append(res, c)
		}
	}
	return res
}
