package entity

import "sort"

// AttributeAlias is one row of the alias table.
type AttributeAlias struct {
	Code        string      `json:"code"`
	Alias       string      `json:"alias"`
	Frequency   Frequency   `json:"frequency"`
	StationType StationType `json:"stationType"`
}

// AliasFilter selects alias table rows. Empty fields match anything.
type AliasFilter struct {
	Frequency   Frequency
	StationType StationType
	Alias       string
	Code        string
}

// aliasTable is closed: aliases only exist for automatic stations.
var aliasTable = []AttributeAlias{
	{"I175", "rain", Hourly, Automatic},
	{"I106", "P_mean", Hourly, Automatic},
	{"I615", "P_max", Hourly, Automatic},
	{"I616", "P_min", Hourly, Automatic},
	{"I101", "T_mean", Hourly, Automatic},
	{"I611", "T_max", Hourly, Automatic},
	{"I612", "T_min", Hourly, Automatic},
	{"I133", "R_s", Hourly, Automatic},
	{"I105", "RH_mean", Hourly, Automatic},
	{"I617", "RH_max", Hourly, Automatic},
	{"I618", "RH_min", Hourly, Automatic},
	{"I111", "U_mean", Hourly, Automatic},
	{"I608", "U_max", Hourly, Automatic},

	{"I006", "rain", Daily, Automatic},
	{"I109", "P_mean", Daily, Automatic},
	{"I104", "T_mean", Daily, Automatic},
	{"I007", "T_max", Daily, Automatic},
	{"I008", "T_min", Daily, Automatic},
	{"I120", "RH_mean", Daily, Automatic},
	{"I256", "RH_min", Daily, Automatic},
	{"I009", "U_mean", Daily, Automatic},
	{"I621", "U_max", Daily, Automatic},

	{"I230", "days_raining", Monthly, Automatic},
	{"I209", "rain", Monthly, Automatic},
	{"I219", "P_mean", Monthly, Automatic},
	{"I220", "T_mean", Monthly, Automatic},
	{"I218", "U_mean", Monthly, Automatic},
	{"I221", "U_max", Monthly, Automatic},
}

type aliasKey struct {
	name        string
	frequency   Frequency
	stationType StationType
}

var (
	codeByAlias = make(map[aliasKey]string, len(aliasTable))
	aliasByCode = make(map[aliasKey]string, len(aliasTable))
)

func init() {
	for _, a := range aliasTable {
		codeByAlias[aliasKey{a.Alias, a.Frequency, a.StationType}] = a.Code
		aliasByCode[aliasKey{a.Code, a.Frequency, a.StationType}] = a.Alias
	}
}

// LookupAliasCode returns the attribute code of an alias. Aliases are case-sensitive.
func LookupAliasCode(alias string, frequency Frequency, stationType StationType) (string, bool) {
	code, ok := codeByAlias[aliasKey{alias, frequency, stationType}]
	return code, ok
}

// LookupAliasName returns the alias of an attribute code, if any.
func LookupAliasName(code string, frequency Frequency, stationType StationType) (string, bool) {
	alias, ok := aliasByCode[aliasKey{code, frequency, stationType}]
	return alias, ok
}

// Aliases lists the aliases of a frequency and station type, sorted by alias.
func Aliases(frequency Frequency, stationType StationType) []AttributeAlias {
	res := LookupAliases(AliasFilter{Frequency: frequency, StationType: stationType})
	sort.SliceStable(res, func(i, j int) bool { return res[i].Alias < res[j].Alias })
	return res
}

// LookupAliases returns the table rows matching every non-empty field of filter, in table order.
func LookupAliases(filter AliasFilter) []AttributeAlias {
	res := make([]AttributeAlias, 0)
	for _, a := range aliasTable {
		if filter.Frequency != "" && filter.Frequency != a.Frequency {
			continue
		}
		if filter.StationType != "" && filter.StationType != a.StationType {
			continue
		}
		if filter.Alias != "" && filter.Alias != a.Alias {
			continue
		}
		if filter.Code != "" && filter.Code != a.Code {
			continue
		}
		res = append(res, a)
	}
	return res
}
