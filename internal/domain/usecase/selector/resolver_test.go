package selector

import (
	"errors"
	"reflect"
	"testing"

	"bdmep-api/internal/domain/entity"
	"bdmep-api/internal/domain/model"
)

var hourlyAttributes = []entity.Attribute{
	{Code: "I175", Description: "PRECIPITACAO TOTAL, HORARIO (AUT)"},
	{Code: "I101", Description: "TEMPERATURA DO AR - BULBO SECO, HORARIA (AUT)"},
	{Code: "I106", Description: "PRESSAO ATMOSFERICA AO NIVEL DA ESTACAO, HORARIA (AUT)"},
	{Code: "I133", Description: "RADIACAO GLOBAL (AUT)"},
}

var monthlyAttributes = []entity.Attribute{
	{Code: "I209", Description: "PRECIPITACAO TOTAL, MENSAL (AUT)"},
	{Code: "I230", Description: "NUMERO DE DIAS COM PRECIP. PLUV, MENSAL (AUT)"},
}

var stations = []entity.Station{
	{Code: "A713", City: "SOROCABA", State: "SP"},
	{Code: "A707", City: "PRESIDENTE PRUDENTE", State: "SP"},
	{Code: "A729", City: "SAO JOSE DO RIO PRETO", State: "SP"},
	{Code: "A730", City: "São José do Rio Preto", State: "SP"},
	{Code: "A702", City: "CAMPO GRANDE", State: "MS"},
	{Code: "A751", City: "SOROCABA", State: "MG"},
}

func TestResolveAttributeCodes(t *testing.T) {
	tests := []struct {
		name      string
		catalog   []entity.Attribute
		frequency entity.Frequency
		selector  entity.Selector
		expect    []string
	}{
		{"code lower case", hourlyAttributes, entity.Hourly, entity.ExplicitSelectors("i175"), []string{"I175"}},
		{"code upper case", hourlyAttributes, entity.Hourly, entity.ExplicitSelectors("I133"), []string{"I133"}},
		{"hourly rain alias", hourlyAttributes, entity.Hourly, entity.ExplicitSelectors("rain"), []string{"I175"}},
		{"monthly rain alias", monthlyAttributes, entity.Monthly, entity.ExplicitSelectors("rain"), []string{"I209"}},
		{"alias not in catalog still resolves", monthlyAttributes, entity.Monthly, entity.ExplicitSelectors("U_max"), []string{"I221"}},
		{"description any case", hourlyAttributes, entity.Hourly, entity.ExplicitSelectors("radiacao global (aut)"), []string{"I133"}},
		{"description with spaces", hourlyAttributes, entity.Hourly, entity.ExplicitSelectors("  RADIACAO GLOBAL (AUT) "), []string{"I133"}},
		{"mixed and deduplicated", hourlyAttributes, entity.Hourly, entity.ExplicitSelectors("rain", "T_mean", "I175"), []string{"I175", "I101"}},
		{"empty list", hourlyAttributes, entity.Hourly, entity.ExplicitSelectors(), []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAttributeCodes(tt.catalog, tt.frequency, entity.Automatic, tt.selector)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("got %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestResolveAttributeCodes_CodeIsIdempotent(t *testing.T) {
	for _, a := range hourlyAttributes {
		first, err := ResolveAttributeCodes(hourlyAttributes, entity.Hourly, entity.Automatic, entity.ExplicitSelectors(a.Code))
		if err != nil {
			t.Fatalf("%s: %v", a.Code, err)
		}
		second, _ := ResolveAttributeCodes(hourlyAttributes, entity.Hourly, entity.Automatic, entity.ExplicitSelectors(first...))
		if !reflect.DeepEqual(first, []string{a.Code}) || !reflect.DeepEqual(first, second) {
			t.Errorf("%s resolved to %v then %v", a.Code, first, second)
		}
	}
}

func TestResolveAttributeCodes_All(t *testing.T) {
	got, err := ResolveAttributeCodes(hourlyAttributes, entity.Hourly, entity.Automatic, entity.AllSelectors())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(hourlyAttributes) {
		t.Fatalf("got %d codes, want %d", len(got), len(hourlyAttributes))
	}
	for i, a := range hourlyAttributes {
		if got[i] != a.Code {
			t.Errorf("got[%d] = %s, want %s", i, got[i], a.Code)
		}
	}
}

func TestResolveAttributeCodes_Unresolved(t *testing.T) {
	tests := []struct {
		name        string
		stationType entity.StationType
		selector    entity.Selector
		offending   string
	}{
		{"unknown name", entity.Automatic, entity.ExplicitSelectors("rain", "snow"), "snow"},
		{"code missing from catalog", entity.Automatic, entity.ExplicitSelectors("I999"), "I999"},
		{"alias under conventional", entity.Conventional, entity.ExplicitSelectors("rain"), "rain"},
		{"alias wrong case", entity.Automatic, entity.ExplicitSelectors("RAIN"), "RAIN"},
		{"first failure wins", entity.Automatic, entity.ExplicitSelectors("x1", "x2"), "x1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveAttributeCodes(hourlyAttributes, entity.Hourly, tt.stationType, tt.selector)
			if !errors.Is(err, model.ErrUnresolvedSelector) {
				t.Fatalf("err = %v, want ErrUnresolvedSelector", err)
			}
			var selErr *model.SelectorError
			if !errors.As(err, &selErr) || selErr.Selector != tt.offending {
				t.Errorf("offending selector = %+v, want %q", selErr, tt.offending)
			}
		})
	}
}

func TestResolveAttributeCodes_ConventionalDescription(t *testing.T) {
	catalog := []entity.Attribute{{Code: "I006", Description: "PRECIPITACAO TOTAL, DIARIO"}}
	got, err := ResolveAttributeCodes(catalog, entity.Daily, entity.Conventional, entity.ExplicitSelectors("Precipitacao Total, Diario"))
	if err != nil || !reflect.DeepEqual(got, []string{"I006"}) {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestResolveStationCodes(t *testing.T) {
	tests := []struct {
		name     string
		selector entity.Selector
		expect   []string
	}{
		{"code", entity.ExplicitSelectors("a713"), []string{"A713"}},
		{"city space state", entity.ExplicitSelectors("Sorocaba SP"), []string{"A713"}},
		{"city dash state", entity.ExplicitSelectors("Campo Grande-MS"), []string{"A702"}},
		{"city slash state", entity.ExplicitSelectors("sorocaba/mg"), []string{"A751"}},
		{"city glued to state", entity.ExplicitSelectors("Presidente PrudenteSP"), []string{"A707"}},
		{"several stations in one city", entity.ExplicitSelectors("Sao Jose do Rio Preto SP"), []string{"A729", "A730"}},
		{"deduplicated", entity.ExplicitSelectors("A713", "Sorocaba SP"), []string{"A713"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStationCodes(stations, tt.selector)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expect) {
				t.Errorf("got %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestResolveStationCodes_DiacriticsEquivalence(t *testing.T) {
	accented, err := ResolveStationCodes(stations, entity.ExplicitSelectors("São José do Rio Preto SP"))
	if err != nil {
		t.Fatalf("accented: %v", err)
	}
	plain, err := ResolveStationCodes(stations, entity.ExplicitSelectors("Sao Jose do Rio Preto SP"))
	if err != nil {
		t.Fatalf("plain: %v", err)
	}
	if !reflect.DeepEqual(accented, plain) || len(plain) != 2 {
		t.Errorf("accented %v != plain %v", accented, plain)
	}
}

func TestResolveStationCodes_All(t *testing.T) {
	got, err := ResolveStationCodes(stations, entity.AllSelectors())
	if err != nil || len(got) != len(stations) || got[0] != "A713" || got[len(got)-1] != "A751" {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestResolveStationCodes_Errors(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		kind     error
	}{
		{"digits only", "12345", model.ErrInvalidSelectorFormat},
		{"state too long", "Sorocaba SPX1", model.ErrInvalidSelectorFormat},
		{"empty", "", model.ErrInvalidSelectorFormat},
		{"unknown code", "Z999", model.ErrUnresolvedSelector},
		{"unknown city", "Atlantida RS", model.ErrUnresolvedSelector},
		{"partial city", "Campo MS", model.ErrUnresolvedSelector},
		{"wrong state", "Campo Grande SP", model.ErrUnresolvedSelector},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveStationCodes(stations, entity.ExplicitSelectors(tt.selector))
			if !errors.Is(err, tt.kind) {
				t.Errorf("err = %v, want %v", err, tt.kind)
			}
		})
	}
}
