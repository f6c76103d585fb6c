package external

import (
	"bytes"
	"encoding/json"
)

// AttributeResponse is one entry of the attribute catalog.
type AttributeResponse struct {
	Code        string `json:"CODIGO"`
	Periodicity string `json:"PERIODICIDADE"`
	Unit        string `json:"UNIDADE"`
	Description string `json:"DESCRICAO"`
	Class       string `json:"CLASSE"`
	Generation  string `json:"TIPO_GERACAO,omitempty"`
}

// StationResponse is one entry of the station catalog. Numbers arrive as strings.
type StationResponse struct {
	Code           string  `json:"CD_ESTACAO"`
	Name           string  `json:"DC_NOME"`
	State          string  `json:"SG_ESTADO"`
	Type           string  `json:"TP_ESTACAO"`
	Region         string  `json:"SG_REGIAO"`
	Status         string  `json:"CD_SITUACAO"`
	Entity         string  `json:"SG_ENTIDADE"`
	WSI            string  `json:"CD_WSI"`
	OSCAR          string  `json:"CD_OSCAR"`
	Latitude       Numeric `json:"VL_LATITUDE"`
	Longitude      Numeric `json:"VL_LONGITUDE"`
	Altitude       Numeric `json:"VL_ALTITUDE"`
	OperationStart string  `json:"DT_INICIO_OPERACAO"`
	OperationEnd   *string `json:"DT_FIM_OPERACAO"`
}

// Numeric keeps the textual form of a number that may be sent quoted or not.
type Numeric string

func (n *Numeric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Numeric(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = Numeric(num.String())
	return nil
}
