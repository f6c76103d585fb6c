package external

import (
	"encoding/json"
	"testing"
)

func TestStationResponse_NumericFields(t *testing.T) {
	body := `[
		{"CD_ESTACAO":"A657","VL_LATITUDE":"-20.10416666","VL_LONGITUDE":-41.10694444,"VL_ALTITUDE":null,"DT_FIM_OPERACAO":null},
		{"CD_ESTACAO":"A713","VL_LATITUDE":"-23.5","VL_LONGITUDE":"-47.5","VL_ALTITUDE":"600","DT_FIM_OPERACAO":"2020-01-01T00:00:00.000-03:00"}
	]`

	var stations []StationResponse
	if err := json.Unmarshal([]byte(body), &stations); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if stations[0].Latitude != "-20.10416666" || stations[0].Longitude != "-41.10694444" || stations[0].Altitude != "" {
		t.Errorf("unexpected numbers: %+v", stations[0])
	}
	if stations[0].OperationEnd != nil {
		t.Errorf("OperationEnd = %v, want nil", *stations[0].OperationEnd)
	}
	if stations[1].OperationEnd == nil || *stations[1].OperationEnd == "" {
		t.Error("OperationEnd of A713 not decoded")
	}
}
