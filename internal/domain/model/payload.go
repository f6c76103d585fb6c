package model

import "net/url"

// Payload is the body of a BDMEP data request.
type Payload struct {
	Email         string   `json:"email"`
	Frequency     string   `json:"tipo_dados"`
	StationType   string   `json:"tipo_estacao"`
	Attributes    []string `json:"variaveis"`
	Stations      []string `json:"estacoes"`
	StartDate     string   `json:"data_inicio"`
	EndDate       string   `json:"data_fim"`
	DecimalMarker string   `json:"tipo_pontuacao"`
}

// Form encodes the payload as form values; lists become repeated keys.
func (p Payload) Form() url.Values {
	values := url.Values{}
	values.Set("email", p.Email)
	values.Set("tipo_dados", p.Frequency)
	values.Set("tipo_estacao", p.StationType)
	for _, code := range p.Attributes {
		values.Add("variaveis", code)
	}
	for _, code := range p.Stations {
		values.Add("estacoes", code)
	}
	values.Set("data_inicio", p.StartDate)
	values.Set("data_fim", p.EndDate)
	values.Set("tipo_pontuacao", p.DecimalMarker)
	return values
}

// SubmissionResult is the outcome of a synchronous submission.
type SubmissionResult struct {
	ID       string  `json:"id"`
	Payload  Payload `json:"payload"`
	Response string  `json:"response"`
}

// RequisitionMessage is the queue message of an asynchronous submission.
type RequisitionMessage struct {
	ID      string  `json:"id"`
	Payload Payload `json:"payload"`
}

// EnqueueResult is returned once a requisition is accepted by the queue.
type EnqueueResult struct {
	ID      string  `json:"id"`
	Payload Payload `json:"payload"`
}
