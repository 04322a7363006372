package postal_code

import "encoding/json"

// viaCEPResponse - ответ ViaCEP. Для несуществующего индекса сервис
// отвечает 200 с полем erro (true или "true").
type viaCEPResponse struct {
	CEP          string          `json:"cep"`
	Street       string          `json:"logradouro"`
	Neighborhood string          `json:"bairro"`
	City         string          `json:"localidade"`
	State        string          `json:"uf"`
	Erro         json.RawMessage `json:"erro,omitempty"`
}

func (r viaCEPResponse) notFound() bool {
	switch string(r.Erro) {
	case "true", `"true"`:
		return true
	default:
		return false
	}
}
