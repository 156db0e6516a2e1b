package utils

import "time"

// GetBrasilLocation retorna a localização de São Paulo. Todo o projeto usa
// esse fuso para exibir datas, garantindo que relatório e tela mostrem o
// mesmo horário.
func GetBrasilLocation() *time.Location {
	location, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Fallback para UTC-3 se o tzdata não estiver disponível
		location = time.FixedZone("BRT", -3*60*60)
	}
	return location
}

// FormatBrasilDateTime formata um instante no padrão brasileiro dd/mm/aaaa hh:mm.
func FormatBrasilDateTime(t time.Time) string {
	return t.In(GetBrasilLocation()).Format("02/01/2006 15:04")
}
