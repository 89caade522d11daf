package spreadsheet

import "strings"

// Zonas canónicas de venda.
const (
	ZoneSala     = "Sala"
	ZoneDelivery = "Delivery"
	ZoneTakeaway = "Takeaway"
	ZoneEspera   = "Espera"
	ZoneEventos  = "Eventos"
	ZoneOthers   = "Outros"
)

var zoneAliases = map[string]string{
	"sala":     ZoneSala,
	"delivery": ZoneDelivery,
	"takeaway": ZoneTakeaway,
	"espera":   ZoneEspera,
	"evento":   ZoneEventos,
	"eventos":  ZoneEventos,

	"esplanada": ZoneSala,
	"entrega":   ZoneDelivery,
	"entregas":  ZoneDelivery,
}

var zoneCompactor = strings.NewReplacer(" ", "", "-", "", "_", "", ".", "")

// NormalizeZone converte o rótulo de zona do ZSBMS na forma canónica. Desconhecidos e vazios
// resultam em "Outros".
func NormalizeZone(raw string) string {
	key := zoneCompactor.Replace(Normalize(raw))
	if zone, ok := zoneAliases[key]; ok {
		return zone
	}
	return ZoneOthers
}
