package spreadsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "lupita_pizza_testing_9", Slugify("Lupita Pizza - Testing (9)"))
	assert.Equal(t, "sao_joao_da_madeira", Slugify("  São João da Madeira "))
	assert.Equal(t, "", Slugify(" - "))
}

func TestStoreResolver_Resolve(t *testing.T) {
	resolver := NewStoreResolver(map[string]string{"Loja Nova do Porto": "porto_2"})

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "Nome conhecido", raw: "Lupita Pizza - Cais do Sodré", expected: "cais_sodre"},
		{name: "Nome conhecido com caixa diferente", raw: "LUPITA PIZZA - ALVALADE", expected: "alvalade"},
		{name: "Override de configuração", raw: "loja nova do porto", expected: "porto_2"},
		{name: "Nome desconhecido cai no slug", raw: "Lupita Pizza - Testing (9)", expected: "lupita_pizza_testing_9"},
		{name: "Vazio", raw: "  ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.Resolve(tt.raw))
		})
	}

	t.Run("Resolução determinística", func(t *testing.T) {
		first := resolver.Resolve("Lupita Pizza - Testing (9)")
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, NewStoreResolver(nil).Resolve("Lupita Pizza - Testing (9)"))
		}
	})
}

func TestNormalizeZone(t *testing.T) {
	tests := map[string]string{
		"SALA":      ZoneSala,
		"sala":      ZoneSala,
		"Delivery":  ZoneDelivery,
		"Take Away": ZoneTakeaway,
		"take-away": ZoneTakeaway,
		"TAKEAWAY":  ZoneTakeaway,
		"Espera":    ZoneEspera,
		"eventos":   ZoneEventos,
		"Glovo":     ZoneOthers,
		"":          ZoneOthers,
	}

	for raw, expected := range tests {
		assert.Equal(t, expected, NormalizeZone(raw), "zona %q", raw)
	}
}

func TestRowClassification(t *testing.T) {
	assert.True(t, IsSubtotalRow([]string{"", "Loja - Lupita Pizza - Alvalade", "", "1.000,00"}))
	assert.True(t, IsSubtotalRow([]string{"Zona - Sala"}))
	assert.True(t, IsSubtotalRow([]string{"Data - 15-03-2025"}))
	assert.False(t, IsSubtotalRow([]string{"Lupita Pizza - Alvalade", "15-03-2025"}))

	kind, value, ok := SubtotalLabel([]string{"Loja - Lupita Pizza - Alvalade"})
	assert.True(t, ok)
	assert.Equal(t, "loja", kind)
	assert.Equal(t, "Lupita Pizza - Alvalade", value)

	assert.True(t, IsGrandTotalRow([]string{"Total", "", "12.345,00"}))
	assert.True(t, IsGrandTotalRow([]string{"Total Geral"}))
	assert.False(t, IsGrandTotalRow([]string{"Total Loja Alvalade"}))
	assert.False(t, IsGrandTotalRow([]string{"Tosta Mista"}))

	assert.True(t, IsCompanyFooterRow([]string{"Lupita Restauração, Lda - NIF 123456789"}))
	assert.False(t, IsCompanyFooterRow([]string{"Salada César", "2"}))

	assert.True(t, IsModifierLabel("@ Sem Queijo"))
	assert.False(t, IsModifierLabel("Pizza Margherita"))
}
