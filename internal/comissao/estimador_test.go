package comissao_test

import (
	"testing"
	"time"

	"github.com/KromaEnergia/api-comissoes/internal/cliente"
	"github.com/KromaEnergia/api-comissoes/internal/comissao"
	"github.com/KromaEnergia/api-comissoes/internal/gamificacao"
	"github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"
	"github.com/stretchr/testify/assert"
)

func dia(ano, mes, d int) *time.Time {
	t := time.Date(ano, time.Month(mes), d, 0, 0, 0, 0, time.UTC)
	return &t
}

// clienteExemplo: adesão mai/2025, MRR 1000, setup 500, em dia.
func clienteExemplo() *cliente.Cliente {
	return &cliente.Cliente{
		ClientID:   "c-1",
		CNPJ:       "11222333000144",
		Nome:       "Padaria Central",
		Valor:      1000,
		TaxaSetup:  500,
		DataAdesao: dia(2025, 5, 10),
		MesesAtivo: 4, // hoje = ago/2025
	}
}

func tierBronze() gamificacao.InfoTier {
	return gamificacao.TierParaVendas(0, tabelacomissao.Padrao())
}

func TestEstimar_PrimeiroMesComSetup(t *testing.T) {
	// GIVEN: adesão mai/2025, schedule [30,20,...], tier bronze (setup 15%)
	// WHEN: mês de referência jun/2025 (posição 0), sem atrasos
	linha := comissao.Estimar(clienteExemplo(), "2025-06", tierBronze(), tabelacomissao.Padrao())

	// THEN: 1000*0.30 + 500*0.15 = 375
	assert.Equal(t, 0, linha.Posicao)
	assert.Equal(t, 0.30, linha.Percentual)
	assert.InDelta(t, 375.0, linha.Valor, 1e-9)
	assert.Equal(t, comissao.FonteEstimada, linha.Fonte)
}

func TestEstimar_SegundoMesSemSetup(t *testing.T) {
	linha := comissao.Estimar(clienteExemplo(), "2025-07", tierBronze(), tabelacomissao.Padrao())

	assert.Equal(t, 1, linha.Posicao)
	assert.Equal(t, 0.20, linha.Percentual)
	assert.InDelta(t, 200.0, linha.Valor, 1e-9)
}

func TestEstimar_SetupZeradoNaoSoma(t *testing.T) {
	c := clienteExemplo()
	c.TaxaSetup = 0

	linha := comissao.Estimar(c, "2025-06", tierBronze(), tabelacomissao.Padrao())
	assert.InDelta(t, 300.0, linha.Valor, 1e-9)
}

func TestEstimar_SetupUsaTaxaDoTier(t *testing.T) {
	cfg := tabelacomissao.Padrao()
	ouro := gamificacao.TierParaVendas(cfg.MetaVendas, cfg)

	linha := comissao.Estimar(clienteExemplo(), "2025-06", ouro, cfg)
	// 1000*0.30 + 500*0.40
	assert.InDelta(t, 500.0, linha.Valor, 1e-9)
}

func TestEstimar_ForaDoCicloSemComissao(t *testing.T) {
	cfg := tabelacomissao.Padrao()

	for _, mes := range []string{"2025-05", "2025-04", "2026-01", "2027-06"} {
		linha := comissao.Estimar(clienteExemplo(), mes, tierBronze(), cfg)
		assert.Equal(t, -1, linha.Posicao, "mês %s", mes)
		assert.Zero(t, linha.Valor, "mês %s", mes)
	}
}

func TestEstimar_SemAdesaoSemComissao(t *testing.T) {
	c := clienteExemplo()
	c.DataAdesao = nil

	linha := comissao.Estimar(c, "2025-06", tierBronze(), tabelacomissao.Padrao())
	assert.Equal(t, -1, linha.Posicao)
	assert.Zero(t, linha.Valor)
}

func TestEstimar_MesReferenciaInvalido(t *testing.T) {
	linha := comissao.Estimar(clienteExemplo(), "junho", tierBronze(), tabelacomissao.Padrao())
	assert.Equal(t, -1, linha.Posicao)
	assert.Zero(t, linha.Valor)
}

func TestEstimar_AtrasoAtualBloqueiaMesCorrente(t *testing.T) {
	// GIVEN: hoje ago/2025 (meses ativo 4), 1 parcela atrasada
	c := clienteExemplo()
	c.ParcelasAtrasadas = 1

	// WHEN: referência ago/2025 (posição 2), mesesAtivoReferencia = 4
	c.MesesAtivoReferencia = 4
	linha := comissao.Estimar(c, "2025-08", tierBronze(), tabelacomissao.Padrao())

	// THEN: 4 meses ativos - 1 atrasada = 3 meses pagos >= posição+1 (3): paga
	assert.InDelta(t, 100.0, linha.Valor, 1e-9)

	// Duas atrasadas derrubam para 2 meses pagos < 3: bloqueia
	c.ParcelasAtrasadas = 2
	linha = comissao.Estimar(c, "2025-08", tierBronze(), tabelacomissao.Padrao())
	assert.Zero(t, linha.Valor)
	assert.Equal(t, 2, linha.Posicao)
}

func TestEstimar_ProjecaoRetroativaDeAtraso(t *testing.T) {
	// GIVEN: hoje ago/2025, 2 parcelas atrasadas hoje
	c := clienteExemplo()
	c.ParcelasAtrasadas = 2

	// WHEN: referência jun/2025, dois meses antes, os 2 atrasos de hoje
	// ainda não existiam (projeção: 2 - (4-2) = 0)
	c.MesesAtivoReferencia = 2
	linha := comissao.Estimar(c, "2025-06", tierBronze(), tabelacomissao.Padrao())

	// THEN: naquele mês o cliente estava em dia
	assert.InDelta(t, 375.0, linha.Valor, 1e-9)
}

func TestEstimar_ProjecaoForaDeFaixaZeraComissao(t *testing.T) {
	// Atrasos acumulados maiores que os meses decorridos até a referência:
	// dado inconsistente, trata como sem comissão.
	c := clienteExemplo()
	c.ParcelasAtrasadas = 9
	c.MesesAtivo = 4
	c.MesesAtivoReferencia = 2

	linha := comissao.Estimar(c, "2025-06", tierBronze(), tabelacomissao.Padrao())
	assert.Zero(t, linha.Valor)
	assert.Zero(t, linha.MesesComissao)
}

func TestEstimar_EntradasNegativasTratadasComoZero(t *testing.T) {
	c := clienteExemplo()
	c.Valor = -100
	c.TaxaSetup = -50
	c.ParcelasAtrasadas = -3

	linha := comissao.Estimar(c, "2025-06", tierBronze(), tabelacomissao.Padrao())
	assert.Zero(t, linha.Valor)
	assert.Equal(t, 0.30, linha.Percentual)
}

func TestEstimar_ChurnLimiteDoMesSeguinte(t *testing.T) {
	// Regra unificada: o mês de comissão M cobre a parcela vencida em M-1,
	// então o mês seguinte ao cancelamento ainda comissiona.
	c := clienteExemplo()
	c.DataCancelamento = dia(2025, 8, 10)

	// Referência set/2025: parcela implícita venceu em ago (mês do
	// cancelamento), ainda paga.
	c.MesesAtivoReferencia = 5
	c.MesesAtivo = 5
	linha := comissao.Estimar(c, "2025-09", tierBronze(), tabelacomissao.Padrao())
	assert.InDelta(t, 100.0, linha.Valor, 1e-9)

	// Referência out/2025: vencimento implícito set > mês do cancelamento,
	// não paga mais.
	c.MesesAtivoReferencia = 6
	c.MesesAtivo = 6
	linha = comissao.Estimar(c, "2025-10", tierBronze(), tabelacomissao.Padrao())
	assert.Zero(t, linha.Valor)
	assert.Equal(t, 4, linha.Posicao)
}

func TestEstimar_RecorrenciaCustomizada(t *testing.T) {
	cfg := tabelacomissao.Padrao()
	cfg.MrrRecorrencia = []float64{50, 25, 5, 5, 5, 5, 5}

	linha := comissao.Estimar(clienteExemplo(), "2025-06", tierBronze(), cfg)
	// 1000*0.50 + 500*0.15
	assert.InDelta(t, 575.0, linha.Valor, 1e-9)
}
