package gamificacao_test

import (
	"testing"

	"github.com/KromaEnergia/api-comissoes/internal/gamificacao"
	"github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"
	"github.com/stretchr/testify/assert"
)

func TestTierParaVendas_Limites(t *testing.T) {
	cfg := tabelacomissao.Padrao() // meta 10

	assert.Equal(t, gamificacao.TierBronze, gamificacao.TierParaVendas(0, cfg).Tier)
	assert.Equal(t, gamificacao.TierBronze, gamificacao.TierParaVendas(5, cfg).Tier)
	assert.Equal(t, gamificacao.TierPrata, gamificacao.TierParaVendas(6, cfg).Tier)
	assert.Equal(t, gamificacao.TierPrata, gamificacao.TierParaVendas(cfg.MetaVendas-1, cfg).Tier)
	assert.Equal(t, gamificacao.TierOuro, gamificacao.TierParaVendas(cfg.MetaVendas, cfg).Tier)
	assert.Equal(t, gamificacao.TierOuro, gamificacao.TierParaVendas(50, cfg).Tier)
}

func TestTierParaVendas_PercentuaisDoTier(t *testing.T) {
	cfg := tabelacomissao.Padrao()

	bronze := gamificacao.TierParaVendas(3, cfg)
	assert.Equal(t, 5.0, bronze.PercentualMrr)
	assert.Equal(t, 15.0, bronze.PercentualSetup)

	prata := gamificacao.TierParaVendas(7, cfg)
	assert.Equal(t, 10.0, prata.PercentualMrr)
	assert.Equal(t, 25.0, prata.PercentualSetup)

	ouro := gamificacao.TierParaVendas(12, cfg)
	assert.Equal(t, 20.0, ouro.PercentualMrr)
	assert.Equal(t, 40.0, ouro.PercentualSetup)
}

func TestTierParaVendas_MetaCustomizada(t *testing.T) {
	cfg := tabelacomissao.Padrao()
	cfg.MetaVendas = 20

	assert.Equal(t, gamificacao.TierPrata, gamificacao.TierParaVendas(19, cfg).Tier)
	assert.Equal(t, gamificacao.TierOuro, gamificacao.TierParaVendas(20, cfg).Tier)
}

func TestTaxaSetup(t *testing.T) {
	cfg := tabelacomissao.Padrao()

	assert.Equal(t, 0.15, gamificacao.TaxaSetup(gamificacao.TierBronze, cfg))
	assert.Equal(t, 0.25, gamificacao.TaxaSetup(gamificacao.TierPrata, cfg))
	assert.Equal(t, 0.40, gamificacao.TaxaSetup(gamificacao.TierOuro, cfg))
	// Tier desconhecido cai no bronze.
	assert.Equal(t, 0.15, gamificacao.TaxaSetup("platina", cfg))
}
