// internal/gamificacao/tier.go
package gamificacao

import "github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"

// Tiers de gamificação do vendedor, definidos pelas vendas do mês.
const (
	TierBronze = "bronze"
	TierPrata  = "prata"
	TierOuro   = "ouro"
)

// InfoTier agrega o tier e os percentuais de comissão associados.
type InfoTier struct {
	Tier            string  `json:"tier"`
	PercentualMrr   float64 `json:"percentualMrr"`
	PercentualSetup float64 `json:"percentualSetup"`
}

// TierParaVendas determina o tier do vendedor a partir das vendas (novos
// clientes) do mês:
//   - ouro:   vendas >= meta
//   - prata:  6 até meta-1 vendas
//   - bronze: o restante
func TierParaVendas(vendasMes int, cfg *tabelacomissao.TabelaComissao) InfoTier {
	switch {
	case vendasMes >= cfg.MetaVendas:
		return InfoTier{Tier: TierOuro, PercentualMrr: cfg.MrrTier3, PercentualSetup: cfg.SetupTier3}
	case vendasMes >= 6:
		return InfoTier{Tier: TierPrata, PercentualMrr: cfg.MrrTier2, PercentualSetup: cfg.SetupTier2}
	default:
		return InfoTier{Tier: TierBronze, PercentualMrr: cfg.MrrTier1, PercentualSetup: cfg.SetupTier1}
	}
}

// TaxaSetup retorna a taxa de setup (decimal, ex.: 0.15) do tier informado.
func TaxaSetup(tier string, cfg *tabelacomissao.TabelaComissao) float64 {
	switch tier {
	case TierOuro:
		return cfg.SetupTier3 / 100
	case TierPrata:
		return cfg.SetupTier2 / 100
	default:
		return cfg.SetupTier1 / 100
	}
}
