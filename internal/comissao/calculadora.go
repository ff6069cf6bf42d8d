// internal/comissao/calculadora.go
package comissao

import (
	"log"

	"github.com/KromaEnergia/api-comissoes/internal/cliente"
	"github.com/KromaEnergia/api-comissoes/internal/gamificacao"
	"github.com/KromaEnergia/api-comissoes/internal/historicopagamentos"
	"github.com/KromaEnergia/api-comissoes/internal/metrics"
	"github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"
)

// Calculadora é o ponto de entrada do cálculo de comissão. Prefere o valor
// reconciliado com o histórico de pagamentos e cai na estimativa apenas nos
// meses sem parcela real (projeções futuras, histórico não migrado).
type Calculadora struct {
	Config    *tabelacomissao.CacheConfiguracao
	Historico *historicopagamentos.Repository
}

// NewCalculadora monta a calculadora com suas dependências.
func NewCalculadora(config *tabelacomissao.CacheConfiguracao, historico *historicopagamentos.Repository) *Calculadora {
	return &Calculadora{Config: config, Historico: historico}
}

// Calcular computa a comissão do cliente no mês de referência.
func (calc *Calculadora) Calcular(c *cliente.Cliente, mesReferencia string, tier gamificacao.InfoTier) ComissaoCalculada {
	cfg := calc.Config.Obter()

	if calc.Historico != nil && c.CNPJ != "" {
		parcela, err := calc.Historico.ParcelaParaMesComissao(c.CNPJ, mesReferencia)
		if err != nil {
			// Falha de banco não derruba o lote: segue para a estimativa.
			log.Printf("comissao: erro ao consultar histórico de %s: %v", c.CNPJ, err)
		} else if linha := Reconciliar(c, mesReferencia, parcela, tier, cfg); linha != nil {
			metrics.ComissoesCalculadasTotal.WithLabelValues(string(FonteHistorica)).Inc()
			return *linha
		}
	}

	linha := Estimar(c, mesReferencia, tier, cfg)
	metrics.ComissoesCalculadasTotal.WithLabelValues(string(FonteEstimada)).Inc()
	return linha
}
