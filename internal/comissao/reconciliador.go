// internal/comissao/reconciliador.go
package comissao

import (
	"github.com/KromaEnergia/api-comissoes/internal/ciclo"
	"github.com/KromaEnergia/api-comissoes/internal/cliente"
	"github.com/KromaEnergia/api-comissoes/internal/gamificacao"
	"github.com/KromaEnergia/api-comissoes/internal/historicopagamentos"
	"github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"
)

// Reconciliar calcula a comissão a partir de uma parcela realmente paga cujo
// mês de comissão (vencimento + 1) é o mês de referência. Retorna nil quando
// a parcela não sustenta o mês; aí vale a estimativa.
func Reconciliar(c *cliente.Cliente, mesReferencia string, parcela *historicopagamentos.HistoricoPagamento, tier gamificacao.InfoTier, cfg *tabelacomissao.TabelaComissao) *ComissaoCalculada {
	if parcela == nil || !parcela.Paga() {
		return nil
	}

	mesAdesao := c.MesAdesao()
	if mesAdesao == "" || parcela.MesComissao() != mesReferencia {
		return nil
	}

	// Posição derivada do vencimento: o mês de comissão vencimento+1 ocupa
	// no ciclo (adesão+1 ... adesão+7) o índice vencimento-adesão.
	pos := ciclo.MesesEntre(mesAdesao, parcela.MesVencimento())
	if pos < 0 || pos >= ciclo.TamanhoCiclo {
		return nil
	}

	linha := &ComissaoCalculada{
		Posicao:       pos,
		MesesComissao: pos + 1,
		Fonte:         FonteHistorica,
		ParcelaNumero: parcela.Parcela,
	}

	// Parcela vencida depois do mês de cancelamento nunca comissiona,
	// mesmo constando como paga.
	if mc := c.MesCancelamento(); mc != "" && parcela.MesVencimento() > mc {
		return linha
	}

	mrr := c.Valor
	if mrr < 0 {
		mrr = 0
	}
	setup := c.TaxaSetup
	if setup < 0 {
		setup = 0
	}

	linha.Percentual = cfg.PercentualRecorrencia(pos) / 100
	linha.Valor = mrr * linha.Percentual
	if pos == 0 && setup > 0 {
		linha.Valor += setup * tier.PercentualSetup / 100
	}
	return linha
}
