// internal/comissao/estimador.go
package comissao

import (
	"github.com/KromaEnergia/api-comissoes/internal/ciclo"
	"github.com/KromaEnergia/api-comissoes/internal/cliente"
	"github.com/KromaEnergia/api-comissoes/internal/gamificacao"
	"github.com/KromaEnergia/api-comissoes/internal/tabelacomissao"
)

// comissionavelNoMes aplica a regra de churn unificada: o mês de comissão M
// corresponde à parcela vencida em M-1; a comissão é devida enquanto esse
// vencimento não for posterior ao mês de cancelamento. Assim o mês seguinte
// ao cancelamento ainda comissiona, os posteriores não.
func comissionavelNoMes(mesCancelamento, mesReferencia string) bool {
	if mesCancelamento == "" {
		return true
	}
	return ciclo.MesAnterior(mesReferencia) <= mesCancelamento
}

// Estimar projeta a comissão de um cliente para um mês de referência a partir
// dos contadores atuais (meses ativos e parcelas atrasadas), sem consultar o
// histórico de pagamentos. Entradas inválidas produzem linha zerada, nunca
// erro: o processamento em lote não pode parar por um cliente malformado.
func Estimar(c *cliente.Cliente, mesReferencia string, tier gamificacao.InfoTier, cfg *tabelacomissao.TabelaComissao) ComissaoCalculada {
	linha := ComissaoCalculada{Posicao: -1, Fonte: FonteEstimada}

	mesAdesao := c.MesAdesao()
	if mesAdesao == "" || !ciclo.MesValido(mesReferencia) {
		return linha
	}

	pos := ciclo.PosicaoNoCiclo(mesAdesao, mesReferencia)
	if pos < 0 {
		return linha
	}
	linha.Posicao = pos

	if !comissionavelNoMes(c.MesCancelamento(), mesReferencia) {
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
	atrasadasHoje := c.ParcelasAtrasadas
	if atrasadasHoje < 0 {
		atrasadasHoje = 0
	}
	mesesAtivoHoje := c.MesesAtivo
	if mesesAtivoHoje < 0 {
		mesesAtivoHoje = 0
	}

	// Meses ativos até o mês de referência (base 1). Quando o chamador não
	// informa, deriva da posição no ciclo.
	mesesAtivoRef := c.MesesAtivoReferencia
	if mesesAtivoRef <= 0 {
		mesesAtivoRef = pos + 1
	}

	// Projeta as parcelas atrasadas de hoje para o mês de referência: os
	// meses decorridos depois da referência não podiam estar atrasados nela.
	mesesDepois := mesesAtivoHoje - mesesAtivoRef
	atrasadasNoMes := atrasadasHoje - mesesDepois
	if atrasadasNoMes < 0 {
		atrasadasNoMes = 0
	}
	if atrasadasNoMes > mesesAtivoRef {
		// Projeção fora de faixa: trata como sem comissão em vez de
		// propagar contagem negativa de meses pagos.
		return linha
	}

	mesesComissao := mesesAtivoRef - atrasadasNoMes
	linha.MesesComissao = mesesComissao

	// O cliente precisa ter alcançado e pago até esta posição do ciclo.
	if mesesComissao < pos+1 {
		return linha
	}

	linha.Percentual = cfg.PercentualRecorrencia(pos) / 100
	linha.Valor = mrr * linha.Percentual

	// Setup entra só no primeiro mês do ciclo, à taxa do tier do vendedor.
	if pos == 0 && setup > 0 {
		linha.Valor += setup * tier.PercentualSetup / 100
	}
	return linha
}
