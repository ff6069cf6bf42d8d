// internal/comissao/status.go
package comissao

import (
	"strings"

	"github.com/KromaEnergia/api-comissoes/internal/cliente"
)

var statusDeCancelamento = map[string]bool{
	"churns":                 true,
	"cancelados":             true,
	"solicitar cancelamento": true,
}

func clienteCancelado(c *cliente.Cliente) bool {
	if statusDeCancelamento[strings.ToLower(c.Status)] {
		return true
	}
	return strings.Contains(strings.ToLower(c.Pipeline), "churns & cancelamentos")
}

// estavaInadimplenteNoMes projeta as parcelas atrasadas de hoje para o mês de
// referência: se hoje há X atrasadas e Y meses se passaram desde a adesão,
// no mês de referência (Z meses desde a adesão) havia X - (Y - Z) atrasadas.
func estavaInadimplenteNoMes(c *cliente.Cliente, mesReferencia string) bool {
	if c.MesAdesao() == "" || c.MesesAtivo <= 0 {
		return false
	}
	mesesAteReferencia := c.MesesAtivoAte(mesReferencia)
	if mesesAteReferencia <= 0 {
		return false
	}
	mesesDepois := c.MesesAtivo - mesesAteReferencia
	return c.ParcelasAtrasadas-mesesDepois > 0
}

// StatusNoMes mapeia o cliente para ativo, inadimplente ou cancelado.
// Com mês de referência, o status é o DAQUELE mês: quem cancelou depois da
// referência ainda era ativo (ou inadimplente) nela.
func StatusNoMes(c *cliente.Cliente, mesReferencia string) string {
	cancelado := clienteCancelado(c)

	if mesReferencia != "" && cancelado && c.MesCancelamento() != "" &&
		c.MesCancelamento() > mesReferencia {
		if estavaInadimplenteNoMes(c, mesReferencia) {
			return StatusInadimplente
		}
		return StatusAtivo
	}

	if cancelado {
		return StatusCancelado
	}

	if mesReferencia != "" {
		if estavaInadimplenteNoMes(c, mesReferencia) {
			return StatusInadimplente
		}
		return StatusAtivo
	}

	if c.ParcelasAtrasadas > 0 {
		return StatusInadimplente
	}
	return StatusAtivo
}
