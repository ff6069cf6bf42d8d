// internal/cliente/model.go
package cliente

import (
	"time"

	"github.com/KromaEnergia/api-comissoes/internal/ciclo"
)

// Cliente é o modelo de leitura da visão clientes_atual. Este núcleo nunca
// escreve nessa tabela; ela é alimentada pela integração com o CRM.
type Cliente struct {
	ClientID          string     `gorm:"column:client_id" json:"clientId"`
	CNPJ              string     `gorm:"column:cnpj" json:"cnpj"`
	Nome              string     `gorm:"column:nome" json:"nome"`
	Vendedor          string     `gorm:"column:vendedor" json:"vendedor"`
	Valor             float64    `gorm:"column:valor" json:"valor"`
	TaxaSetup         float64    `gorm:"column:taxa_setup" json:"taxaSetup"`
	Status            string     `gorm:"column:status" json:"status"`
	StatusFinanceiro  string     `gorm:"column:status_financeiro" json:"statusFinanceiro"`
	ParcelasAtrasadas int        `gorm:"column:parcelas_atrasadas" json:"parcelasAtrasadas"`
	DataAdesao        *time.Time `gorm:"column:data_adesao" json:"dataAdesao"`
	DataCancelamento  *time.Time `gorm:"column:data_cancelamento" json:"dataCancelamento"`
	Pipeline          string     `gorm:"column:pipeline" json:"pipeline"`

	// Meses desde a adesão até hoje, inclusive o mês corrente (base 1).
	// Preenchido pelo repositório, não é coluna da visão.
	MesesAtivo int `gorm:"-" json:"mesesAtivo"`

	// Meses desde a adesão até o mês de referência, quando a consulta é
	// histórica. Zero significa "derivar da posição no ciclo".
	MesesAtivoReferencia int `gorm:"-" json:"-"`
}

// TableName aponta para a visão consolidada do CRM.
func (Cliente) TableName() string {
	return "clientes_atual"
}

// MesAdesao retorna o mês de adesão no formato YYYY-MM, ou vazio.
func (c *Cliente) MesAdesao() string {
	if c.DataAdesao == nil {
		return ""
	}
	return ciclo.MesDeData(*c.DataAdesao)
}

// MesCancelamento retorna o mês do cancelamento no formato YYYY-MM, ou vazio.
func (c *Cliente) MesCancelamento() string {
	if c.DataCancelamento == nil {
		return ""
	}
	return ciclo.MesDeData(*c.DataCancelamento)
}

// MesesAtivoAte calcula os meses ativos até o mês informado (base 1: o mês
// corrente parcial conta).
func (c *Cliente) MesesAtivoAte(mes string) int {
	adesao := c.MesAdesao()
	if adesao == "" || !ciclo.MesValido(mes) {
		return 0
	}
	meses := ciclo.MesesEntre(adesao, mes) + 1
	if meses < 0 {
		return 0
	}
	return meses
}
