// internal/comissaopendente/dto.go
package comissaopendente

import "time"

// ComissaoPendenteDTO é a linha devolvida nas consultas, com os campos
// derivados de bloqueio/liberação já calculados.
type ComissaoPendenteDTO struct {
	ID                 string     `json:"id"`
	CNPJ               string     `json:"cnpj"`
	RazaoSocial        string     `json:"razaoSocial"`
	VendedorID         uint       `json:"vendedorId"`
	VendedorNome       string     `json:"vendedorNome"`
	MesReferencia      string     `json:"mesReferencia"`
	Competencia        string     `json:"competencia"`
	ParcelaNumero      int        `json:"parcelaNumero"`
	ValorMrr           float64    `json:"valorMrr"`
	PercentualAplicado float64    `json:"percentualAplicado"`
	ValorComissao      float64    `json:"valorComissao"`
	Status             string     `json:"status"`
	MotivoBloqueio     string     `json:"motivoBloqueio"`
	DataBloqueio       time.Time  `json:"dataBloqueio"`
	DataLiberacao      *time.Time `json:"dataLiberacao"`
	DiasBloqueada      int        `json:"diasBloqueada"`
	RecemLiberada      bool       `json:"recemLiberada"`
}

func montarDTO(c *ComissaoPendente, agora time.Time) ComissaoPendenteDTO {
	return ComissaoPendenteDTO{
		ID:                 c.ID,
		CNPJ:               c.CNPJ,
		RazaoSocial:        c.RazaoSocial,
		VendedorID:         c.VendedorID,
		VendedorNome:       c.VendedorNome,
		MesReferencia:      c.MesReferencia,
		Competencia:        c.Competencia(),
		ParcelaNumero:      c.ParcelaNumero,
		ValorMrr:           c.ValorMrr,
		PercentualAplicado: c.PercentualAplicado,
		ValorComissao:      c.ValorComissao,
		Status:             c.Status,
		MotivoBloqueio:     c.MotivoBloqueio,
		DataBloqueio:       c.DataBloqueio,
		DataLiberacao:      c.DataLiberacao,
		DiasBloqueada:      c.DiasBloqueada(agora),
		RecemLiberada:      c.RecemLiberada(agora),
	}
}

// RegularizarDTO é o corpo do POST de regularização manual.
type RegularizarDTO struct {
	CNPJ          string `json:"cnpj"`
	ParcelasPagas int    `json:"parcelasPagas"`
}

// PerdidaDTO é o corpo do POST que marca comissões como perdidas.
type PerdidaDTO struct {
	CNPJ   string `json:"cnpj"`
	Motivo string `json:"motivo"`
}
