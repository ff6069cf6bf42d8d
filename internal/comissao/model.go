// internal/comissao/model.go
package comissao

// Fonte indica de onde veio o valor da comissão.
type Fonte string

const (
	// FonteEstimada: projeção a partir de meses ativos e parcelas atrasadas.
	FonteEstimada Fonte = "estimada"
	// FonteHistorica: parcela realmente paga no histórico de pagamentos.
	FonteHistorica Fonte = "historica"
)

// Status do cliente em um mês de referência.
const (
	StatusAtivo        = "ativo"
	StatusInadimplente = "inadimplente"
	StatusCancelado    = "cancelado"
)

// ComissaoCalculada é o resultado do cálculo de comissão de um cliente em um
// mês de referência. Derivada sob demanda, nunca persistida; entradas iguais
// produzem sempre o mesmo resultado.
type ComissaoCalculada struct {
	// Posicao no ciclo de 7 meses (base 0); -1 quando fora do ciclo.
	Posicao int `json:"posicao"`

	// MesesComissao é a contagem base 1 de meses comissionáveis alcançados.
	MesesComissao int `json:"mesesComissao"`

	// Percentual aplicado, em decimal (0.30 = 30%).
	Percentual float64 `json:"percentual"`

	// Valor monetário da comissão (MRR + eventual parcela de setup).
	Valor float64 `json:"valor"`

	Fonte Fonte `json:"fonte"`

	// ParcelaNumero referencia a parcela paga quando a fonte é histórica.
	ParcelaNumero int `json:"parcelaNumero,omitempty"`
}
