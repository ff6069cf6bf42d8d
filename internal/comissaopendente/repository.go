// internal/comissaopendente/repository.go
package comissaopendente

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsula o acesso à tabela de comissões pendentes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ============================== Criação idempotente ============================== */

// InserirIgnorandoConflito tenta inserir a comissão pendente. Conflito no par
// (cnpj, mes_referencia) não é erro: retorna criada=false e segue, o que
// torna o snapshot reprocessável.
func (r *Repository) InserirIgnorandoConflito(c *ComissaoPendente) (criada bool, err error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cnpj"}, {Name: "mes_referencia"}},
		DoNothing: true,
	}).Create(c)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

/* ============================== Transições de estado ============================== */

// BloqueadasPorCNPJ busca as comissões bloqueadas de um cliente, da mais
// antiga para a mais recente (ordem de liberação FIFO).
func (r *Repository) BloqueadasPorCNPJ(cnpj string) ([]ComissaoPendente, error) {
	var comissoes []ComissaoPendente
	err := r.DB.
		Where("cnpj = ? AND status = ?", cnpj, StatusBloqueada).
		Order("mes_referencia ASC").
		Find(&comissoes).Error
	return comissoes, err
}

// LiberarFIFO transiciona para paga as n comissões bloqueadas mais antigas
// do cliente. Cada linha é atualizada de forma independente: a condição de
// status no UPDATE impede liberar duas vezes a mesma linha mesmo com
// chamadas concorrentes, e uma falha pontual não desfaz as demais.
// Retorna quantas comissões foram de fato liberadas.
func (r *Repository) LiberarFIFO(cnpj string, n int, agora time.Time) (int, error) {
	if n <= 0 {
		return 0, nil
	}

	bloqueadas, err := r.BloqueadasPorCNPJ(cnpj)
	if err != nil {
		return 0, err
	}
	if len(bloqueadas) > n {
		bloqueadas = bloqueadas[:n]
	}

	liberadas := 0
	var ultimoErro error
	for i := range bloqueadas {
		res := r.DB.Model(&ComissaoPendente{}).
			Where("id = ? AND status = ?", bloqueadas[i].ID, StatusBloqueada).
			Updates(map[string]interface{}{
				"status":         StatusPaga,
				"data_liberacao": agora,
			})
		if res.Error != nil {
			ultimoErro = res.Error
			continue
		}
		liberadas += int(res.RowsAffected)
	}
	return liberadas, ultimoErro
}

// MarcarPerdidas transiciona para perdida todas as comissões bloqueadas do
// cliente (cancelamento definitivo). Retorna quantas linhas mudaram.
func (r *Repository) MarcarPerdidas(cnpj, motivo string) (int, error) {
	res := r.DB.Model(&ComissaoPendente{}).
		Where("cnpj = ? AND status = ?", cnpj, StatusBloqueada).
		Updates(map[string]interface{}{
			"status":          StatusPerdida,
			"motivo_bloqueio": motivo,
		})
	return int(res.RowsAffected), res.Error
}

/* ============================== Consultas ============================== */

// Listar busca comissões pendentes com filtros opcionais de vendedor e
// status, da referência mais antiga para a mais recente.
func (r *Repository) Listar(vendedorID *uint, status *string, limit int) ([]ComissaoPendente, error) {
	if limit <= 0 {
		limit = 100
	}

	q := r.DB.Order("mes_referencia ASC").Limit(limit)
	if vendedorID != nil {
		q = q.Where("vendedor_id = ?", *vendedorID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var comissoes []ComissaoPendente
	err := q.Find(&comissoes).Error
	return comissoes, err
}

// ListarLiberadas busca comissões pagas, da liberação mais recente para a
// mais antiga.
func (r *Repository) ListarLiberadas(vendedorID *uint, limit int) ([]ComissaoPendente, error) {
	if limit <= 0 {
		limit = 100
	}

	q := r.DB.
		Where("status = ?", StatusPaga).
		Order("data_liberacao DESC").
		Limit(limit)
	if vendedorID != nil {
		q = q.Where("vendedor_id = ?", *vendedorID)
	}

	var comissoes []ComissaoPendente
	err := q.Find(&comissoes).Error
	return comissoes, err
}

// ResumoVendedor consolida contagens e somas de comissões por vendedor.
type ResumoVendedor struct {
	VendedorID     uint    `json:"vendedorId"`
	VendedorNome   string  `json:"vendedorNome"`
	QtdBloqueadas  int     `json:"qtdBloqueadas"`
	QtdPagas       int     `json:"qtdPagas"`
	QtdPerdidas    int     `json:"qtdPerdidas"`
	TotalBloqueado float64 `json:"totalBloqueado"`
	TotalPago      float64 `json:"totalPago"`
	PagoMesAtual   float64 `json:"pagoMesAtual"`
}

// Resumo agrega as comissões por vendedor, incluindo o valor liberado no
// mês calendário corrente.
func (r *Repository) Resumo(vendedorID *uint, agora time.Time) ([]ResumoVendedor, error) {
	q := r.DB.Order("vendedor_nome ASC")
	if vendedorID != nil {
		q = q.Where("vendedor_id = ?", *vendedorID)
	}

	var comissoes []ComissaoPendente
	if err := q.Find(&comissoes).Error; err != nil {
		return nil, err
	}

	inicioMes := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
	porVendedor := map[uint]*ResumoVendedor{}
	ordem := []uint{}

	for i := range comissoes {
		c := &comissoes[i]
		resumo, ok := porVendedor[c.VendedorID]
		if !ok {
			resumo = &ResumoVendedor{VendedorID: c.VendedorID, VendedorNome: c.VendedorNome}
			porVendedor[c.VendedorID] = resumo
			ordem = append(ordem, c.VendedorID)
		}
		switch c.Status {
		case StatusBloqueada:
			resumo.QtdBloqueadas++
			resumo.TotalBloqueado += c.ValorComissao
		case StatusPaga:
			resumo.QtdPagas++
			resumo.TotalPago += c.ValorComissao
			if c.DataLiberacao != nil && !c.DataLiberacao.Before(inicioMes) {
				resumo.PagoMesAtual += c.ValorComissao
			}
		case StatusPerdida:
			resumo.QtdPerdidas++
		}
	}

	resumos := make([]ResumoVendedor, 0, len(ordem))
	for _, id := range ordem {
		resumos = append(resumos, *porVendedor[id])
	}
	return resumos, nil
}
