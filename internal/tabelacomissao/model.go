// internal/tabelacomissao/model.go
package tabelacomissao

import (
	"time"

	"gorm.io/gorm"
)

// TabelaComissao guarda os parâmetros de comissionamento.
// A linha mais recente é a única vigente.
type TabelaComissao struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Meta de vendas no mês para o tier máximo (ouro).
	MetaVendas int `gorm:"not null;default:10" json:"metaVendas"`

	// Percentuais de MRR por tier (bronze, prata, ouro).
	MrrTier1 float64 `gorm:"not null;default:5" json:"mrrTier1"`
	MrrTier2 float64 `gorm:"not null;default:10" json:"mrrTier2"`
	MrrTier3 float64 `gorm:"not null;default:20" json:"mrrTier3"`

	// Percentuais de setup por tier (bronze, prata, ouro).
	SetupTier1 float64 `gorm:"not null;default:15" json:"setupTier1"`
	SetupTier2 float64 `gorm:"not null;default:25" json:"setupTier2"`
	SetupTier3 float64 `gorm:"not null;default:40" json:"setupTier3"`

	// Percentual de recorrência por posição no ciclo (índice 0 = 1º mês).
	MrrRecorrencia []float64 `gorm:"serializer:json;type:text" json:"mrrRecorrencia"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&TabelaComissao{})
}

// Padrao retorna a configuração usada quando o banco está indisponível
// ou ainda não há linha cadastrada.
func Padrao() *TabelaComissao {
	return &TabelaComissao{
		MetaVendas:     10,
		MrrTier1:       5,
		MrrTier2:       10,
		MrrTier3:       20,
		SetupTier1:     15,
		SetupTier2:     25,
		SetupTier3:     40,
		MrrRecorrencia: []float64{30, 20, 10, 10, 10, 10, 10},
	}
}

// PercentualRecorrencia devolve o percentual da posição do ciclo (base 0),
// ou 0 após o fim da recorrência.
func (t *TabelaComissao) PercentualRecorrencia(posicao int) float64 {
	if posicao < 0 || posicao >= len(t.MrrRecorrencia) {
		return 0
	}
	return t.MrrRecorrencia[posicao]
}
