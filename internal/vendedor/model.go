// internal/vendedor/model.go
package vendedor

import (
	"time"

	"gorm.io/gorm"
)

// VendaAntigaID identifica vendas antigas/sem vendedor mapeado.
const VendaAntigaID uint = 99999999

// VendaAntigaNome é o nome exibido para o vendedor sentinela.
const VendaAntigaNome = "Venda Antiga"

// Vendedor é a tabela de vendedores usada para resolver o nome livre vindo
// do CRM em um id estável.
type Vendedor struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Nome  string `gorm:"size:255;not null" json:"nome"`
	Email string `gorm:"size:255" json:"email"`

	// NomeNormalizado é a chave de busca (minúsculas, sem espaços nas pontas).
	NomeNormalizado string `gorm:"size:255;not null;uniqueIndex" json:"-"`

	Ativo     bool      `gorm:"not null;default:true" json:"ativo"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Vendedor{})
}
