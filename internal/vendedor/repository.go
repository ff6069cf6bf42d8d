// internal/vendedor/repository.go
package vendedor

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository encapsula o acesso a dados de vendedores.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Normalizar reduz um nome livre do CRM à chave de busca.
func Normalizar(nome string) string {
	return strings.ToLower(strings.TrimSpace(nome))
}

// Listar retorna os vendedores ativos, sentinela incluído.
func (r *Repository) Listar() ([]Vendedor, error) {
	var vendedores []Vendedor
	err := r.DB.Where("ativo = ?", true).Order("nome ASC").Find(&vendedores).Error
	return vendedores, err
}

// BuscarPorNome resolve um nome livre em um vendedor cadastrado.
// Retorna gorm.ErrRecordNotFound quando não há mapeamento.
func (r *Repository) BuscarPorNome(nome string) (*Vendedor, error) {
	var v Vendedor
	err := r.DB.Where("nome_normalizado = ?", Normalizar(nome)).First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// IDParaNome resolve o nome em id; nomes vazios ou não mapeados caem no
// sentinela de venda antiga.
func (r *Repository) IDParaNome(nome string) uint {
	if strings.TrimSpace(nome) == "" {
		return VendaAntigaID
	}
	v, err := r.BuscarPorNome(nome)
	if err != nil {
		return VendaAntigaID
	}
	return v.ID
}

// Criar cadastra um vendedor, preenchendo a chave normalizada.
func (r *Repository) Criar(v *Vendedor) error {
	v.NomeNormalizado = Normalizar(v.Nome)
	if v.NomeNormalizado == "" {
		return errors.New("nome do vendedor é obrigatório")
	}
	return r.DB.Create(v).Error
}

// GarantirVendaAntiga cadastra o sentinela se ainda não existir.
func (r *Repository) GarantirVendaAntiga() error {
	sentinela := Vendedor{
		ID:              VendaAntigaID,
		Nome:            VendaAntigaNome,
		NomeNormalizado: Normalizar(VendaAntigaNome),
		Ativo:           true,
	}
	return r.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&sentinela).Error
}
