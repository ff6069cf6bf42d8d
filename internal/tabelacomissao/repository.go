// internal/tabelacomissao/repository.go
package tabelacomissao

import (
	"gorm.io/gorm"
)

// Repository encapsula o acesso à configuração de comissões.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarAtiva retorna a configuração vigente (linha mais recente).
// Retorna gorm.ErrRecordNotFound se nenhuma linha existir.
func (r *Repository) BuscarAtiva() (*TabelaComissao, error) {
	var cfg TabelaComissao
	if err := r.DB.Order("id DESC").First(&cfg).Error; err != nil {
		return nil, err
	}
	if len(cfg.MrrRecorrencia) == 0 {
		cfg.MrrRecorrencia = Padrao().MrrRecorrencia
	}
	return &cfg, nil
}

// GarantirPadrao cria a linha padrão caso a tabela esteja vazia.
func (r *Repository) GarantirPadrao() error {
	var total int64
	if err := r.DB.Model(&TabelaComissao{}).Count(&total).Error; err != nil {
		return err
	}
	if total > 0 {
		return nil
	}
	return r.DB.Create(Padrao()).Error
}

// AtualizarParcial aplica somente os campos informados sobre a linha vigente
// e retorna a configuração completa resultante.
func (r *Repository) AtualizarParcial(campos map[string]interface{}) (*TabelaComissao, error) {
	if len(campos) == 0 {
		return r.BuscarAtiva()
	}

	atual, err := r.BuscarAtiva()
	if err != nil {
		return nil, err
	}

	if err := r.DB.Model(&TabelaComissao{}).
		Where("id = ?", atual.ID).
		Updates(campos).Error; err != nil {
		return nil, err
	}
	return r.BuscarAtiva()
}
