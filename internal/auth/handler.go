// internal/auth/handler.go
package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KromaEnergia/api-comissoes/internal/utils"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

type loginDTO struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// Login valida e-mail e senha e emite o token de acesso.
// POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body loginDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Payload inválido", http.StatusBadRequest)
		return
	}
	if body.Email == "" || body.Senha == "" {
		http.Error(w, "E-mail e senha são obrigatórios", http.StatusBadRequest)
		return
	}

	var usuario Usuario
	err := h.DB.Where("email = ?", body.Email).First(&usuario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !utils.VerificarSenha(usuario.SenhaHash, body.Senha)) {
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Erro ao buscar usuário", http.StatusInternalServerError)
		return
	}

	token, err := GerarToken(usuario.ID, usuario.IsAdmin)
	if err != nil {
		http.Error(w, "Erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":   token,
		"isAdmin": usuario.IsAdmin,
		"nome":    usuario.Nome,
	})
}
