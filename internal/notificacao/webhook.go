package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
)

// Notificador envia alertas de mudança de estado das comissões para um
// webhook externo (canal do time comercial). URL vazia desliga o envio.
type Notificador struct {
	URL    string
	Client *http.Client
}

func NewNotificador(url string) *Notificador {
	return &Notificador{URL: url, Client: http.DefaultClient}
}

func (n *Notificador) enviar(payload map[string]interface{}) {
	if n == nil || n.URL == "" {
		return
	}
	body, _ := json.Marshal(payload)

	resp, err := n.Client.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}

// ComissoesLiberadas alerta que comissões bloqueadas foram liberadas.
func (n *Notificador) ComissoesLiberadas(cnpj string, quantidade int) {
	n.enviar(map[string]interface{}{
		"mensagem":   "Comissões liberadas após regularização de parcelas",
		"cnpj":       cnpj,
		"quantidade": quantidade,
	})
}

// ComissoesPerdidas alerta que comissões bloqueadas foram perdidas.
func (n *Notificador) ComissoesPerdidas(cnpj string, quantidade int, motivo string) {
	n.enviar(map[string]interface{}{
		"mensagem":   "Comissões bloqueadas marcadas como perdidas",
		"cnpj":       cnpj,
		"quantidade": quantidade,
		"motivo":     motivo,
	})
}
