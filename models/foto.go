package models

// Foto categories accepted by the API.
var CategoriasFoto = []string{"fachada", "interior", "produtos", "equipe"}

// MaxFotos caps the gallery size.
const MaxFotos = 12

// Foto is a gallery entry owned by the Sorveteria. Ordem is assigned as
// photo count + 1 at insertion and is not renumbered when photos are
// removed, so gaps are expected.
type Foto struct {
	ID        int    `json:"id"`
	URL       string `json:"url"`
	Descricao string `json:"descricao,omitempty"`
	Categoria string `json:"categoria"`
	Ordem     int    `json:"ordem"`
}
