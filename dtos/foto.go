package dtos

// AddFotoRequest validates a new gallery photo.
type AddFotoRequest struct {
	URL       string `json:"url" binding:"required,url"`
	Descricao string `json:"descricao" binding:"omitempty,max=150"`
	Categoria string `json:"categoria" binding:"required,oneof=fachada interior produtos equipe"`
}
