package handlers

import (
	"net/http"
	"os"

	"sorveteria-backend/dtos"
	"sorveteria-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler authenticates the single content manager configured through
// ADMIN_EMAIL / ADMIN_PASSWORD. The password is hashed once at startup so
// the plaintext never sticks around.
type AuthHandler struct {
	Email        string
	PasswordHash []byte
}

func NewAuthHandler() (*AuthHandler, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(os.Getenv("ADMIN_PASSWORD")), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthHandler{
		Email:        os.Getenv("ADMIN_EMAIL"),
		PasswordHash: hash,
	}, nil
}

// Login checks the credentials and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if req.Email != h.Email ||
		bcrypt.CompareHashAndPassword(h.PasswordHash, []byte(req.Senha)) != nil {
		respondError(c, http.StatusUnauthorized, errorBody{
			Code:    "UNAUTHORIZED",
			Message: "Credenciais inválidas",
		})
		return
	}

	token, err := utils.GenerateToken(req.Email)
	if err != nil {
		respondError(c, http.StatusInternalServerError, errorBody{
			Code:    "INTERNAL",
			Message: "Falha ao gerar token",
		})
		return
	}

	respondData(c, http.StatusOK, gin.H{"token": token, "email": req.Email})
}
