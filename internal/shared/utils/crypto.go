package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Coût bcrypt aligné sur les hashs existants de la base
const bcryptCost = 12

// HashPassword hash un mot de passe avec bcrypt
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("impossible de hasher le mot de passe: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword vérifie un mot de passe contre un hash bcrypt
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
