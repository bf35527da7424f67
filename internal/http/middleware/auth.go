package middleware

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/gin-gonic/gin"
)

// bcrypt work factor; matches what the account base was hashed with.
const passwordCost = 13

// uses bcrypt to hash a plaintext password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), passwordCost)
	return string(bytes), err
}

// compares a bcrypt hash with the plaintext.
func CheckPassword(hash, plain string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// retrieves the authenticated user id from the Gin context
// (after JWTMiddleware has run).
func CurrentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get("currentUserID")
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
