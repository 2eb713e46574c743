package paseto

import (
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Attendance-Tracker/config"
	"Attendance-Tracker/models"
)

var (
	pasetoInstance = paseto.NewV2()
	keyOnce        sync.Once
	symmetricKey   []byte
)

// symmetricSecret loads the token secret on first use. Configuration is
// already validated at startup; a bad secret here is unrecoverable.
func symmetricSecret() []byte {
	keyOnce.Do(func() {
		cfg := config.LoadConfig()

		decodedKey, err := base64.URLEncoding.DecodeString(cfg.PasetoSecret)
		if err != nil {
			panic(fmt.Sprintf("Failed to decode PASETO_SECRET: %v", err))
		}
		if len(decodedKey) != 32 {
			panic(fmt.Sprintf("PASETO_SECRET must be exactly 32 bytes after Base64 decoding, got %d bytes", len(decodedKey)))
		}

		symmetricKey = decodedKey
	})
	return symmetricKey
}

func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	exp := now.Add(24 * time.Hour)

	token := paseto.JSONToken{
		IssuedAt:   now,
		Expiration: exp,
		NotBefore:  now,
	}

	// Custom claims are stored as strings
	token.Set("user_id", user.ID.Hex())
	token.Set("username", user.Username)
	token.Set("is_staff", fmt.Sprintf("%v", user.IsStaff))
	token.Set("is_superuser", fmt.Sprintf("%v", user.IsSuperuser))

	return pasetoInstance.Encrypt(symmetricSecret(), token, "")
}

func ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := pasetoInstance.Decrypt(tokenString, symmetricSecret(), &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt paseto token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userID, err := primitive.ObjectIDFromHex(token.Get("user_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid user_id format: %v", err)
	}

	return &models.Claims{
		UserID:      userID,
		Username:    token.Get("username"),
		IsStaff:     token.Get("is_staff") == "true",
		IsSuperuser: token.Get("is_superuser") == "true",
	}, nil
}
