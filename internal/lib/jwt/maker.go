// Package jwt реализует генерацию и проверку JWT токенов, которыми
// вызывающие сервисы подписывают запросы к API нагрузки.
package jwt

import (
	"errors"
	"fmt"
	"time"
)

// MinSecretLength — минимальная длина секрета HMAC в байтах (256 бит).
const MinSecretLength = 32

// ErrWeakSecret возвращается, если секрет короче MinSecretLength.
var ErrWeakSecret = errors.New("jwt secret must be at least 256 bits")

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создаёт токен, subject которого — username.
	GenerateToken(username string) (string, error)
	// ParseToken проверяет подпись и срок действия и возвращает claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey []byte        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) (*MakerImpl, error) {
	const op = "jwt.NewJWTMaker"
	if len(secretKey) < MinSecretLength {
		return nil, fmt.Errorf("%s: %w", op, ErrWeakSecret)
	}
	return &MakerImpl{
		secretKey: []byte(secretKey),
		tokenTTL:  ttl,
	}, nil
}
