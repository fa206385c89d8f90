package jwt

import (
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

var ErrNoToken = errors.New("no token held")

// Token內容，只用於顯示，不驗證簽章
type Claims struct {
	UserID    *int64     `json:"user_id,omitempty"`
	Username  string     `json:"username,omitempty"`
	Role      string     `json:"role,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   bool       `json:"expired"`
}

// 解析JWT Token內容，簽章交由Auth服務驗證
func Inspect(tokenString string, now time.Time) (Claims, error) {
	var claims Claims
	if tokenString == "" {
		return claims, ErrNoToken
	}

	mapClaims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, mapClaims)
	if err != nil {
		return claims, err
	}

	//Auth服務使用user_id，舊版後端使用userID
	for _, key := range []string{"user_id", "userID"} {
		if v, ok := mapClaims[key].(float64); ok {
			id := int64(v)
			claims.UserID = &id
			break
		}
	}
	if v, ok := mapClaims["username"].(string); ok {
		claims.Username = v
	}
	if v, ok := mapClaims["role"].(string); ok {
		claims.Role = v
	}

	exp, err := mapClaims.GetExpirationTime()
	if err == nil && exp != nil {
		expiresAt := exp.Time
		claims.ExpiresAt = &expiresAt
		claims.Expired = !now.Before(expiresAt)
	}

	return claims, nil
}
