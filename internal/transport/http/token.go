package http

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SessionToken struct {
	DeviceID   string    `json:"device_id"`
	PuzzleID   string    `json:"puzzle_id"`
	Seed       string    `json:"seed"`
	Difficulty string    `json:"difficulty"`
	StartedAt  time.Time `json:"started_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// sessionClaims embeds SessionToken's fields as registered-plus-custom JWT
// claims so the session survives a round trip through jwt.NewWithClaims
// without a separate marshaling step.
type sessionClaims struct {
	jwt.RegisteredClaims
	DeviceID   string `json:"device_id"`
	PuzzleID   string `json:"puzzle_id"`
	Seed       string `json:"seed"`
	Difficulty string `json:"difficulty"`
	StartedAt  int64  `json:"started_at"`
}

func createToken(secret string, session SessionToken) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(session.StartedAt),
		},
		DeviceID:   session.DeviceID,
		PuzzleID:   session.PuzzleID,
		Seed:       session.Seed,
		Difficulty: session.Difficulty,
		StartedAt:  session.StartedAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func verifyToken(secret, token string) (*SessionToken, error) {
	claims := &sessionClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	session := &SessionToken{
		DeviceID:   claims.DeviceID,
		PuzzleID:   claims.PuzzleID,
		Seed:       claims.Seed,
		Difficulty: claims.Difficulty,
		StartedAt:  time.Unix(claims.StartedAt, 0).UTC(),
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}
