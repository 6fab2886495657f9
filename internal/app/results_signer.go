package app

import (
	"errors"
	"fmt"
	"time"

	"kartrace/internal/domain"

	"github.com/form3tech-oss/jwt-go"
)

const defaultResultsTokenTTL = 24 * time.Hour

var (
	ErrSignerNotConfigured   = errors.New("results signer is not configured")
	ErrInvalidResultsToken   = errors.New("invalid results token")
	errUnexpectedSigningAlgo = errors.New("unexpected signing method")
)

// ResultEntry is one competitor's line in a signed result.
type ResultEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Position    int     `json:"pos"`
	Finished    bool    `json:"fin"`
	TotalTime   float64 `json:"time,omitempty"`
	BestLapTime float64 `json:"best,omitempty"`
}

// ResultsClaims are the JWT claims of a signed race result.
type ResultsClaims struct {
	SessionID string        `json:"sid"`
	TotalLaps int           `json:"laps"`
	Results   []ResultEntry `json:"results"`
	jwt.StandardClaims
}

// ResultsSigner issues and verifies HS256 tokens carrying final standings, so clients
// can present a race result to other services without trusting their own report.
type ResultsSigner struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewResultsSigner(secret, issuer string) *ResultsSigner {
	return &ResultsSigner{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    defaultResultsTokenTTL,
	}
}

// Sign encodes the standings of a session into a signed token.
func (s *ResultsSigner) Sign(sessionID string, totalLaps int, standings []domain.ProgressState) (string, error) {
	if s == nil || len(s.secret) == 0 {
		return "", ErrSignerNotConfigured
	}
	if sessionID == "" {
		return "", fmt.Errorf("session id is required")
	}

	entries := make([]ResultEntry, 0, len(standings))
	for _, p := range standings {
		entries = append(entries, ResultEntry{
			ID:          string(p.ID),
			Name:        p.DisplayName,
			Position:    p.CurrentPosition,
			Finished:    p.Finished,
			TotalTime:   p.TotalRaceTime,
			BestLapTime: p.BestLapTime,
		})
	}

	now := time.Now()
	claims := ResultsClaims{
		SessionID: sessionID,
		TotalLaps: totalLaps,
		Results:   entries,
		StandardClaims: jwt.StandardClaims{
			Issuer:    s.issuer,
			Subject:   sessionID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses a token issued by Sign and returns its claims.
func (s *ResultsSigner) Verify(tokenString string) (*ResultsClaims, error) {
	if s == nil || len(s.secret) == 0 {
		return nil, ErrSignerNotConfigured
	}

	claims := &ResultsClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningAlgo
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResultsToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidResultsToken
	}
	if claims.Issuer != s.issuer {
		return nil, fmt.Errorf("%w: issuer %q", ErrInvalidResultsToken, claims.Issuer)
	}
	return claims, nil
}
