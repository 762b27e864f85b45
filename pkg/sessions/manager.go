package sessions

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gomodule/redigo/redis"

	. "yatube/pkg/common"
	"yatube/pkg/logger"
	"yatube/pkg/user"
)

const (
	redisNS = "yatubeSessions"

	// CookieName holds the signed session token in the browser.
	CookieName = "session"
)

type (
	sessionKey string

	SessionManager struct {
		secret []byte
		pool   *redis.Pool
		ttl    time.Duration
	}

	jwtClaims struct {
		User user.User `json:"user"`
		jwt.StandardClaims
	}
)

const SessionKey sessionKey = "authenticatedUser"

var (
	ErrNoAuth  = errors.New("sessions: no session found")
	ErrExpired = errors.New("sessions: session has been expired")
)

func NewSessionManager(secret string, pool *redis.Pool, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		pool:   pool,
		ttl:    ttl,
	}
}

func (sm *SessionManager) TTL() time.Duration {
	return sm.ttl
}

// Returns logged in user if the user from JWT token is valid
// and the session is still registered in Redis.
func (sm *SessionManager) UserFromToken(ctx context.Context, token string) (*user.User, error) {
	claims, err := sm.parse(token)
	if err != nil {
		return nil, err
	}

	if err := sm.CheckRedis(ctx, claims.User.Id, claims.Id); err != nil {
		return nil, fmt.Errorf("sessions/manager: Redis session is not valid: %w", err)
	}

	return &claims.User, nil
}

func (sm *SessionManager) parse(token string) (*jwtClaims, error) {
	if token == "" {
		return nil, ErrNoAuth
	}

	tokenString := strings.TrimPrefix(token, "Bearer ")
	parsed, err := jwt.ParseWithClaims(tokenString, &jwtClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("sessions: unexpected signing method %v", token.Header["alg"])
			}
			return sm.secret, nil
		})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok {
		return nil, errors.New("sessions: can't cast token to claim")
	}
	if !parsed.Valid {
		return nil, errors.New("sessions: token is not valid")
	}
	return claims, nil
}

// Goes through all user sessions and removes expired ones.
func (sm *SessionManager) CleanupUserSessions(ctx context.Context, userId int64) error {
	conn, err := sm.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("sessions/manager: can't get Redis connection: %w", err)
	}
	defer conn.Close()

	sessions, err := redis.StringMap(conn.Do("HGETALL", userKey(userId)))
	if err != nil {
		return fmt.Errorf("sessions/manager: can't HGETALL user sessions: %w", err)
	}

	nowTs := time.Now().Unix()
	for sessId, exp := range sessions {
		expTs, _ := strconv.ParseInt(exp, 10, 64)
		if nowTs > expTs {
			if _, err := conn.Do("HDEL", userKey(userId), sessId); err != nil {
				return fmt.Errorf("sessions/manager: can't HDEL session %s: %w", sessId, err)
			}
			logger.Log(ctx).Debugf("sessions/manager: session %s removed (expired at %s)", sessId, exp)
		}
	}

	return nil
}

func (sm *SessionManager) CheckRedis(ctx context.Context, userId int64, sessionId string) error {
	conn, err := sm.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("sessions/manager: can't get Redis connection: %w", err)
	}
	defer conn.Close()

	expiredTs, err := redis.Int64(conn.Do("HGET", userKey(userId), sessionId))
	if err == redis.ErrNil {
		return ErrNoAuth
	}
	if err != nil {
		return fmt.Errorf("sessions/manager: can't HGET from Redis: %w", err)
	}

	nowTs := time.Now().Unix()
	if nowTs > expiredTs {
		return ErrExpired
	}

	// Prolongate session if it expires in less than 24 hours
	// so an active user is not kicked off.
	if expiredTs-nowTs < int64((24 * time.Hour).Seconds()) {
		newExp := time.Now().Add(sm.ttl).Unix()
		if _, err := conn.Do("HSET", userKey(userId), sessionId, newExp); err != nil {
			return fmt.Errorf("sessions/manager: failed HSET to Redis: %w", err)
		}
	}

	return nil
}

func (sm *SessionManager) AddToRedis(ctx context.Context, userId int64, sessionId string, exp int64) error {
	conn, err := sm.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("sessions/manager: can't get Redis connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("HSET", userKey(userId), sessionId, exp); err != nil {
		return fmt.Errorf("sessions/manager: failed HSET to Redis: %w", err)
	}
	return nil
}

func (sm *SessionManager) CreateToken(ctx context.Context, u *user.User) (string, error) {
	sessionID := RandStringRunes(10)
	data := jwtClaims{
		User: user.User{Id: u.Id, Username: u.Username},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(sm.ttl).Unix(),
			IssuedAt:  time.Now().Unix(),
			Id:        sessionID,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, data).SignedString(sm.secret)
	if err != nil {
		return "", err
	}

	if err := sm.AddToRedis(ctx, u.Id, sessionID, data.ExpiresAt); err != nil {
		return "", err
	}

	return token, nil
}

// Destroy drops the session the token belongs to. An unknown or
// malformed token is not an error: there is nothing left to log out.
func (sm *SessionManager) Destroy(ctx context.Context, token string) error {
	claims, err := sm.parse(token)
	if err != nil {
		return nil
	}

	conn, err := sm.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("sessions/manager: can't get Redis connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("HDEL", userKey(claims.User.Id), claims.Id); err != nil {
		return fmt.Errorf("sessions/manager: failed HDEL from Redis: %w", err)
	}
	return nil
}

func userKey(userId int64) string {
	return redisNS + ":" + strconv.FormatInt(userId, 10)
}

func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, SessionKey, u)
}

func GetAuthUser(ctx context.Context) (*user.User, error) {
	u, ok := ctx.Value(SessionKey).(*user.User)
	if !ok || u == nil {
		return nil, ErrNoAuth
	}
	return u, nil
}
