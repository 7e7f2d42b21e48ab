package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/harshjain-14/Personal-Wealth-Checkup-Backend/internal/api/response"
)

// Time tokens expire quickly; they only need to survive the round trip from
// the caller that just generated one.
const (
	timeTokenTTL  = 5 * time.Minute
	timeTokenSkew = 30 * time.Second
)

// APIKeyMiddleware guards mutating broker routes with a shared internal key.
// Callers present the key in X-API-Key plus a fresh time token in
// X-Time-Token, so a leaked request log cannot be replayed indefinitely.
//
// The expected key is read from INTERNAL_API_KEY on every request; if the
// variable is not set the route fails closed with 500 rather than allowing
// unauthenticated access.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expectedKey := os.Getenv("INTERNAL_API_KEY")
		if expectedKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "authentication failed", "Authentication not loaded")
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Missing API key")
			return
		}
		if !subtleCompare(apiKey, expectedKey) {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Missing Time token")
			return
		}
		if !validateTimeToken(expectedKey, timeToken) {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GenerateTimeToken returns a token binding the API key to the current time.
// The token is "<unix-seconds>:<hmac-sha256(key, unix-seconds)>".
func GenerateTimeToken(apiKey string) string {
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	return ts + ":" + signTimestamp(apiKey, ts)
}

func signTimestamp(apiKey, ts string) string {
	mac := hmac.New(sha256.New, []byte(apiKey))
	mac.Write([]byte(ts))
	return hex.EncodeToString(mac.Sum(nil))
}

func validateTimeToken(apiKey, token string) bool {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return false
	}

	expected := signTimestamp(apiKey, parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return false
	}

	ts, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return false
	}

	age := time.Since(time.Unix(ts, 0))
	return age > -timeTokenSkew && age < timeTokenTTL
}

func subtleCompare(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
