package auth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"
)

const refreshTokenFile = "refresh_tokens.json"

// refreshTokenTTL bounds how long a refresh token stays usable.
const refreshTokenTTL = 7 * 24 * time.Hour

type refreshEntry struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

var (
	refreshTokenStore = map[string]refreshEntry{}
	mu                sync.Mutex
	loaded            bool
)

// IssueRefreshToken creates and persists an opaque refresh token for a
// username.
func IssueRefreshToken(username string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()
	refreshTokenStore[token] = refreshEntry{
		Username:  username,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	saveRefreshTokens()
	return token, nil
}

// RedeemRefreshToken exchanges a refresh token for its username and
// rotates it out of the store. Expired or unknown tokens return false.
func RedeemRefreshToken(token string) (string, bool) {
	mu.Lock()
	defer mu.Unlock()
	ensureLoaded()

	entry, ok := refreshTokenStore[token]
	if !ok {
		return "", false
	}
	delete(refreshTokenStore, token)
	saveRefreshTokens()
	if time.Now().After(entry.ExpiresAt) {
		return "", false
	}
	return entry.Username, true
}

// StartRefreshTokenCleaner prunes expired tokens on the given interval.
func StartRefreshTokenCleaner(interval time.Duration) {
	for {
		time.Sleep(interval)
		mu.Lock()
		ensureLoaded()
		now := time.Now()
		changed := false
		for token, entry := range refreshTokenStore {
			if now.After(entry.ExpiresAt) {
				delete(refreshTokenStore, token)
				changed = true
			}
		}
		if changed {
			saveRefreshTokens()
		}
		mu.Unlock()
	}
}

func ensureLoaded() {
	if loaded {
		return
	}
	loaded = true
	data, err := os.ReadFile(refreshTokenFile)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("could not load refresh token file: %v", err)
		}
		return
	}
	if err := json.Unmarshal(data, &refreshTokenStore); err != nil {
		log.Printf("could not parse refresh token file: %v", err)
		refreshTokenStore = map[string]refreshEntry{}
	}
}

func saveRefreshTokens() {
	data, err := json.MarshalIndent(refreshTokenStore, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(refreshTokenFile, data, 0600); err != nil {
		log.Printf("could not save refresh token file: %v", err)
	}
}
