package bot

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

// BotIDPrefix marks user ids of server-driven racers.
const BotIDPrefix = "bot-"

type BotIdentity struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Difficulty  string `json:"difficulty"` // "easy", "medium", "hard"
}

var (
	botIdentities []BotIdentity
	loadOnce      sync.Once
	loadErr       error
)

// LoadIdentities loads the bot profiles from the given path.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}

		var identities []BotIdentity
		if err := json.Unmarshal(data, &identities); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}

		for _, identity := range identities {
			if !strings.HasPrefix(identity.UserID, BotIDPrefix) {
				continue
			}
			botIdentities = append(botIdentities, identity)
		}
	})
	return loadErr
}

// GetBotIdentity returns an identity for a bot by index (mod pool size).
func GetBotIdentity(index int) BotIdentity {
	if len(botIdentities) == 0 {
		return BotIdentity{
			UserID:      fmt.Sprintf("%s%d", BotIDPrefix, index),
			DisplayName: fmt.Sprintf("AI Racer %d", index+1),
			Difficulty:  LevelMedium.String(),
		}
	}
	return botIdentities[index%len(botIdentities)]
}

// IsBot reports whether the given user ID belongs to a server-driven racer.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, BotIDPrefix)
}
