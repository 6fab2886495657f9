package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"kartrace/internal/ports"
)

// Service handles post-auth onboarding for new racers.
type Service struct {
	accounts ports.AccountPort
	rng      *rand.Rand
}

// NewService constructs an onboarding service.
// accounts must be non-nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		rng:      rng,
	}
}

// OnboardNewRacer gives a newly created account a generated racer name, which
// is what standings and results show for the racer.
// Returns the name applied and an error if the profile update fails.
func (s *Service) OnboardNewRacer(ctx context.Context, userID string) (string, error) {
	if s.accounts == nil {
		return "", fmt.Errorf("onboarding service not configured")
	}
	if userID == "" {
		return "", fmt.Errorf("userID is required")
	}

	name := s.generateRacerName()
	if err := s.accounts.UpdateProfile(ctx, userID, name, name); err != nil {
		return "", fmt.Errorf("failed to set racer name: %w", err)
	}
	return name, nil
}

func (s *Service) generateRacerName() string {
	adjectives := []string{"Turbo", "Nitro", "Drifty", "Speedy", "Rapid", "Blazing", "Zippy", "Rocket", "Sonic", "Dizzy"}
	nouns := []string{"Kart", "Racer", "Wheel", "Piston", "Gecko", "Comet", "Hornet", "Falcon", "Cheetah", "Bolt"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(900) + 100

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
