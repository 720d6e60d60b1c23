// Package profile provides persistence for experience profiles
package profile

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/KirkDiggler/rpg-progression/internal/repositories/profile Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// DefaultTopLimit is used when ListTop is called with a non-positive limit
const DefaultTopLimit = 10

// Repository defines the interface for profile persistence
type Repository interface {
	// Get retrieves a profile by user ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the profile doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Create stores a new profile
	// Returns errors.AlreadyExists if a profile with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Update replaces an existing profile
	// Returns errors.NotFound if the profile doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListTop returns profiles ordered by xp descending, then ID ascending
	ListTop(ctx context.Context, input ListTopInput) (*ListTopOutput, error)

	// GetRank returns the 1-based leaderboard position of a profile
	// Returns errors.NotFound if the profile doesn't exist
	GetRank(ctx context.Context, input GetRankInput) (*GetRankOutput, error)
}

// GetInput defines the input for getting a profile
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a profile
type GetOutput struct {
	Profile *entities.Profile
}

// CreateInput defines the input for creating a profile
type CreateInput struct {
	Profile *entities.Profile
}

// CreateOutput defines the output for creating a profile
type CreateOutput struct {
	Profile *entities.Profile
}

// UpdateInput defines the input for updating a profile
type UpdateInput struct {
	Profile *entities.Profile
}

// UpdateOutput defines the output for updating a profile
type UpdateOutput struct {
	Profile *entities.Profile
}

// ListTopInput defines the input for listing the leaderboard
type ListTopInput struct {
	Limit int
}

// ListTopOutput defines the output for listing the leaderboard
type ListTopOutput struct {
	Profiles []*entities.Profile
}

// GetRankInput defines the input for getting a rank
type GetRankInput struct {
	ID string
}

// GetRankOutput defines the output for getting a rank
type GetRankOutput struct {
	Rank  int
	Total int
}
