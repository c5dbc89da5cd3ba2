package directory

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/wpc/servicesync/internal/repositories/directory Repository

import (
	"context"

	"github.com/wpc/servicesync/internal/models"
)

// Repository defines the interface for the employee/ward directory
type Repository interface {
	// SaveEmployee persists an employee record
	SaveEmployee(ctx context.Context, input *SaveEmployeeInput) error

	// GetEmployee retrieves an employee by ID
	GetEmployee(ctx context.Context, input *GetEmployeeInput) (*models.Employee, error)

	// SaveWard persists a ward record
	SaveWard(ctx context.Context, input *SaveWardInput) error

	// GetWard retrieves a ward by ID
	GetWard(ctx context.Context, input *GetWardInput) (*models.Ward, error)
}
