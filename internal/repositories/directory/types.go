package directory

import "github.com/wpc/servicesync/internal/models"

type SaveEmployeeInput struct {
	Employee *models.Employee
}

type GetEmployeeInput struct {
	EmployeeID string
}

type SaveWardInput struct {
	Ward *models.Ward
}

type GetWardInput struct {
	WardID string
}
