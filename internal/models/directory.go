package models

// Employee represents a kitchen employee who runs deliveries
type Employee struct {
	// ID is the internal unique identifier for the employee
	ID string

	// BadgeID is the employee's badge number, used in session identifiers
	BadgeID string

	// Name is the employee's display name
	Name string

	// Role is the employee's job role
	Role string

	// HospitalID references the hospital the employee works at
	HospitalID string

	// Active indicates the employee may start sessions
	Active bool
}

// Ward represents a hospital ward that receives meal deliveries
type Ward struct {
	// ID is the internal unique identifier for the ward
	ID string

	// Name is the ward's display name
	Name string

	// HospitalID references the hospital the ward belongs to
	HospitalID string

	// HospitalName is the hospital's display name
	HospitalName string
}
