package models

// CheckpointType identifies a QR-coded workflow checkpoint
type CheckpointType string

const (
	// CheckpointKitchenExit is the QR code scanned when leaving the kitchen
	CheckpointKitchenExit CheckpointType = "KITCHEN_EXIT"

	// CheckpointWardArrival is the QR code scanned on arrival at the ward
	CheckpointWardArrival CheckpointType = "WARD_ARRIVAL"

	// CheckpointNurseStation is the QR code scanned at the nurse station
	CheckpointNurseStation CheckpointType = "NURSE_STATION"
)

// IsValid reports whether the checkpoint type is one of the known values
func (c CheckpointType) IsValid() bool {
	switch c {
	case CheckpointKitchenExit, CheckpointWardArrival, CheckpointNurseStation:
		return true
	default:
		return false
	}
}

// DisplayName returns the human-readable name of the checkpoint
func (c CheckpointType) DisplayName() string {
	switch c {
	case CheckpointKitchenExit:
		return "Kitchen Exit"
	case CheckpointWardArrival:
		return "Ward Arrival"
	case CheckpointNurseStation:
		return "Nurse Station"
	default:
		return string(c)
	}
}

// QRPrefix returns the prefix a scanned QR code must carry for this
// checkpoint. The mapping is fixed; scans are matched case-sensitively.
func (c CheckpointType) QRPrefix() string {
	switch c {
	case CheckpointKitchenExit:
		return "KITCHEN_"
	case CheckpointWardArrival:
		return "WARD_"
	case CheckpointNurseStation:
		return "NURSE_"
	default:
		return ""
	}
}
