package models

// Brand is a vehicle make sold and serviced by the shop.
type Brand string

const (
	BrandChangan Brand = "CHANGAN"
	BrandGWM     Brand = "GWM"
	BrandZX      Brand = "ZX"
	BrandOther   Brand = "Otro"
)

// VehicleType distinguishes cars from motorcycles.
type VehicleType string

const (
	VehicleCar        VehicleType = "car"
	VehicleMotorcycle VehicleType = "motorcycle"
)

// VehicleInfo is the vehicle snapshot captured when a service is booked.
type VehicleInfo struct {
	Brand   Brand       `json:"brand"`
	Model   string      `json:"model"`
	Year    int         `json:"year"`
	Plate   string      `json:"plate,omitempty"`
	Type    VehicleType `json:"type"`
	Mileage *int        `json:"mileage,omitempty"` // in kilometers
}

// IsValidBrand checks if a brand is one the shop knows about
func IsValidBrand(b Brand) bool {
	switch b {
	case BrandChangan, BrandGWM, BrandZX, BrandOther:
		return true
	default:
		return false
	}
}
