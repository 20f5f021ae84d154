package catalog

import "github.com/ukydev/premier-motors/internal/models"

var allBrands = []models.Brand{models.BrandChangan, models.BrandGWM, models.BrandZX}

var vehicleModels = map[models.Brand][]string{
	models.BrandChangan: {
		"New CS15",
		"New CS35 Plus",
		"New CS55 Plus",
		"UNI-T",
		"UNI-K",
		"New AIswin",
		"Titan Series",
	},
	models.BrandGWM: {
		"Wingle 7",
		"Poer Automático",
		"Poer Mecánico",
		"Haval H6",
		"Haval H6 Hev",
		"Haval Jolion",
		"Haval Jolion Hev",
		"Wingle 5",
	},
	models.BrandZX: {
		"Terralord Automático",
		"Terralord Mecánico",
		"GrandTiger",
		"GrandLion",
	},
	models.BrandOther: {"Otro modelo"},
}

var brandOrder = []models.Brand{models.BrandChangan, models.BrandGWM, models.BrandZX, models.BrandOther}

var services = []models.Service{
	{
		ID:               "pint-1",
		Name:             "Reparaciones de pintura",
		Category:         models.CategoryPaint,
		Description:      "Reparación profesional de daños en la pintura",
		Price:            1500,
		Duration:         120,
		CompatibleBrands: allBrands,
		CompatibleModels: []string{},
	},
	{
		ID:               "pint-2",
		Name:             "Pulido general",
		Category:         models.CategoryPaint,
		Description:      "Pulido completo del vehículo para restaurar brillo",
		Price:            800,
		Duration:         90,
		CompatibleBrands: allBrands,
	},
	{
		ID:               "pint-3",
		Name:             "Polarizados",
		Category:         models.CategoryPaint,
		Description:      "Instalación de película polarizada para ventanas",
		Price:            1200,
		Duration:         60,
		CompatibleBrands: allBrands,
	},
	{
		ID:               "mec-1",
		Name:             "Reparaciones de taller mecánico",
		Category:         models.CategoryMechanical,
		Description:      "Reparaciones generales del sistema mecánico",
		Price:            2500,
		Duration:         180,
		CompatibleBrands: allBrands,
	},
	{
		ID:               "mec-2",
		Name:             "Reemplazo de frenos",
		Category:         models.CategoryMechanical,
		Description:      "Reemplazo completo de pastillas y discos de freno",
		Price:            1800,
		Duration:         90,
		CompatibleBrands: allBrands,
	},
	{
		ID:               "mec-3",
		Name:             "Reemplazo de kit de embrague",
		Category:         models.CategoryMechanical,
		Description:      "Cambio completo del kit de embrague",
		Price:            3200,
		Duration:         240,
		CompatibleBrands: allBrands,
		CompatibleModels: []string{"Poer Mecánico", "Terralord Mecánico"},
	},
	{
		ID:                  "mant-1",
		Name:                "Mantenimiento 10,000 km",
		Category:            models.CategoryMaintenance,
		Description:         "Mantenimiento preventivo para 10,000 km",
		Price:               7650,
		Duration:            120,
		CompatibleBrands:    allBrands,
		RequiresMileage:     true,
		RecommendedInterval: 10000,
	},
	{
		ID:                  "mant-2",
		Name:                "Mantenimiento 20,000 km",
		Category:            models.CategoryMaintenance,
		Description:         "Mantenimiento preventivo para 20,000 km",
		Price:               9500,
		Duration:            150,
		CompatibleBrands:    allBrands,
		RequiresMileage:     true,
		RecommendedInterval: 20000,
	},
	{
		ID:               "mant-3",
		Name:             "Cambio de aceite",
		Category:         models.CategoryMaintenance,
		Description:      "Cambio de aceite y filtro",
		Price:            800,
		Duration:         45,
		CompatibleBrands: allBrands,
	},
	{
		ID:               "acc-1",
		Name:             "Accesorios exteriores",
		Category:         models.CategoryAccessories,
		Description:      "Instalación de accesorios exteriores",
		Price:            1200,
		Duration:         60,
		CompatibleBrands: allBrands,
	},
	{
		ID:               "acc-2",
		Name:             "Sistemas de audio",
		Category:         models.CategoryAccessories,
		Description:      "Instalación de sistema de audio premium",
		Price:            3500,
		Duration:         120,
		CompatibleBrands: allBrands,
	},
}

// MaintenanceTier is a prepaid preventive maintenance package.
type MaintenanceTier struct {
	Mileage int `json:"mileage"`
	Price   int `json:"price"`
}

// Tiers are ordered by mileage.
var maintenanceTiers = []MaintenanceTier{
	{Mileage: 5000, Price: 6500},
	{Mileage: 10000, Price: 7650},
	{Mileage: 15000, Price: 8200},
	{Mileage: 20000, Price: 9500},
	{Mileage: 25000, Price: 11000},
}
