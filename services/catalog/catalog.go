package catalog

import "rhiclean/models"

// services is the static catalog of offered cleaning services. It is
// read-only reference data; nothing in the system mutates it.
var services = []models.Service{
	{
		ID:          1,
		Name:        "Standard Clean",
		Description: "A thorough cleaning of all rooms, including dusting, vacuuming, and mopping.",
		Price:       150,
		Duration:    "Approx. 2-3 hours",
	},
	{
		ID:          2,
		Name:        "Deep Clean",
		Description: "Includes everything in the standard clean, plus baseboards, light fixtures, and inside cabinets.",
		Price:       250,
		Duration:    "Approx. 4-5 hours",
	},
	{
		ID:          3,
		Name:        "Move-in / Move-out Clean",
		Description: "A comprehensive clean to prepare a home for a new resident. Includes inside of oven and fridge.",
		Price:       350,
		Duration:    "Approx. 5-6 hours",
	},
	{
		ID:          4,
		Name:        "Kitchen & Bath Focus",
		Description: "A detailed cleaning focusing on the most used areas of your home.",
		Price:       120,
		Duration:    "Approx. 1.5-2 hours",
	},
}

// Services returns the full catalog.
func Services() []models.Service {
	out := make([]models.Service, len(services))
	copy(out, services)
	return out
}

// FindByID looks a service up by its catalog ID.
func FindByID(id int) (*models.Service, bool) {
	for _, s := range services {
		if s.ID == id {
			out := s
			return &out, true
		}
	}
	return nil, false
}
