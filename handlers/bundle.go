// File: rhiclean/handlers/bundle.go
package handlers

// HandlerBundle groups all endpoint handlers into one struct so route
// registration takes a single dependency.
type HandlerBundle struct {
	Booking *BookingHandler
	Admin   *AdminHandler
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Wizard  *WizardHandler
}
