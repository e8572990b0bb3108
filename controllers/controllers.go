package controllers

// Controllers holds all controller instances
type Controllers struct {
	Auth    *AuthController
	Profile *ProfileController
}

// NewControllers creates and initializes all controller instances
func NewControllers() *Controllers {
	return &Controllers{
		Auth:    NewAuthController(),
		Profile: NewProfileController(),
	}
}
