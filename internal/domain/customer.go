package domain

// Customer identity plus the customer's current holdings and rental history.
// Holdings and history reference vehicles and rentals by ID through the
// store; the records hold no object pointers back into the graph.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	// RentedVehicleIDs lists the vehicles currently held, in the order they
	// were rented. Every listed vehicle is unavailable and its active rental
	// belongs to this customer.
	RentedVehicleIDs []string `json:"rented_vehicle_ids"`

	// RentalHistory lists closed rental IDs in closing order.
	RentalHistory []string `json:"rental_history"`
}
