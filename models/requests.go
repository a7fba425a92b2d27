package models

// CreateReservationRequest is the payload for creating a reservation.
// DailyUsage and TargetAmount are optional; when absent the estimator
// heuristic and the item's needed amount apply.
type CreateReservationRequest struct {
	ItemID       int    `json:"item_id" binding:"required"`
	UserEmail    string `json:"user_email" binding:"required,email"`
	DailyUsage   *int   `json:"daily_usage"`
	TargetAmount *int   `json:"target_amount"`
}

// CreateItemRequest is the payload for registering a new item.
type CreateItemRequest struct {
	Name          string `json:"name" binding:"required"`
	Department    string `json:"department" binding:"required"`
	AmountNeeded  int    `json:"amount_needed" binding:"min=0"`
	CurrentAmount int    `json:"current_amount" binding:"min=0"`
}

// UpdateItemRequest partially updates an item; nil fields are left as-is.
type UpdateItemRequest struct {
	Name          *string `json:"name"`
	Department    *string `json:"department"`
	AmountNeeded  *int    `json:"amount_needed"`
	CurrentAmount *int    `json:"current_amount"`
}

// UseItemRequest records consumption of an item by a staff member. The item
// is matched by name within the staff member's own department.
type UseItemRequest struct {
	UserEmail string `json:"user_email" binding:"required,email"`
	ItemName  string `json:"item_name" binding:"required"`
	Amount    int    `json:"amount" binding:"required,min=1"`
}

// UseItemResult reports the outcome of a usage recording. When the usage
// depleted the stock, Depleted is set and Reservation holds the restock
// reservation created on the user's behalf (nil if its creation failed).
type UseItemResult struct {
	Item        Item         `json:"item"`
	Depleted    bool         `json:"depleted"`
	Reservation *Reservation `json:"reservation,omitempty"`
}

// AddNameRequest adds a role or department by name.
type AddNameRequest struct {
	Name string `json:"name" binding:"required"`
}
