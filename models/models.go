package models

// Reservation lifecycle statuses.
const (
	StatusPending   = "pending"
	StatusFulfilled = "fulfilled"
	StatusCancelled = "cancelled"
)

// User is an admin or staff account, keyed by email in the state blob.
type User struct {
	Name       string `json:"name" bson:"name"`
	Role       string `json:"role,omitempty" bson:"role,omitempty"`
	Department string `json:"department,omitempty" bson:"department,omitempty"`
}

// Item is a tracked stock unit with a target level and a current level.
type Item struct {
	ID            int    `json:"id" bson:"id"`
	Name          string `json:"name" bson:"name"`
	Department    string `json:"department" bson:"department"`
	AmountNeeded  int    `json:"amount_needed" bson:"amount_needed"`
	CurrentAmount int    `json:"current_amount" bson:"current_amount"`
}

// Reservation tracks an anticipated restock need for an item. ItemName and
// Department are snapshots taken at creation time; the item itself is
// referenced by ItemID and looked up when needed. Dates are calendar dates
// in YYYY-MM-DD form.
type Reservation struct {
	ID                  int    `json:"id" bson:"id"`
	ItemID              int    `json:"item_id" bson:"item_id"`
	ItemName            string `json:"item_name" bson:"item_name"`
	Department          string `json:"department" bson:"department"`
	UserEmail           string `json:"user_email" bson:"user_email"`
	CreatedOn           string `json:"created_on" bson:"created_on"`
	ExpectedRestockDate string `json:"expected_restock_date" bson:"expected_restock_date"`
	AmountToRefill      int    `json:"amount_to_refill" bson:"amount_to_refill"`
	Status              string `json:"status" bson:"status"`
	FulfilledOn         string `json:"fulfilled_on,omitempty" bson:"fulfilled_on,omitempty"`
}

// State is the whole persistent document: every operation loads it in full,
// mutates it in memory and saves it back in full.
type State struct {
	Admins       map[string]User `json:"admins"`
	Staff        map[string]User `json:"staff"`
	Roles        []string        `json:"roles"`
	Departments  []string        `json:"departments"`
	Items        []Item          `json:"items"`
	Reservations []Reservation   `json:"reservations"`
}

// NewState returns a state with all collections present and empty.
func NewState() *State {
	return &State{
		Admins:       map[string]User{},
		Staff:        map[string]User{},
		Roles:        []string{},
		Departments:  []string{},
		Items:        []Item{},
		Reservations: []Reservation{},
	}
}

// EnsureDefaults backfills the collections a freshly migrated store may be
// missing: nil maps/slices and the seed role and department.
func (s *State) EnsureDefaults() {
	if s.Admins == nil {
		s.Admins = map[string]User{}
	}
	if s.Staff == nil {
		s.Staff = map[string]User{}
	}
	if s.Items == nil {
		s.Items = []Item{}
	}
	if s.Reservations == nil {
		s.Reservations = []Reservation{}
	}
	if !containsString(s.Roles, "Head") {
		s.Roles = append(s.Roles, "Head")
	}
	if !containsString(s.Departments, "Office") {
		s.Departments = append(s.Departments, "Office")
	}
}

// FindItem returns the item with the given id, or nil.
func (s *State) FindItem(id int) *Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// FindReservation returns the reservation with the given id, or nil.
func (s *State) FindReservation(id int) *Reservation {
	for i := range s.Reservations {
		if s.Reservations[i].ID == id {
			return &s.Reservations[i]
		}
	}
	return nil
}

// NextItemID returns max existing item id + 1, or 1 for an empty store.
func (s *State) NextItemID() int {
	max := 0
	for _, it := range s.Items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// NextReservationID returns max existing reservation id + 1, or 1 for an
// empty store.
func (s *State) NextReservationID() int {
	max := 0
	for _, r := range s.Reservations {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
