package models

// Asset statuses. The labels match the lab's historical inventory exports.
const (
	StatusInStock     = "In Stock"
	StatusCheckedOut  = "Checked Out"
	StatusMaintenance = "Maintenance"
	StatusLost        = "Lost"
)

// Statuses lists every status an asset can move to.
var Statuses = []string{StatusInStock, StatusCheckedOut, StatusMaintenance, StatusLost}

// Asset is one inventory record. DueDate is a plain YYYY-MM-DD string and
// stays empty unless Status is Checked Out.
type Asset struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
	DueDate  string `json:"due_date"`
}

// ValidStatus reports whether s is a known asset status.
func ValidStatus(s string) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}
