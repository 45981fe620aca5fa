package entities

// Client is referenced by budgets through its id. The reference is weak:
// removing a client does not cascade to its budgets.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Whatsapp string `json:"whatsapp"`
	Email    string `json:"email"`
}
