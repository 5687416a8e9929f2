package entities

// Mentor offers paid one-on-one chat sessions on behalf of an organization.
// IsVerified is a snapshot of the creator's verification status at
// registration time and is never re-checked.
type Mentor struct {
	ID         string `json:"id"`
	EntityID   string `json:"entity_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Bio        string `json:"bio"`
	Price      int    `json:"price"`
	IsVerified bool   `json:"is_verified"`
	AvatarURL  string `json:"avatar_url"`
}
