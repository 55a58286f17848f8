package constant

// Role values stored on the profile row.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Dress catalog statuses. Only active dresses are visible on the public shop.
const (
	DressStatusActive   = "active"
	DressStatusInactive = "inactive"
	DressStatusDraft    = "draft"
)

// Dress request statuses.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// ActivityDaysThreshold is the window used to classify a user as Active.
const ActivityDaysThreshold = 7

// UserStatus labels derived from last activity.
const (
	UserStatusActive   = "Active"
	UserStatusInactive = "Inactive"
)
