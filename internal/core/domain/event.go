package domain

// EventType tags a broadcast notification.
type EventType string

const (
	EventPostCreated    EventType = "post_created"
	EventPostUpdated    EventType = "post_updated"
	EventPostDeleted    EventType = "post_deleted"
	EventReplyAdded     EventType = "reply_added"
	EventProductCreated EventType = "product_created"
	EventProductUpdated EventType = "product_updated"
	EventProductDeleted EventType = "product_deleted"
	EventUserRegistered EventType = "user_registered"
	EventUserDeleted    EventType = "user_deleted"
	EventStaffCreated   EventType = "staff_created"
	EventStaffUpdated   EventType = "staff_updated"
	EventStaffDeleted   EventType = "staff_deleted"
	EventRoleCreated    EventType = "role_created"
	EventRoleUpdated    EventType = "role_updated"
	EventRoleDeleted    EventType = "role_deleted"
)

// Event is a fire-and-forget notification pushed to realtime clients after a
// mutation. Create events carry the created body; update and delete events
// carry only the id.
type Event struct {
	Type EventType `json:"type"`

	Post    *Post    `json:"post,omitempty"`
	Product *Product `json:"product,omitempty"`
	Role    *Role    `json:"role,omitempty"`
	Staff   *Staff   `json:"staff,omitempty"`
	User    *Member  `json:"user,omitempty"`

	PostID    string `json:"post_id,omitempty"`
	ProductID string `json:"product_id,omitempty"`
	RoleID    string `json:"role_id,omitempty"`
	StaffID   string `json:"staff_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
}
