package content

// DTOs returned by the use-case services to inbound adapters.

type UserDTO struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
	Role   string `json:"role"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type PostDTO struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	UserID    string   `json:"user_id"`
	User      *UserDTO `json:"user,omitempty"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at,omitempty"`
}

type CommentDTO struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	UserID    string `json:"user_id"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type AlarmDTO struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	ActorUserID string `json:"actorUserId"`
	SubjectID   string `json:"subjectId"`
	CreatedAt   string `json:"created_at"`
}
