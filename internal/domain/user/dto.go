package user

import "time"

// Response is the directory entry shape returned over HTTP. Password hashes
// never leave the service layer.
type Response struct {
	ID              string  `json:"id"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	InvitedByUserID *string `json:"invited_by,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToResponse(u User) Response {
	return Response{
		ID:              u.ID,
		Email:           u.Email,
		Name:            u.Name,
		Role:            string(u.Role),
		InvitedByUserID: u.InvitedByUserID,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
	}
}

func ToResponseList(users []User) []Response {
	responses := make([]Response, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToResponse(u))
	}
	return responses
}
