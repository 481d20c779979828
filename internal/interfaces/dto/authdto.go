// Package dto defines the HTTP request and response shapes and their
// conversions to application commands.
package dto

import (
	"time"

	"rosterd/internal/domain/user"
	"rosterd/internal/shared/biztime"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type LoginResponse struct {
	User   UserResponse  `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

type UserResponse struct {
	ID               uint      `json:"id"`
	EmployeeID       *string   `json:"employee_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone"`
	Role             string    `json:"role"`
	ClassificationID *uint     `json:"classification_id"`
	EmployeeType     string    `json:"employee_type"`
	HireDate         *string   `json:"hire_date"`
	SeniorityDate    *string   `json:"seniority_date"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		EmployeeID:       u.EmployeeID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Phone:            u.Phone,
		Role:             u.Role.String(),
		ClassificationID: u.ClassificationID,
		EmployeeType:     string(u.EmployeeType),
		HireDate:         formatDatePtr(u.HireDate),
		SeniorityDate:    formatDatePtr(u.SeniorityDate),
		IsActive:         u.IsActive,
		CreatedAt:        u.CreatedAt,
	}
}

func NewUserResponses(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := biztime.FormatDate(*t)
	return &s
}
