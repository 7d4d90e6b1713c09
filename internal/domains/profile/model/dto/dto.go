package dto

import (
	"reception/internal/domains/profile/model"
	"strings"
)

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"omitempty,phone"`
}

func (u UpdateProfileRequest) ToModel(userID string) model.UpdateRequest {
	return model.UpdateRequest{
		UserID:   userID,
		FullName: strings.TrimSpace(u.FullName),
		Email:    strings.ToLower(strings.TrimSpace(u.Email)),
		Phone:    strings.TrimSpace(u.Phone),
	}
}

type ProfileResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
	Message  string `json:"message,omitempty"`
}

// FromModel falls back to the submitted values for fields the API leaves out.
func (p *ProfileResponse) FromModel(staff model.Staff, req model.UpdateRequest) {
	p.ID = staff.ID.String()
	if p.ID == "" {
		p.ID = req.UserID
	}

	p.FullName = first(staff.FullName, req.FullName)
	p.Email = first(staff.Email, req.Email)
	p.Phone = first(staff.Phone, req.Phone)
	p.Role = staff.Role
}

func first(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
