package model

import gDto "reception/shared/dto"

const EntityName = "profile"

type Staff struct {
	ID       gDto.FlexString `json:"id"`
	FullName string          `json:"full_name"`
	Email    string          `json:"email"`
	Phone    string          `json:"phone"`
	Role     string          `json:"role"`
}

type UpdateRequest struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}
