package dto

import "studentoffice/domain"

type LoginRequest struct {
	Role   string `validate:"required,oneof=student admin"`
	ID     string `validate:"required"`
	Secret string `validate:"required"`
}

func (r *LoginRequest) DomainRole() domain.Role {
	if r.Role == "admin" {
		return domain.RoleAdmin
	}
	return domain.RoleStudent
}
