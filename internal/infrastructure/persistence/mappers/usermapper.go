package mappers

import (
	"rosterd/internal/domain/user"
	"rosterd/internal/infrastructure/persistence/models"
	"rosterd/internal/shared/authorization"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:               u.ID,
		OrgID:            u.OrgID,
		EmployeeID:       u.EmployeeID,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Phone:            u.Phone,
		PasswordHash:     u.PasswordHash,
		Role:             u.Role.String(),
		ClassificationID: u.ClassificationID,
		EmployeeType:     string(u.EmployeeType),
		HireDate:         u.HireDate,
		SeniorityDate:    u.SeniorityDate,
		IsActive:         u.IsActive,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

func UserToDomain(model *models.UserModel) *user.User {
	return &user.User{
		ID:               model.ID,
		OrgID:            model.OrgID,
		EmployeeID:       model.EmployeeID,
		FirstName:        model.FirstName,
		LastName:         model.LastName,
		Email:            model.Email,
		Phone:            model.Phone,
		PasswordHash:     model.PasswordHash,
		Role:             authorization.ParseUserRole(model.Role),
		ClassificationID: model.ClassificationID,
		EmployeeType:     user.EmployeeType(model.EmployeeType),
		HireDate:         model.HireDate,
		SeniorityDate:    model.SeniorityDate,
		IsActive:         model.IsActive,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}
