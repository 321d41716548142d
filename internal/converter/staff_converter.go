package converter

import (
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
)

func PharmacistToResponse(pharmacist *entity.Pharmacist) *dto.PharmacistResponse {
	response := &dto.PharmacistResponse{
		ID:        pharmacist.ID,
		FirstName: pharmacist.FirstName,
		LastName:  pharmacist.LastName,
		Email:     pharmacist.Email,
		Roles:     pharmacist.GrantedRoles(),
	}
	if pharmacist.Pharmacy != nil {
		response.Pharmacy = PharmacyToResponse(pharmacist.Pharmacy)
	}
	return response
}

func PharmacistsToResponses(pharmacists []entity.Pharmacist) []dto.PharmacistResponse {
	responses := make([]dto.PharmacistResponse, 0, len(pharmacists))
	for i := range pharmacists {
		responses = append(responses, *PharmacistToResponse(&pharmacists[i]))
	}
	return responses
}

func AdminPharmacyToResponse(admin *entity.AdminPharmacy) *dto.AdminPharmacyResponse {
	response := &dto.AdminPharmacyResponse{
		ID:        admin.ID,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		Roles:     admin.GrantedRoles(),
	}
	if admin.Pharmacy != nil {
		response.Pharmacy = PharmacyToResponse(admin.Pharmacy)
	}
	return response
}

func AdminPharmaciesToResponses(admins []entity.AdminPharmacy) []dto.AdminPharmacyResponse {
	responses := make([]dto.AdminPharmacyResponse, 0, len(admins))
	for i := range admins {
		responses = append(responses, *AdminPharmacyToResponse(&admins[i]))
	}
	return responses
}

func AdminPharmacyToProfileResponse(admin *entity.AdminPharmacy) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        admin.ID,
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		Email:     admin.Email,
		Roles:     admin.GrantedRoles(),
	}
}

func UserToProfileResponse(user *entity.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Roles:     user.GrantedRoles(),
	}
}
