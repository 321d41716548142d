package converter

import (
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
)

func CustomerToResponse(customer *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          customer.ID,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		Email:       customer.Email,
		PhoneNumber: customer.PhoneNumber,
		Address:     customer.Address,
		Blocked:     customer.Blocked,
		Roles:       customer.GrantedRoles(),
	}
}

func CustomersToResponses(customers []entity.Customer) []dto.CustomerResponse {
	responses := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, *CustomerToResponse(&customers[i]))
	}
	return responses
}

func DeliveryToResponse(delivery *entity.Delivery) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:          delivery.ID,
		FirstName:   delivery.FirstName,
		LastName:    delivery.LastName,
		Email:       delivery.Email,
		PhoneNumber: delivery.PhoneNumber,
		Blocked:     delivery.Blocked,
		Roles:       delivery.GrantedRoles(),
	}
}

func DeliveriesToResponses(deliveries []entity.Delivery) []dto.DeliveryResponse {
	responses := make([]dto.DeliveryResponse, 0, len(deliveries))
	for i := range deliveries {
		responses = append(responses, *DeliveryToResponse(&deliveries[i]))
	}
	return responses
}
