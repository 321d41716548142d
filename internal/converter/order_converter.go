package converter

import (
	"pharmacare-api/internal/delivery/dto"
	"pharmacare-api/internal/domain/entity"
)

func OrderToResponse(order *entity.Order) *dto.OrderResponse {
	response := &dto.OrderResponse{
		ID:                 order.ID,
		CreationDate:       order.CreationDate.Format("2006-01-02"),
		RegistrationNumber: order.RegistrationNumber,
		Price:              order.Price,
		Quantity:           order.Quantity,
		Statue:             order.Statue,
	}
	if order.Customer != nil {
		response.Customer = CustomerToResponse(order.Customer)
	}
	if order.Pharmacist != nil {
		response.Pharmacist = PharmacistToResponse(order.Pharmacist)
	}
	if order.Delivery != nil {
		response.Delivery = DeliveryToResponse(order.Delivery)
	}
	if order.Product != nil {
		response.Product = ProductToResponse(order.Product)
	}
	if order.Prescription != nil {
		response.Prescription = PrescriptionToResponse(order.Prescription)
	}
	return response
}

func OrdersToResponses(orders []entity.Order) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *OrderToResponse(&orders[i]))
	}
	return responses
}

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	return &dto.AuditLogResponse{
		ID:        log.ID,
		ActorID:   log.ActorID,
		ActorRole: log.ActorRole,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for i := range logs {
		responses = append(responses, *AuditLogToResponse(&logs[i]))
	}
	return responses
}
