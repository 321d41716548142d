package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog records who did what to which record.
type AuditLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorID   *int64    `gorm:"index" json:"actorId,omitempty"`
	ActorRole string    `gorm:"type:varchar(50);index" json:"actorRole,omitempty"`
	Action    string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("failed to unmarshal jsonb value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionLogin           = "auth.login"
	AuditActionLogout          = "auth.logout"
	AuditActionCustomerCreate  = "customer.create"
	AuditActionCustomerUpdate  = "customer.update"
	AuditActionCustomerDelete  = "customer.delete"
	AuditActionCustomerBlock   = "customer.block"
	AuditActionCustomerUnblock = "customer.unblock"
	AuditActionDeliveryCreate  = "delivery.create"
	AuditActionDeliveryUpdate  = "delivery.update"
	AuditActionDeliveryDelete  = "delivery.delete"
	AuditActionDeliveryBlock   = "delivery.block"
	AuditActionDeliveryUnblock = "delivery.unblock"
	AuditActionOrderCreate     = "order.create"
	AuditActionOrderUpdate     = "order.update"
	AuditActionOrderDelete     = "order.delete"
	AuditActionPharmacyCreate  = "pharmacy.create"
	AuditActionPharmacyUpdate  = "pharmacy.update"
	AuditActionPharmacyDelete  = "pharmacy.delete"
	AuditActionProfileUpdate   = "profile.update"
	AuditActionPasswordUpdate  = "profile.password_update"
)
