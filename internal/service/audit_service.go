package service

import (
	"pharmacare-api/internal/domain/entity"
	"pharmacare-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes the audit trail. Entries are created on the
// caller's gorm handle so mutations and their trail commit together.
// LogAuth is best effort: a failed trail write must not fail an
// otherwise successful authentication.
type AuditService interface {
	LogAuth(tx *gorm.DB, actorID int64, actorRole, action, email string)
	LogCreate(tx *gorm.DB, actorID *int64, actorRole, action string, entityName string, entityID int64, newValue interface{}) error
	LogUpdate(tx *gorm.DB, actorID *int64, actorRole, action string, entityName string, entityID int64, oldValue, newValue interface{}) error
	LogDelete(tx *gorm.DB, actorID *int64, actorRole, action string, entityName string, entityID int64, oldValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) LogAuth(tx *gorm.DB, actorID int64, actorRole, action, email string) {
	s.write(tx, &actorID, actorRole, action, entity.JSON{
		"email": email,
	})
}

func (s *auditService) LogCreate(tx *gorm.DB, actorID *int64, actorRole, action string, entityName string, entityID int64, newValue interface{}) error {
	return s.write(tx, actorID, actorRole, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

func (s *auditService) LogUpdate(tx *gorm.DB, actorID *int64, actorRole, action string, entityName string, entityID int64, oldValue, newValue interface{}) error {
	return s.write(tx, actorID, actorRole, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) LogDelete(tx *gorm.DB, actorID *int64, actorRole, action string, entityName string, entityID int64, oldValue interface{}) error {
	return s.write(tx, actorID, actorRole, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

func (s *auditService) write(tx *gorm.DB, actorID *int64, actorRole, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		ActorID:   actorID,
		ActorRole: actorRole,
		Action:    action,
		Metadata:  metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
