package dto

import "time"

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	ActorID   *int64                 `json:"actorId,omitempty"`
	ActorRole string                 `json:"actorRole,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Total int64              `json:"total"`
}
