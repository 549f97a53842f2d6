// FILE: internal/mapper/audit_mapper.go
package mapper

import (
	"encoding/json"

	"featuregate-be/internal/entity"
	"featuregate-be/internal/model"
)

type AuditMapper struct{}

func NewAuditMapper() *AuditMapper {
	return &AuditMapper{}
}

func (m *AuditMapper) ToModel(e *entity.AuditLog) *model.AuditLog {
	if e == nil {
		return nil
	}
	payload, _ := json.Marshal(e.Payload)
	return &model.AuditLog{
		Id:        e.Id,
		Operation: e.Operation,
		ActorId:   e.ActorId,
		Payload:   payload,
		CreatedAt: e.CreatedAt,
	}
}

func (m *AuditMapper) ToEntity(mdl *model.AuditLog) *entity.AuditLog {
	if mdl == nil {
		return nil
	}
	var payload map[string]interface{}
	_ = json.Unmarshal(mdl.Payload, &payload)
	return &entity.AuditLog{
		Id:        mdl.Id,
		Operation: mdl.Operation,
		ActorId:   mdl.ActorId,
		Payload:   payload,
		CreatedAt: mdl.CreatedAt,
	}
}
