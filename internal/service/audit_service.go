package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
)

// AuditService records employee mutations into the append-only audit table.
// Audit failures are logged and never fail the originating request.
type AuditService struct {
	dispatcher events.Dispatcher
	audits     repository.AuditRepository
	logger     *zap.Logger
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, audits repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		audits:     audits,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to employee events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEmployeeCreated, a.handleCreated)
	a.dispatcher.Subscribe(events.EventEmployeeUpdated, a.handleUpdated)
	a.dispatcher.Subscribe(events.EventEmployeeDeleted, a.handleDeleted)
}

func (a *AuditService) handleCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.EmployeeCreatedPayload)
	if !ok {
		return nil
	}
	return a.record(ctx, event, domain.EmployeeChangeCreated, nil, &payload.Employee)
}

func (a *AuditService) handleUpdated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.EmployeeUpdatedPayload)
	if !ok {
		return nil
	}
	return a.record(ctx, event, domain.EmployeeChangeUpdated, &payload.Old, &payload.New)
}

func (a *AuditService) handleDeleted(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.EmployeeDeletedPayload)
	if !ok {
		return nil
	}
	return a.record(ctx, event, domain.EmployeeChangeDeleted, &payload.Employee, nil)
}

func (a *AuditService) record(ctx context.Context, event events.Event, changeType domain.EmployeeChangeType, oldSnap, newSnap *events.EmployeeSnapshot) error {
	entry := &domain.EmployeeAudit{
		EmployeeID: event.EmployeeID,
		ManagerID:  event.ManagerID,
		ChangeType: changeType,
		OldValue:   marshalSnapshot(oldSnap),
		NewValue:   marshalSnapshot(newSnap),
	}
	if err := a.audits.Create(ctx, entry); err != nil {
		a.logger.Warn("audit write failed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("change_type", string(changeType)),
			zap.Error(err))
	}
	return nil
}

func marshalSnapshot(snap *events.EmployeeSnapshot) *string {
	if snap == nil {
		return nil
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil
	}
	encoded := string(raw)
	return &encoded
}
