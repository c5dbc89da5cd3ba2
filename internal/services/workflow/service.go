package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/wpc/servicesync/internal/models"
	directoryRepo "github.com/wpc/servicesync/internal/repositories/directory"
	sessionRepo "github.com/wpc/servicesync/internal/repositories/session"
	"github.com/wpc/servicesync/internal/services/notifier"
)

// staleCancelNote is appended to a session's comments by the stale sweep
const staleCancelNote = " [Auto-cancelled due to inactivity]"

// sessionIDTimeLayout is the timestamp part of an external session identifier
const sessionIDTimeLayout = "20060102-150405"

// service implements the Service interface
type service struct {
	config *Config
	locks  *lockMap
}

// New creates a new workflow service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.DirectoryRepo == nil {
		return nil, ErrNilDirectoryRepo
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		config: cfg,
		locks:  newLockMap(),
	}, nil
}

// CreateSession starts a new delivery session for an employee and ward
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.MealType.IsValid() {
		return nil, ErrInvalidMealType
	}

	if input.MealCount < models.MinMealCount || input.MealCount > models.MaxMealCount {
		return nil, ErrInvalidMealCount
	}

	employee, err := s.config.DirectoryRepo.GetEmployee(ctx, &directoryRepo.GetEmployeeInput{
		EmployeeID: input.EmployeeID,
	})
	if err != nil {
		if errors.Is(err, directoryRepo.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	ward, err := s.config.DirectoryRepo.GetWard(ctx, &directoryRepo.GetWardInput{
		WardID: input.WardID,
	})
	if err != nil {
		if errors.Is(err, directoryRepo.ErrWardNotFound) {
			return nil, ErrWardNotFound
		}
		return nil, err
	}

	now := s.config.Clock.Now()

	sess := &models.Session{
		ID:            s.config.UUIDGenerator.NewUUID(),
		SessionID:     buildSessionID(employee, ward, now),
		EmployeeID:    employee.ID,
		EmployeeName:  employee.Name,
		EmployeeBadge: employee.BadgeID,
		WardID:        ward.ID,
		WardName:      ward.Name,
		HospitalID:    ward.HospitalID,
		HospitalName:  ward.HospitalName,
		MealType:      input.MealType,
		MealCount:     input.MealCount,
		MealsServed:   0,
		Status:        models.SessionStatusActive,
		Comments:      input.Comments,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Session %s created for ward %s", sess.SessionID, ward.Name)

	return sess, nil
}

// ScanCheckpoint validates a QR scan and stamps the matching checkpoint.
// A repeated scan re-stamps the checkpoint to the new time.
func (s *service) ScanCheckpoint(ctx context.Context, input *ScanCheckpointInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Checkpoint.IsValid() {
		return nil, ErrInvalidCheckpoint
	}

	release := s.locks.acquire(input.SessionID)
	defer release()

	sess, err := s.getOpenSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if !strings.HasPrefix(input.QRContent, input.Checkpoint.QRPrefix()) {
		return nil, ErrInvalidQRCode
	}

	now := s.config.Clock.Now()

	switch input.Checkpoint {
	case models.CheckpointKitchenExit:
		sess.KitchenExitTime = &now
		sess.Status = models.SessionStatusInTransit
	case models.CheckpointWardArrival:
		sess.WardArrivalTime = &now
	case models.CheckpointNurseStation:
		sess.ServiceStartTime = &now
	}

	sess.UpdatedAt = now

	err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	if input.Checkpoint == models.CheckpointKitchenExit {
		s.publish(ctx, &notifier.Event{
			Type:      notifier.EventKitchenExit,
			SessionID: sess.SessionID,
			Status:    sess.Status,
			WardName:  sess.WardName,
			Timestamp: now,
		})
	}

	return sess, nil
}

// AlertNurse records that the nurse was alerted
func (s *service) AlertNurse(ctx context.Context, input *AlertNurseInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	release := s.locks.acquire(input.SessionID)
	defer release()

	sess, err := s.getOpenSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	sess.NurseAlertTime = &now
	sess.UpdatedAt = now

	err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &notifier.Event{
		Type:      notifier.EventNurseAlert,
		SessionID: sess.SessionID,
		Status:    sess.Status,
		WardName:  sess.WardName,
		Timestamp: now,
	})

	return sess, nil
}

// RecordNurseResponse records the responding nurse
func (s *service) RecordNurseResponse(ctx context.Context, input *RecordNurseResponseInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	release := s.locks.acquire(input.SessionID)
	defer release()

	sess, err := s.getOpenSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	sess.NurseResponseTime = &now
	sess.NurseName = input.NurseName
	sess.UpdatedAt = now

	err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, &notifier.Event{
		Type:      notifier.EventNurseResponse,
		SessionID: sess.SessionID,
		Status:    sess.Status,
		WardName:  sess.WardName,
		NurseName: sess.NurseName,
		Timestamp: now,
	})

	return sess, nil
}

// UpdateSession applies a partial update. Only non-nil fields are applied.
// Documentation fields may still be edited on a closed session; the meal
// tally may not.
func (s *service) UpdateSession(ctx context.Context, input *UpdateSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	release := s.locks.acquire(input.SessionID)
	defer release()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.MealsServed != nil {
		if sess.IsClosed() {
			return nil, ErrSessionClosed
		}
		if *input.MealsServed < 0 || *input.MealsServed > sess.MealCount {
			return nil, ErrInvalidMealsServed
		}
		sess.MealsServed = *input.MealsServed
	}
	if input.Comments != nil {
		sess.Comments = *input.Comments
	}
	if input.NurseName != nil {
		sess.NurseName = *input.NurseName
	}
	if input.DietSheetDocumented != nil {
		sess.DietSheetDocumented = *input.DietSheetDocumented
	}
	if input.DietSheetNotes != nil {
		sess.DietSheetNotes = *input.DietSheetNotes
	}
	if input.DietSheetPhotoPath != nil {
		sess.DietSheetPhotoPath = *input.DietSheetPhotoPath
	}

	sess.UpdatedAt = s.config.Clock.Now()

	err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// CompleteSession finishes a session's meal service. An under-reported meal
// tally is forced up to the requested count.
func (s *service) CompleteSession(ctx context.Context, input *CompleteSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	release := s.locks.acquire(input.SessionID)
	defer release()

	sess, err := s.getOpenSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()
	sess.ServiceCompleteTime = &now
	sess.Status = models.SessionStatusCompleted

	if sess.MealsServed < sess.MealCount {
		sess.MealsServed = sess.MealCount
	}

	sess.UpdatedAt = now

	err = s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Session %s completed: %d/%d meals", sess.SessionID, sess.MealsServed, sess.MealCount)

	s.publish(ctx, &notifier.Event{
		Type:      notifier.EventSessionCompleted,
		SessionID: sess.SessionID,
		Status:    sess.Status,
		WardName:  sess.WardName,
		Timestamp: now,
	})

	return sess, nil
}

// GetSession retrieves a session by its external identifier
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.getSession(ctx, input.SessionID)
}

// ListActiveSessionsByEmployee retrieves an employee's open sessions
func (s *service) ListActiveSessionsByEmployee(ctx context.Context, input *ListActiveSessionsByEmployeeInput) ([]*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return s.config.SessionRepo.ListActiveSessionsByEmployee(ctx, &sessionRepo.ListActiveSessionsByEmployeeInput{
		EmployeeID: input.EmployeeID,
	})
}

// SweepStaleSessions cancels ACTIVE sessions created before the cutoff.
// Each session is cancelled and persisted individually; a failure on one
// session is logged and the sweep continues.
func (s *service) SweepStaleSessions(ctx context.Context, input *SweepStaleSessionsInput) (*SweepStaleSessionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	stale, err := s.config.SessionRepo.ListStaleActiveSessions(ctx, &sessionRepo.ListStaleActiveSessionsInput{
		Cutoff: input.Cutoff,
	})
	if err != nil {
		return nil, err
	}

	cancelled := 0
	for _, candidate := range stale {
		if err := s.cancelStaleSession(ctx, candidate.SessionID); err != nil {
			log.Printf("Failed to cancel stale session %s: %v", candidate.SessionID, err)
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		log.Printf("Cancelled %d stale sessions", cancelled)
	}

	return &SweepStaleSessionsOutput{
		CancelledCount: cancelled,
	}, nil
}

// cancelStaleSession re-reads one stale candidate under its lock and
// cancels it if it is still ACTIVE
func (s *service) cancelStaleSession(ctx context.Context, sessionID string) error {
	release := s.locks.acquire(sessionID)
	defer release()

	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return err
	}

	// A concurrent transition may have moved the session on
	if sess.Status != models.SessionStatusActive {
		return nil
	}

	sess.Status = models.SessionStatusCancelled
	sess.Comments = sess.Comments + staleCancelNote
	sess.UpdatedAt = s.config.Clock.Now()

	return s.config.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
}

// getSession resolves an external session identifier to its session
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.config.SessionRepo.GetSessionByExternalID(ctx, &sessionRepo.GetSessionByExternalIDInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return sess, nil
}

// getOpenSession resolves a session and rejects terminal ones
func (s *service) getOpenSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.IsClosed() {
		return nil, ErrSessionClosed
	}

	return sess, nil
}

// publish sends a workflow event to subscribers. Delivery failures are
// logged, never propagated.
func (s *service) publish(ctx context.Context, event *notifier.Event) {
	if err := s.config.Notifier.Publish(ctx, event); err != nil {
		log.Printf("Failed to publish %s event for session %s: %v", event.Type, event.SessionID, err)
	}
}

// buildSessionID mints the human-traceable external session identifier
func buildSessionID(employee *models.Employee, ward *models.Ward, now time.Time) string {
	return fmt.Sprintf("SS-%s-%s-%s", employee.BadgeID, ward.Name, now.Format(sessionIDTimeLayout))
}
