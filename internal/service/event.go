package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/analytics"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/dto"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/metrics"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/queue"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/store"
)

// ErrUnknownReportType is returned by Dashboard for an unsupported type param.
var ErrUnknownReportType = errors.New("unknown report type")

const forwardTimeout = 5 * time.Second

// EventService owns event ingestion and the dashboard reports.
type EventService struct {
	events    store.EventLog
	engine    *analytics.Engine
	publisher queue.QueuePublisher
	forward   bool
	log       *zap.Logger
	now       func() time.Time
}

// NewEventService creates a new event service. The publisher may be nil when
// forwarding is disabled.
func NewEventService(events store.EventLog, engine *analytics.Engine, publisher queue.QueuePublisher, forward bool, log *zap.Logger) *EventService {
	return &EventService{
		events:    events,
		engine:    engine,
		publisher: publisher,
		forward:   forward && publisher != nil,
		log:       log,
		now:       time.Now,
	}
}

// Track validates and appends a single event, assigning its ID and timestamp
// server-side. In forwarding mode the event is additionally published to the
// sink queue fire-and-forget: publish failures are logged and swallowed, never
// surfaced to the caller.
func (s *EventService) Track(req *dto.TrackEventRequest, meta domain.RequestMeta) (string, error) {
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		metrics.EventRejected("category")
		return "", err
	}

	event := domain.Event{
		EventID:    uuid.NewString(),
		EventName:  req.Event,
		Category:   category,
		UserID:     meta.UserID,
		SessionID:  req.SessionID,
		Properties: domain.Properties(req.Properties),
		UserAgent:  meta.UserAgent,
		IP:         meta.IP,
		Country:    meta.Country,
		Referrer:   meta.Referrer,
		Timestamp:  s.now(),
	}
	if event.Properties == nil {
		event.Properties = domain.Properties{}
	}

	event.Normalize()

	if err := event.Validate(); err != nil {
		metrics.EventRejected("properties")
		return "", err
	}

	s.events.Append(event)
	metrics.EventIngested(string(category))

	if s.forward {
		go s.forwardEvent(event)
	}

	return event.EventID, nil
}

// forwardEvent publishes an event to the sink queue. Errors stay here.
func (s *EventService) forwardEvent(event domain.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), forwardTimeout)
	defer cancel()

	if err := s.publisher.PublishEvent(ctx, &event); err != nil {
		metrics.ForwardFailed()
		s.log.Warn("Failed to forward event to sink queue",
			zap.String("event_id", event.EventID),
			zap.String("event_name", event.EventName),
			zap.Error(err))
		return
	}
	metrics.EventForwarded()
}

// TrackBulk ingests multiple events, collecting per-event validation errors
// so one malformed event does not reject the rest.
func (s *EventService) TrackBulk(reqs []dto.TrackEventRequest, meta domain.RequestMeta) ([]string, []string) {
	var eventIDs []string
	var errs []string

	for i := range reqs {
		eventID, err := s.Track(&reqs[i], meta)
		if err != nil {
			errs = append(errs, err.Error())
			s.log.Warn("Failed to track event in bulk",
				zap.Int("index", i),
				zap.String("event_name", reqs[i].Event),
				zap.Error(err))
			continue
		}
		eventIDs = append(eventIDs, eventID)
	}

	return eventIDs, errs
}

// Dashboard computes the requested report, or all four for "overview".
func (s *EventService) Dashboard(reportType string) (interface{}, error) {
	defer metrics.ObserveReport(reportType, s.now())

	switch reportType {
	case "realtime":
		return s.engine.RealTimeMetrics(), nil
	case "revenue":
		return s.engine.RevenueAnalytics(), nil
	case "ai":
		return s.engine.AIAnalytics(), nil
	case "learning":
		return s.engine.LearningAnalytics(), nil
	case "", "overview":
		return &dto.DashboardOverview{
			RealTime: s.engine.RealTimeMetrics(),
			Revenue:  s.engine.RevenueAnalytics(),
			AI:       s.engine.AIAnalytics(),
			Learning: s.engine.LearningAnalytics(),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: overview, realtime, revenue, ai, learning)", ErrUnknownReportType, reportType)
	}
}
