package service

import (
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/domain"
	"github.com/Oceanwind82/AI-Mind-OS-sub001/internal/dto"
)

// EventServicer defines the interface for event ingestion and reporting
type EventServicer interface {
	Track(req *dto.TrackEventRequest, meta domain.RequestMeta) (string, error)
	TrackBulk(reqs []dto.TrackEventRequest, meta domain.RequestMeta) ([]string, []string)
	Dashboard(reportType string) (interface{}, error)
}
