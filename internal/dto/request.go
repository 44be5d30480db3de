package dto

// TrackEventRequest represents a track event request
type TrackEventRequest struct {
	Event      string                 `json:"event" binding:"required" example:"lesson_complete"`
	Category   string                 `json:"category" binding:"required" example:"lesson"`
	SessionID  string                 `json:"session_id" binding:"required" example:"sess_8f3a"`
	Properties map[string]interface{} `json:"properties" swaggertype:"object,string" example:"lessonId:go-101,timeSpent:420"`
}

// TrackEventsBulkRequest represents a bulk track request
type TrackEventsBulkRequest struct {
	Events []TrackEventRequest `json:"events" binding:"required,min=1,max=1000,dive"`
}
