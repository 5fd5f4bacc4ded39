package api

import (
	"time"

	"github.com/ssargent/mavcodec/pkg/codec"
	"github.com/ssargent/mavcodec/pkg/schema"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind        string
	Port        int
	APIKey      string // empty disables authentication
	SystemID    uint8  // default source of packed frames
	ComponentID uint8
}

// MessageSummary describes one message of the dialect
type MessageSummary struct {
	ID            uint32 `json:"id"`
	Name          string `json:"name"`
	PayloadLen    int    `json:"payload_length"`
	MinPayloadLen int    `json:"min_payload_length"`
	CRCExtra      uint8  `json:"crc_extra"`
	Typed         bool   `json:"typed"`
}

// MessageDetail is a message schema with its field layout
type MessageDetail struct {
	schema.MessageSchema
	Typed bool `json:"typed"`
}

// CreateChannelRequest opens an outbound channel. Version defaults to 2.
type CreateChannelRequest struct {
	Version int `json:"version"`
}

// ChannelResponse describes an open channel
type ChannelResponse struct {
	ID        string    `json:"id"`
	Version   int       `json:"version"`
	Sequence  uint8     `json:"sequence"`
	CreatedAt time.Time `json:"created_at"`
}

// PackRequest asks a channel to frame one message. Source ids default to
// the server's configured identity.
type PackRequest struct {
	Message     string         `json:"message"`
	SystemID    *uint8         `json:"system_id,omitempty"`
	ComponentID *uint8         `json:"component_id,omitempty"`
	Fields      map[string]any `json:"fields"`
}

// PackResponse carries a packed frame
type PackResponse struct {
	Frame    string `json:"frame"` // hex
	Length   int    `json:"length"`
	Sequence uint8  `json:"sequence"`
}

// DecodeRequest carries one hex encoded frame
type DecodeRequest struct {
	Frame string `json:"frame"`
}

// DecodeResponse is a validated frame with its decoded fields
type DecodeResponse struct {
	Version       int          `json:"version"`
	Sequence      uint8        `json:"sequence"`
	SystemID      uint8        `json:"system_id"`
	ComponentID   uint8        `json:"component_id"`
	MessageID     uint32       `json:"message_id"`
	Message       string       `json:"message"`
	PayloadLen    int          `json:"payload_length"`
	Signed        bool         `json:"signed"`
	Typed         bool         `json:"typed"`
	Fields        codec.Values `json:"fields"`
	IncompatFlags uint8        `json:"incompat_flags"`
	CompatFlags   uint8        `json:"compat_flags"`
}

// RejectionDetail accompanies a 422 response for a frame that failed validation
type RejectionDetail struct {
	Reason string `json:"reason"`
}
