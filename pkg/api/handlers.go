package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/mavcodec/pkg/codec"
	"github.com/ssargent/mavcodec/pkg/schema"
)

// maxBodyBytes bounds request bodies; the largest request is a pack with
// every field of a full payload spelled out as JSON.
const maxBodyBytes = 64 << 10

// Server holds the API server state
type Server struct {
	dialect *codec.Dialect
	config  ServerConfig
	metrics *Metrics
	logger  *slog.Logger

	mu       sync.RWMutex
	channels map[string]*channel
}

// channel is an outbound codec.Channel. Packs on one channel are serialized
// so sequence numbers are handed out exactly once.
type channel struct {
	mu      sync.Mutex
	codec   *codec.Channel
	created time.Time
}

// NewServer creates a new API server
func NewServer(dialect *codec.Dialect, config ServerConfig, metrics *Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		dialect:  dialect,
		config:   config,
		metrics:  metrics,
		logger:   logger,
		channels: make(map[string]*channel),
	}
}

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API and the loaded dialect
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	APIResponse
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]interface{}{
		"status":   "healthy",
		"dialect":  s.dialect.Name(),
		"messages": s.dialect.Len(),
	})
}

// handleListMessages godoc
//
//	@Summary		List messages
//	@Description	List every message of the loaded dialect ordered by id
//	@Tags			messages
//	@Produce		json
//	@Success		200	{object}	APIResponse{data=[]MessageSummary}
//	@Router			/messages [get]
//	@Security		ApiKeyAuth
func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	all := s.dialect.All()
	out := make([]MessageSummary, 0, len(all))
	for _, m := range all {
		out = append(out, MessageSummary{
			ID:            m.ID,
			Name:          m.Name,
			PayloadLen:    m.PayloadLen,
			MinPayloadLen: m.MinPayloadLen,
			CRCExtra:      m.CRCExtra,
			Typed:         s.dialect.Typed(m.ID),
		})
	}
	sendSuccess(w, out)
}

// handleGetMessage godoc
//
//	@Summary		Get a message schema
//	@Description	Get the wire layout of a message by name or numeric id
//	@Tags			messages
//	@Produce		json
//	@Param			name	path		string	true	"Message name or id"
//	@Success		200		{object}	APIResponse{data=MessageDetail}
//	@Failure		404		{object}	APIResponse
//	@Router			/messages/{name} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetMessage(w http.ResponseWriter, r *http.Request) {
	m, ok := s.lookupMessage(chi.URLParam(r, "name"))
	if !ok {
		sendError(w, "Message not found", http.StatusNotFound)
		return
	}
	sendSuccess(w, MessageDetail{MessageSchema: *m, Typed: s.dialect.Typed(m.ID)})
}

func (s *Server) lookupMessage(key string) (*schema.MessageSchema, bool) {
	if m, ok := s.dialect.ByName(strings.ToUpper(key)); ok {
		return m, true
	}
	if id, err := strconv.ParseUint(key, 10, 32); err == nil {
		return s.dialect.ByID(uint32(id))
	}
	return nil, false
}

// handleCreateChannel godoc
//
//	@Summary		Open a channel
//	@Description	Open an outbound channel with its own sequence counter
//	@Tags			channels
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateChannelRequest	false	"Frame version (1 or 2, default 2)"
//	@Success		201		{object}	APIResponse{data=ChannelResponse}
//	@Failure		400		{object}	APIResponse
//	@Router			/channels [post]
//	@Security		ApiKeyAuth
func (s *Server) handleCreateChannel(w http.ResponseWriter, r *http.Request) {
	var req CreateChannelRequest
	if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		sendError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	var version codec.Version
	switch req.Version {
	case 0, 2:
		version = codec.V2
	case 1:
		version = codec.V1
	default:
		sendError(w, fmt.Sprintf("Unsupported frame version %d", req.Version), http.StatusBadRequest)
		return
	}

	id := ksuid.New().String()
	ch := &channel{codec: codec.NewChannel(version), created: time.Now().UTC()}

	s.mu.Lock()
	s.channels[id] = ch
	open := len(s.channels)
	s.mu.Unlock()

	s.metrics.SetChannelsOpen(open)
	s.logger.Debug("channel opened", "id", id, "version", int(version))
	sendCreated(w, ChannelResponse{ID: id, Version: int(version), CreatedAt: ch.created})
}

// handleGetChannel godoc
//
//	@Summary		Get a channel
//	@Description	Get a channel and the sequence number its next frame will carry
//	@Tags			channels
//	@Produce		json
//	@Param			id	path		string	true	"Channel id"
//	@Success		200	{object}	APIResponse{data=ChannelResponse}
//	@Failure		404	{object}	APIResponse
//	@Router			/channels/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGetChannel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ch, ok := s.channel(id)
	if !ok {
		sendError(w, "Channel not found", http.StatusNotFound)
		return
	}

	ch.mu.Lock()
	resp := ChannelResponse{
		ID:        id,
		Version:   int(ch.codec.Version),
		Sequence:  ch.codec.Sequence(),
		CreatedAt: ch.created,
	}
	ch.mu.Unlock()

	sendSuccess(w, resp)
}

// handleDeleteChannel godoc
//
//	@Summary		Close a channel
//	@Tags			channels
//	@Produce		json
//	@Param			id	path		string	true	"Channel id"
//	@Success		200	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/channels/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleDeleteChannel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	_, ok := s.channels[id]
	delete(s.channels, id)
	open := len(s.channels)
	s.mu.Unlock()

	if !ok {
		sendError(w, "Channel not found", http.StatusNotFound)
		return
	}
	s.metrics.SetChannelsOpen(open)
	s.logger.Debug("channel closed", "id", id)
	sendSuccess(w, map[string]string{"status": "closed"})
}

// handlePack godoc
//
//	@Summary		Pack a message
//	@Description	Encode a message from field values and frame it on a channel. Omitted fields are zero.
//	@Tags			channels
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Channel id"
//	@Param			request	body		PackRequest	true	"Message and field values"
//	@Success		200		{object}	APIResponse{data=PackResponse}
//	@Failure		400		{object}	APIResponse
//	@Failure		404		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/channels/{id}/pack [post]
//	@Security		ApiKeyAuth
func (s *Server) handlePack(w http.ResponseWriter, r *http.Request) {
	ch, ok := s.channel(chi.URLParam(r, "id"))
	if !ok {
		sendError(w, "Channel not found", http.StatusNotFound)
		return
	}

	var req PackRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	m, ok := s.lookupMessage(req.Message)
	if !ok {
		sendError(w, fmt.Sprintf("Unknown message %q", req.Message), http.StatusNotFound)
		return
	}

	payload, err := codec.EncodeValues(m, codec.Values(req.Fields))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	systemID, componentID := s.config.SystemID, s.config.ComponentID
	if req.SystemID != nil {
		systemID = *req.SystemID
	}
	if req.ComponentID != nil {
		componentID = *req.ComponentID
	}

	var buf [codec.MaxFrameLen]byte
	ch.mu.Lock()
	if !ch.codec.CanSend(m.ID) {
		ch.mu.Unlock()
		sendError(w, fmt.Sprintf("%s (id %d) cannot be sent on a MAVLink 1 channel", m.Name, m.ID), http.StatusUnprocessableEntity)
		return
	}
	seq := ch.codec.Sequence()
	n := ch.codec.PackPayload(systemID, componentID, buf[:], m, payload)
	ch.mu.Unlock()

	s.metrics.RecordPack(m.Name)
	sendSuccess(w, PackResponse{
		Frame:    hex.EncodeToString(buf[:n]),
		Length:   n,
		Sequence: seq,
	})
}

// handleDecode godoc
//
//	@Summary		Decode a frame
//	@Description	Validate one hex encoded frame against the dialect and decode its fields
//	@Tags			frames
//	@Accept			json
//	@Produce		json
//	@Param			request	body		DecodeRequest	true	"Hex encoded frame"
//	@Success		200		{object}	APIResponse{data=DecodeResponse}
//	@Failure		400		{object}	APIResponse
//	@Failure		422		{object}	APIResponse{data=RejectionDetail}
//	@Router			/decode [post]
//	@Security		ApiKeyAuth
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := decodeBody(w, r, &req); err != nil {
		sendError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	data, err := hex.DecodeString(strings.Join(strings.Fields(req.Frame), ""))
	if err != nil {
		sendError(w, "Frame is not valid hex: "+err.Error(), http.StatusBadRequest)
		return
	}

	f, err := s.dialect.Parse(data)
	if err != nil {
		reason := codec.Reason(err)
		s.metrics.RecordRejection(reason)
		s.logger.Debug("frame rejected", "reason", reason, "error", err)
		sendRejection(w, err.Error(), reason)
		return
	}

	resp := NewDecodeResponse(s.dialect, f)
	s.metrics.RecordDecode(resp.Message)
	sendSuccess(w, resp)
}

// NewDecodeResponse describes a frame that parsed against d.
func NewDecodeResponse(d *codec.Dialect, f *codec.Frame) DecodeResponse {
	resp := DecodeResponse{
		Version:       int(f.Version),
		Sequence:      f.Sequence,
		SystemID:      f.SystemID,
		ComponentID:   f.ComponentID,
		MessageID:     f.MessageID,
		PayloadLen:    len(f.Payload),
		Signed:        f.Signed(),
		Typed:         d.Typed(f.MessageID),
		IncompatFlags: f.IncompatFlags,
		CompatFlags:   f.CompatFlags,
	}
	if m, ok := d.ByID(f.MessageID); ok {
		resp.Message = m.Name
		resp.Fields = codec.DecodeValues(m, f.Payload)
	}
	return resp
}

func (s *Server) channel(id string) (*channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ch, ok := s.channels[id]
	return ch, ok
}

// decodeBody reads a JSON body keeping numbers exact, so 64-bit fields
// survive the round trip.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	return dec.Decode(v)
}
