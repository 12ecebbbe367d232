package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/lk16/othello/internal/analysis"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/repository"
)

const (
	recordTimeout = 2 * time.Second
)

// Conn is the part of a websocket connection used by the Handler.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	ws       Conn
	maxDepth int
	stats    repository.DecisionStats
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, maxDepth int, stats repository.DecisionStats) *Handler {
	return &Handler{ws: ws, maxDepth: maxDepth, stats: stats}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (any, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case EventMovesRequest:
		var reqData models.MovesRequest
		if err := unmarshalData(req, &reqData); err != nil {
			return nil, err
		}
		return analysis.Moves(reqData)
	case EventPlaceRequest:
		var reqData models.PlaceRequest
		if err := unmarshalData(req, &reqData); err != nil {
			return nil, err
		}
		return analysis.Place(reqData)
	case EventDecideRequest:
		return h.handleDecideRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

func unmarshalData(req *Incoming, v any) error {
	if err := json.Unmarshal(req.Data, v); err != nil {
		return fmt.Errorf("%w: ws %s unmarshal error: %w", analysis.ErrBadRequest, req.Event, err)
	}
	return nil
}

// Handle handles the websocket connection until it is closed.
// Invalid requests get an error reply, other errors end the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		outgoing := &Outgoing{ID: req.ID}

		outgoing.Data, err = h.handleMessage(req)
		if err != nil {
			slog.Info("ws request failed", "event", req.Event, "id", req.ID, "error", err)
			outgoing.Data = nil
			outgoing.Error = err.Error()
		}

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleDecideRequest(req *Incoming) (*models.DecideResponse, error) {
	var reqData models.DecideRequest
	if err := unmarshalData(req, &reqData); err != nil {
		return nil, err
	}

	resp, err := analysis.Decide(reqData, h.maxDepth)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err = h.stats.Record(ctx, reqData.Strategy, resp.Depth, int(resp.Nodes)); err != nil {
		slog.Warn("Failed to record decision", "error", err)
	}

	return resp, nil
}
