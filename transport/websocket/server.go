package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const writeTimeout = 5 * time.Second

type uGame interface {
	StartGame(ctx context.Context) (*entity.GameState, error)
	CurrentGame(ctx context.Context) (*entity.GameState, error)
	MakeMove(ctx context.Context, row, col int) (*entity.GameState, error)
	Undo(ctx context.Context) (*entity.GameState, error)

	Subscribe(ctx context.Context) (<-chan entity.GameState, func())
}

type handler func(ctx context.Context, message *Message) (*entity.GameState, error)

// Server streams game state to every connected screen and accepts the
// same actions the REST API offers.
type Server struct {
	logger *slog.Logger
	uGame  uGame

	acceptOptions *websocket.AcceptOptions
	handlers      map[string]handler
}

func New(logger *slog.Logger, uGame uGame, allowedOrigins []string) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,

		acceptOptions: &websocket.AcceptOptions{OriginPatterns: allowedOrigins},
		handlers:      make(map[string]handler),
	}

	server.handlers[actionGameStart] = server.handleStart
	server.handlers[actionGameMove] = server.handleMove
	server.handlers[actionGameUndo] = server.handleUndo

	return server
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP", "remote", r.RemoteAddr)

	conn, err := websocket.Accept(w, r, that.acceptOptions)
	if err != nil {
		log.Error("failed to accept websocket", "error", err)
		return
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	updates, unsubscribe := that.uGame.Subscribe(ctx)
	defer unsubscribe()

	if state, err := that.uGame.CurrentGame(ctx); err == nil {
		if err = that.write(ctx, conn, actionGameState, state); err != nil {
			log.Debug("failed to send initial state", "error", err)
			return
		}
	}

	go that.readLoop(ctx, cancel, conn)

	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "")
			return
		case state, ok := <-updates:
			if !ok {
				_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}

			if err = that.write(ctx, conn, actionGameState, &state); err != nil {
				log.Debug("client gone", "error", err)
				return
			}
		}
	}
}

func (that *Server) readLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn) {
	defer cancel()

	log := that.logger.With("method", "readLoop")

	for {
		var message Message
		if err := wsjson.Read(ctx, conn, &message); err != nil {
			if websocket.CloseStatus(err) == -1 && !errors.Is(err, context.Canceled) {
				log.Debug("read failed", "error", err)
			}
			return
		}

		if err := that.dispatch(ctx, conn, &message); err != nil {
			log.Debug("failed to answer client", "action", message.Action, "error", err)
			return
		}
	}
}

// dispatch runs the action. Successful changes reach this client through its
// subscription, so only failures are answered directly.
func (that *Server) dispatch(ctx context.Context, conn *websocket.Conn, message *Message) error {
	handle, ok := that.handlers[message.Action]
	if !ok {
		return that.write(ctx, conn, actionError, ErrorPayload{Error: "unknown action " + message.Action})
	}

	state, err := handle(ctx, message)
	if err == nil {
		return nil
	}

	if !errors.Is(err, apperror.ErrInvalidMove) && !errors.Is(err, apperror.ErrNoHistory) &&
		!errors.Is(err, apperror.ErrNoActiveGame) && !errors.Is(err, apperror.ErrMissingConfiguration) {
		that.logger.Error("action failed", "action", message.Action, "error", err)
		return that.write(ctx, conn, actionError, ErrorPayload{Error: "internal server error"})
	}

	return that.write(ctx, conn, actionError, ErrorPayload{Error: err.Error(), Game: state})
}

func (that *Server) handleStart(ctx context.Context, _ *Message) (*entity.GameState, error) {
	return that.uGame.StartGame(ctx)
}

func (that *Server) handleMove(ctx context.Context, message *Message) (*entity.GameState, error) {
	var move MovePayload
	if err := json.Unmarshal(message.Payload, &move); err != nil {
		return nil, fmt.Errorf("%w: malformed move: %w", apperror.ErrInvalidMove, err)
	}

	if move.Row == nil || move.Col == nil {
		return nil, fmt.Errorf("%w: row and col are required", apperror.ErrInvalidMove)
	}

	return that.uGame.MakeMove(ctx, *move.Row, *move.Col)
}

func (that *Server) handleUndo(ctx context.Context, _ *Message) (*entity.GameState, error) {
	return that.uGame.Undo(ctx)
}

func (that *Server) write(ctx context.Context, conn *websocket.Conn, action string, payload any) error {
	message, err := newMessage(action, payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err = wsjson.Write(writeCtx, conn, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
