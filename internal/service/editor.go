package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/editor"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type OrderAPI interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	SaveOrder(ctx context.Context, order entities.Order) error
}

type CatalogSource interface {
	Catalog(ctx context.Context) (entities.Catalog, error)
}

// editorService opens and tracks order edit sessions. Each session owns
// its working copy exclusively; the upstream record is touched only on an
// explicit save.
type editorService struct {
	logger *slog.Logger
	orders OrderAPI
	source CatalogSource

	mu       sync.RWMutex
	sessions map[string]*editor.Session
}

func NewEditorService(logger *slog.Logger, orders OrderAPI, source CatalogSource) *editorService {
	return &editorService{
		logger:   logger.With(slog.String("service", "editor")),
		orders:   orders,
		source:   source,
		sessions: make(map[string]*editor.Session),
	}
}

// Open loads the order and the catalog concurrently and starts a session.
// Either fetch failing is terminal for the attempt: no partial session is
// created and nothing is retried.
func (s *editorService) Open(ctx context.Context, orderID string) (*editor.Session, error) {
	var (
		order   entities.Order
		catalog entities.Catalog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		order, err = s.orders.GetOrder(gctx, orderID)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = s.source.Catalog(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load editor data: %w", err)
	}

	sess := editor.NewSession(uuid.NewString(), order, catalog)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.logger.Debug("session opened",
		slog.String("session_id", sess.ID),
		slog.String("order_id", orderID),
		slog.String("state", string(sess.State())),
	)
	return sess, nil
}

func (s *editorService) Get(sessionID string) (*editor.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	return sess, nil
}

func (s *editorService) SetQuantity(sessionID, productID string, quantity int) (*editor.Session, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *editorService) RemoveItem(sessionID, productID string) (*editor.Session, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.RemoveItem(productID); err != nil {
		return nil, err
	}
	return sess, nil
}

// Save pushes the working copy upstream as a full replacement. On failure
// the session keeps every pending edit and the caller may retry; nothing
// is retried automatically.
func (s *editorService) Save(ctx context.Context, sessionID string) (*editor.Session, error) {
	sess, err := s.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.BeginSave(); err != nil {
		return nil, err
	}

	saveErr := s.orders.SaveOrder(ctx, sess.Order())
	sess.FinishSave(saveErr)

	if saveErr != nil {
		s.logger.Error("save failed",
			slog.String("session_id", sessionID),
			slog.Any("error", saveErr),
		)
		return sess, fmt.Errorf("failed to save order: %w", saveErr)
	}

	s.logger.Debug("order saved", slog.String("session_id", sessionID))
	return sess, nil
}

// Close discards the session and its unsaved working state.
func (s *editorService) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
