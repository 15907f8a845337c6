package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/tk-it/personcomplete/internal/logger"
	"github.com/tk-it/personcomplete/internal/utils"
	"github.com/tk-it/personcomplete/pkg/complete"
	"github.com/tk-it/personcomplete/pkg/config"
	"github.com/tk-it/personcomplete/pkg/index"
	"github.com/tk-it/personcomplete/pkg/person"
	"github.com/vmihailenco/msgpack/v5"
)

// Source loads the roster the index is rebuilt from.
type Source func() ([]person.Person, error)

// Server handles the IPC for person lookups
type Server struct {
	holder       *index.Holder
	config       *config.Config
	source       Source
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(holder *index.Holder, cfg *config.Config, source Source) *Server {
	return NewServerWithIO(holder, cfg, source, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing
// responses to w
func NewServerWithIO(holder *index.Holder, cfg *config.Config, source Source, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		holder:  holder,
		config:  cfg,
		source:  source,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		logger:  logger.New("server"),
	}
}

// Start writes the ready status and serves requests until the input ends
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed input")
				return nil
			}
			s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("decoding request: %w", err)
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one request by action
func (s *Server) handleRequest(request Request) {
	s.requestCount++
	if every := s.config.Server.ReloadEvery; every > 0 && s.requestCount%every == 0 {
		if err := s.reload(); err != nil {
			s.logger.Warnf("Periodic reload failed, keeping current index: %v", err)
		}
	}

	switch request.Action {
	case ActionLookup:
		s.handleLookup(request)
	case ActionResolve:
		s.handleResolve(request)
	case ActionReload:
		if err := s.reload(); err != nil {
			s.sendError(request.ID, err.Error(), 500)
			return
		}
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	case ActionStats:
		idx := s.holder.Load()
		s.sendResponse(StatsResponse{
			ID:        request.ID,
			Persons:   idx.Len(),
			TitleKeys: idx.TitleKeys(),
			Requests:  s.requestCount,
		})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

func (s *Server) handleLookup(request Request) {
	if len(request.Query) > s.config.Server.MaxQuery && s.config.Server.MaxQuery > 0 {
		s.sendError(request.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.config.Server.MaxQuery), 400)
		return
	}

	response := LookupResponse{ID: request.ID, Position: index.NoMatch}
	start := time.Now()
	if utils.IsValidQuery(request.Query, s.config.Server.MaxQuery) {
		idx := s.holder.Load()
		response.Position = idx.Find(request.Query, request.From)
		if p, ok := idx.Person(response.Position); ok {
			response.PersonID = p.ID
			response.Display = p.Str
		}
	}
	response.TimeTaken = time.Since(start).Microseconds()

	s.logger.Debug("lookup", "q", request.Query, "from", request.From, "p", response.Position)
	s.sendResponse(response)
}

func (s *Server) handleResolve(request Request) {
	c, ev := complete.New(s.holder.Load(), request.Value, complete.Hint{Name: request.Name, Title: request.Title})
	response := ResolveResponse{
		ID:    request.ID,
		Kind:  ev.Kind.String(),
		Input: c.Input(),
		Value: c.Value(),
	}
	if ev.Kind == complete.Selected {
		response.PersonID = ev.Person.ID
		response.Display = ev.Person.Str
	}
	s.sendResponse(response)
}

// reload rebuilds the index from the source and swaps it in
func (s *Server) reload() error {
	if s.source == nil {
		return errors.New("no roster source configured")
	}
	persons, err := s.source()
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}
	idx, err := s.holder.Rebuild(persons)
	if err != nil {
		return fmt.Errorf("rebuilding index: %w", err)
	}
	s.logger.Infof("Reloaded index with %d persons", idx.Len())
	return nil
}

func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{ID: id, Error: message, Code: code})
}
