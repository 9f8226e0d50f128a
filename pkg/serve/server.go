package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/praetorian-inc/choice/pkg/parser"
	"github.com/praetorian-inc/choice/pkg/ranges"
	"github.com/praetorian-inc/choice/pkg/selection"
	"go.uber.org/zap"
)

// Version is the server protocol version
const Version = "1.0.0"

// DefaultExpandLimit bounds "expand" responses when the request sets no limit.
const DefaultExpandLimit = 1000

// MaxExpandLimit caps the limit a client may request for "expand".
const MaxExpandLimit = 100000

// Server answers selection requests read as NDJSON from in.
type Server struct {
	logger  *zap.Logger
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server. A nil logger disables logging.
func NewServer(logger *zap.Logger, in io.Reader, out io.Writer) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		logger:  logger,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run starts the server main loop
func (s *Server) Run(ctx context.Context) error {
	// Send ready signal
	s.sendReady()

	// Use buffered channels for incoming requests
	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Process requests until stdin closes or context cancels
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					// No more pending requests
					if err == io.EOF {
						return nil
					}
					s.logger.Debug("decoding request failed", zap.Error(err))
					s.sendError("decode", err)
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	s.logger.Debug("handling request", zap.String("type", req.Type))

	switch req.Type {
	case "parse":
		s.handleParse(req.Payload)
	case "contains":
		s.handleContains(req.Payload)
	case "expand":
		s.handleExpand(req.Payload)
	case "close":
		return true
	default:
		s.sendError("unknown", errors.New("unknown request type: "+req.Type))
	}
	return false
}

func (s *Server) sendReady() {
	s.send("ready", ReadyData{Version: Version})
}

func (s *Server) handleParse(payload json.RawMessage) {
	var p ParsePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("parse", err)
		return
	}

	sel, err := selection.Parse(p.Input)
	if err != nil {
		s.sendError("parse", err)
		return
	}

	rs := sel.Ranges()
	if rs == nil {
		rs = []ranges.Range{}
	}
	s.send("parse", ParseData{
		Ranges:    rs,
		Canonical: sel.String(),
		Count:     sel.Len(),
	})
}

func (s *Server) handleContains(payload json.RawMessage) {
	var p ContainsPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("contains", err)
		return
	}

	sel, err := selection.Parse(p.Input)
	if err != nil {
		s.sendError("contains", err)
		return
	}

	results := make([]bool, len(p.Items))
	for i, n := range p.Items {
		results[i] = sel.ContainsItem(n)
	}
	s.send("contains", ContainsData{Results: results})
}

func (s *Server) handleExpand(payload json.RawMessage) {
	var p ExpandPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("expand", err)
		return
	}

	sel, err := selection.Parse(p.Input)
	if err != nil {
		s.sendError("expand", err)
		return
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultExpandLimit
	}
	limit = min(limit, MaxExpandLimit)

	data := ExpandData{Items: []int{}}
	for n := range sel.Items() {
		if len(data.Items) == limit {
			data.Truncated = true
			break
		}
		data.Items = append(data.Items, n)
	}
	s.send("expand", data)
}

func (s *Server) send(respType string, v any) {
	data, _ := json.Marshal(v)
	s.encoder.Encode(Response{
		Success: true,
		Type:    respType,
		Data:    data,
	})
}

func (s *Server) sendError(reqType string, err error) {
	resp := Response{
		Success: false,
		Type:    reqType,
		Error:   err.Error(),
	}

	var perr *parser.ParseError
	if errors.As(err, &perr) {
		resp.Details = &ErrorDetails{
			Kind:   perr.Kind.String(),
			Token:  perr.Token,
			Offset: perr.Offset,
		}
	}
	s.encoder.Encode(resp)
}
