package playback

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/sample-chooser/internal/model"
)

// Request is what the player receives for one launch
type Request struct {
	ID        string
	URI       *url.URL
	ContentID string
	Type      model.StreamType
	Name      string
	AdHoc     bool // typed in by the user rather than picked from the catalog
}

// LocatorError is returned when a sample's URI cannot be turned into a URL
type LocatorError struct {
	URI    string
	Reason string
	Err    error
}

func (e *LocatorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid stream locator %q: %v", e.URI, e.Err)
	}
	return fmt.Sprintf("invalid stream locator %q: %s", e.URI, e.Reason)
}

func (e *LocatorError) Unwrap() error {
	return e.Err
}

// Service implements Launcher on top of an Opener
type Service struct {
	opener   Opener
	logger   zerolog.Logger
	onLaunch func(Request) // optional hook, called after a successful start
}

// NewService creates a new playback service
func NewService(opener Opener, logger zerolog.Logger) *Service {
	return &Service{
		opener: opener,
		logger: logger,
	}
}

// SetLaunchCallback sets a hook invoked after each successful launch
func (s *Service) SetLaunchCallback(callback func(Request)) {
	s.onLaunch = callback
}

// Launch implements Launcher
func (s *Service) Launch(sample model.Sample) error {
	req, err := NewRequest(sample)
	if err != nil {
		s.logger.Warn().Err(err).Str("uri", sample.URI).Msg("rejecting sample")
		return err
	}

	log := s.logger.With().
		Str("request_id", req.ID).
		Str("uri", req.URI.String()).
		Str("content_id", req.ContentID).
		Str("type", req.Type.String()).
		Bool("adaptive", req.Type.IsAdaptive()).
		Logger()

	if err := s.opener.OpenStream(req.URI, req.ContentID, req.Type, req.Name); err != nil {
		log.Error().Err(err).Msg("failed to start player")
		return fmt.Errorf("launch %s: %w", sample.GetDisplayTitle(), err)
	}

	log.Info().Str("name", req.Name).Msg("playback started")
	if s.onLaunch != nil {
		s.onLaunch(req)
	}
	return nil
}

// NewRequest parses the sample's URI. The URI must carry a scheme;
// surrounding whitespace is tolerated.
func NewRequest(sample model.Sample) (Request, error) {
	raw := strings.TrimSpace(sample.URI)
	if raw == "" {
		return Request{}, &LocatorError{URI: sample.URI, Reason: "empty locator"}
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Request{}, &LocatorError{URI: sample.URI, Err: err}
	}
	if u.Scheme == "" {
		return Request{}, &LocatorError{URI: sample.URI, Reason: "missing scheme"}
	}
	if u.Host == "" && u.Opaque == "" && u.Path == "" {
		return Request{}, &LocatorError{URI: sample.URI, Reason: "missing host or path"}
	}

	return Request{
		ID:        uuid.NewString(),
		URI:       u,
		ContentID: sample.ContentID,
		Type:      sample.Type,
		Name:      sample.GetDisplayTitle(),
		AdHoc:     sample.IsAdHoc(),
	}, nil
}
