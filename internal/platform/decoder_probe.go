package platform

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FFmpeg constants
const (
	FFmpegCommand     = "ffmpeg"
	FFmpegHideBanner  = "-hide_banner"
	FFmpegDecodersArg = "-decoders"
	DecoderTableStart = "------"
)

// DefaultProbeTimeout bounds a single ffmpeg invocation
const DefaultProbeTimeout = 5 * time.Second

// Codec MIME types understood by the probe
const (
	MimeVideoVP9  = "video/x-vnd.on2.vp9"
	MimeVideoVP8  = "video/x-vnd.on2.vp8"
	MimeVideoH264 = "video/avc"
	MimeVideoH265 = "video/hevc"
	MimeVideoAV1  = "video/av01"
	MimeAudioAAC  = "audio/mp4a-latm"
	MimeAudioOpus = "audio/opus"
)

// decoderNames lists ffmpeg decoders per MIME type, preferred first
var decoderNames = map[string][]string{
	MimeVideoVP9:  {"vp9", "libvpx-vp9"},
	MimeVideoVP8:  {"vp8", "libvpx"},
	MimeVideoH264: {"h264"},
	MimeVideoH265: {"hevc"},
	MimeVideoAV1:  {"libdav1d", "av1", "libaom-av1"},
	MimeAudioAAC:  {"aac", "aac_fixed"},
	MimeAudioOpus: {"opus", "libopus"},
}

// DecoderInfo describes one decoder reported by the host
type DecoderInfo struct {
	Name        string
	Description string
	Flags       string
}

// DecoderProber queries the host for decoders. A nil info with a nil error
// means no suitable decoder exists.
type DecoderProber interface {
	QueryDecoder(ctx context.Context, mimeType string, secure bool) (*DecoderInfo, error)
}

// DecoderQueryError is returned when the host could not be asked
type DecoderQueryError struct {
	MimeType string
	Err      error
}

func (e *DecoderQueryError) Error() string {
	return fmt.Sprintf("decoder query for %s failed: %v", e.MimeType, e.Err)
}

func (e *DecoderQueryError) Unwrap() error {
	return e.Err
}

// commandOutput runs a command and returns its stdout
type commandOutput func(ctx context.Context, name string, args ...string) ([]byte, error)

func execOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// FFmpegDecoderProbe answers decoder queries from `ffmpeg -decoders`.
// The decoder table is read once and reused.
type FFmpegDecoderProbe struct {
	command string
	timeout time.Duration
	run     commandOutput

	once     sync.Once
	decoders map[string]DecoderInfo
	err      error
}

// NewFFmpegDecoderProbe creates a probe using the given ffmpeg binary
func NewFFmpegDecoderProbe(command string) *FFmpegDecoderProbe {
	if command == "" {
		command = FFmpegCommand
	}
	return &FFmpegDecoderProbe{
		command: command,
		timeout: DefaultProbeTimeout,
		run:     execOutput,
	}
}

// SetTimeout sets the timeout for the ffmpeg invocation
func (p *FFmpegDecoderProbe) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// QueryDecoder implements DecoderProber. This host has no secure decoder
// path, so secure queries always report none.
func (p *FFmpegDecoderProbe) QueryDecoder(ctx context.Context, mimeType string, secure bool) (*DecoderInfo, error) {
	if secure {
		return nil, nil
	}

	names, ok := decoderNames[strings.ToLower(mimeType)]
	if !ok {
		return nil, nil
	}

	p.once.Do(func() {
		p.decoders, p.err = p.load(ctx)
	})
	if p.err != nil {
		return nil, &DecoderQueryError{MimeType: mimeType, Err: p.err}
	}

	for _, name := range names {
		if info, found := p.decoders[name]; found {
			return &info, nil
		}
	}
	return nil, nil
}

func (p *FFmpegDecoderProbe) load(ctx context.Context) (map[string]DecoderInfo, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	out, err := p.run(ctx, p.command, FFmpegHideBanner, FFmpegDecodersArg)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", p.command, err)
	}

	decoders := parseDecoderTable(string(out))
	if len(decoders) == 0 {
		return nil, errors.New("no decoders in ffmpeg output")
	}
	return decoders, nil
}

// parseDecoderTable reads the rows printed after the "------" separator.
// Each row is "<flags> <name> <description...>".
func parseDecoderTable(output string) map[string]DecoderInfo {
	decoders := make(map[string]DecoderInfo)
	inTable := false

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !inTable {
			if strings.HasPrefix(line, DecoderTableStart) {
				inTable = true
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		info := DecoderInfo{
			Flags: fields[0],
			Name:  fields[1],
		}
		if len(fields) > 2 {
			info.Description = strings.Join(fields[2:], " ")
		}
		decoders[info.Name] = info
	}
	return decoders
}

// DecoderCapability turns a DecoderProber into a yes/no answer. Query
// failures are logged and reported as unavailable.
type DecoderCapability struct {
	prober DecoderProber
	logger zerolog.Logger
}

// NewDecoderCapability wraps prober
func NewDecoderCapability(prober DecoderProber, logger zerolog.Logger) *DecoderCapability {
	return &DecoderCapability{prober: prober, logger: logger}
}

// Supports reports whether a non-secure decoder for mimeType is available
func (d *DecoderCapability) Supports(ctx context.Context, mimeType string) bool {
	info, err := d.prober.QueryDecoder(ctx, mimeType, false)
	if err != nil {
		d.logger.Error().Err(err).Str("mime", mimeType).Msg("Failed to query decoder")
		return false
	}
	if info == nil {
		d.logger.Debug().Str("mime", mimeType).Msg("decoder not available")
		return false
	}
	d.logger.Debug().Str("mime", mimeType).Str("decoder", info.Name).Msg("decoder available")
	return true
}
