package model

import "testing"

func TestNewAdHocSample(t *testing.T) {
	s := NewAdHocSample("http://example.com/stream.m3u8")

	expected := Sample{
		Name:      "HLS Test",
		URI:       "http://example.com/stream.m3u8",
		ContentID: "",
		Type:      StreamTypeHLS,
	}
	if s != expected {
		t.Errorf("NewAdHocSample() = %+v, expected %+v", s, expected)
	}
}

func TestNewAdHocSample_KeepsRawText(t *testing.T) {
	raw := "  http://example.com/a b.m3u8 "
	s := NewAdHocSample(raw)
	if s.URI != raw {
		t.Errorf("expected URI to be kept verbatim, got %q", s.URI)
	}
}

func TestNewSample_DerivesContentID(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"http://Example.com/Stream.M3U8", "http://example.com/stream.m3u8"},
		{"http://example.com/with space.mp4", "http://example.com/withspace.mp4"},
		{"\thttp://example.com/x\n", "http://example.com/x"},
		{"", ""},
	}

	for _, test := range tests {
		s := NewSample("name", test.uri, StreamTypeOther)
		if s.ContentID != test.expected {
			t.Errorf("NewSample(%q).ContentID = %q, expected %q", test.uri, s.ContentID, test.expected)
		}
		if s.URI != test.uri {
			t.Errorf("NewSample(%q).URI changed to %q", test.uri, s.URI)
		}
	}
}

func TestNewSampleWithContentID(t *testing.T) {
	s := NewSampleWithContentID("Google Glass", "bf5bb2419360daf1", "http://example.com/m.mpd", StreamTypeDASH)
	if s.ContentID != "bf5bb2419360daf1" {
		t.Errorf("expected explicit content ID, got %q", s.ContentID)
	}
	if s.Type != StreamTypeDASH {
		t.Errorf("expected DASH, got %s", s.Type)
	}
}

func TestSample_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"Dizzy", "http://example.com/dizzy.mp4", "Dizzy"},
		{"", "http://example.com/dizzy.mp4", "http://example.com/dizzy.mp4"},
		{"   ", "http://example.com/x", "http://example.com/x"},
	}

	for _, test := range tests {
		s := Sample{Name: test.name, URI: test.uri}
		if got := s.GetDisplayTitle(); got != test.expected {
			t.Errorf("GetDisplayTitle() with name=%q = %q, expected %q", test.name, got, test.expected)
		}
	}
}

func TestSample_IsAdHoc(t *testing.T) {
	tests := []struct {
		name     string
		sample   Sample
		expected bool
	}{
		{"typed url", NewAdHocSample("http://example.com/a.m3u8"), true},
		{"catalog hls", NewSample("Apple 4x3 basic stream", "https://example.com/a.m3u8", StreamTypeHLS), false},
		{"catalog named like ad-hoc", NewSampleWithContentID(AdHocSampleName, "id", "https://example.com/a.m3u8", StreamTypeHLS), false},
	}

	for _, tt := range tests {
		if got := tt.sample.IsAdHoc(); got != tt.expected {
			t.Errorf("%s: IsAdHoc() = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}
