package catalog

import (
	"fmt"

	"github.com/ytget/sample-chooser/internal/model"
)

// YouTube DASH manifest URL parts
const (
	youtubeManifestTemplate = "http://www.youtube.com/api/manifest/dash/id/%s/source/youtube?" +
		"as=%s&sparams=ip,ipbits,expire,source,id,as&ip=0.0.0.0&ipbits=0&expire=19000000000&signature=%s&key=ik0"
	youtubeFormatsMP4  = "fmp4_audio_clear,fmp4_sd_hd_clear"
	youtubeFormatsWebM = "fmp4_audio_clear,webm2_sd_hd_clear"
	widevineFormats    = "fmp4_audio_cenc,fmp4_sd_hd_cenc"
)

// Apple sample streams
const (
	appleBipbop4x3  = "https://devimages.apple.com.edgekey.net/streaming/examples/bipbop_4x3/"
	appleBipbop16x9 = "https://devimages.apple.com.edgekey.net/streaming/examples/bipbop_16x9/"
)

func youtubeManifest(id, formats, signature string) string {
	return fmt.Sprintf(youtubeManifestTemplate, id, formats, signature)
}

func youtubeDashMP4() []model.Sample {
	return []model.Sample{
		model.NewSampleWithContentID("Google Glass", "bf5bb2419360daf1",
			youtubeManifest("bf5bb2419360daf1", youtubeFormatsMP4,
				"51AF5F39AB0CEC3E5497CD9C900EBFEAECCCB5C7.8506521BFC350652163895D4C26DEE124209AA9E"),
			model.StreamTypeDASH),
		model.NewSampleWithContentID("Google Play", "3aa39fa2cc27967f",
			youtubeManifest("3aa39fa2cc27967f", youtubeFormatsMP4,
				"A2716F75795F5D2AF0E88962FFCD10DB79384F29.84308FF04844498CE6FBCE4731507882B8307798"),
			model.StreamTypeDASH),
	}
}

func youtubeDashWebM() []model.Sample {
	return []model.Sample{
		model.NewSampleWithContentID("Google Glass", "bf5bb2419360daf1",
			youtubeManifest("bf5bb2419360daf1", youtubeFormatsWebM,
				"249B04F79E984D7F86B4D8DB48AE6FAF41C17AB3.7B9F0EC0505E1566E59B8E488E9419F253DDF413"),
			model.StreamTypeDASH),
		model.NewSampleWithContentID("Google Play", "3aa39fa2cc27967f",
			youtubeManifest("3aa39fa2cc27967f", youtubeFormatsWebM,
				"B1C2A74783AC1CC4865EB312D7DD2D48230CC9FD.BD153B9882175F1F94BFE5141A5482313EA38E8D"),
			model.StreamTypeDASH),
	}
}

func widevineGTS() []model.Sample {
	ids := []struct {
		name, id, signature string
	}{
		{"WV: HDCP not specified", "d286538032258a1c",
			"41EA40A027A125A16292E0A5E3277A3B5FA9B938.0BB075C396FFDDC97E526E8F77DC26FF9667D0D6"},
		{"WV: HDCP not required", "48fcc369939ac96c",
			"315911BDCEED0FB0C763455BDCC97449DAAFA9E8.5D41417EC9B7F2D8ABA4D9B1E38E7AE5EE0186AC"},
		{"WV: HDCP required", "e06c39f1151da3df",
			"A47A1E13E7243BD567601A75F79B34644D0DC592.B09589A34FA23527EFC1552907754BB8033870BD"},
		{"WV: Secure video path required", "0894c7c8719b28a0",
			"2847EE498970F6B45176766CD2802FEB4D4CB7B2.A1CA51EC40A1C1039BA800C41500DD448C03EEDA"},
		{"WV: HDCP + secure video path required", "efd045b1eb61888a",
			"61611F115EEEC7BADE5536827343FFFE2D83D14F.2FDF4BFA502FB5865C5C86401314BDDEA4799BD0"},
		{"WV: 30s license duration", "f9a34cab7b05881a",
			"88DC53943385CED8CF9F37ADD9E9843E3BF621E6.22727BB612D24AA4FACE4EF62726F9461A9BF57A"},
	}

	samples := make([]model.Sample, 0, len(ids))
	for _, s := range ids {
		samples = append(samples, model.NewSampleWithContentID(s.name, s.id,
			youtubeManifest(s.id, widevineFormats, s.signature), model.StreamTypeDASH))
	}
	return samples
}

func smoothStreaming() []model.Sample {
	return []model.Sample{
		model.NewSample("Super speed",
			"http://playready.directtaps.net/smoothstreaming/SSWSS720H264/SuperSpeedway_720.ism",
			model.StreamTypeSmoothStreaming),
		model.NewSample("Super speed (PlayReady)",
			"http://playready.directtaps.net/smoothstreaming/SSWSS720H264PR/SuperSpeedway_720.ism",
			model.StreamTypeSmoothStreaming),
	}
}

func hls() []model.Sample {
	return []model.Sample{
		model.NewSample("Apple master playlist",
			appleBipbop4x3+"bipbop_4x3_variant.m3u8", model.StreamTypeHLS),
		model.NewSample("Apple master playlist advanced",
			appleBipbop16x9+"bipbop_16x9_variant.m3u8", model.StreamTypeHLS),
		model.NewSample("Apple TS media playlist",
			appleBipbop4x3+"gear1/prog_index.m3u8", model.StreamTypeHLS),
		model.NewSample("Apple AAC media playlist",
			appleBipbop4x3+"gear0/prog_index.m3u8", model.StreamTypeHLS),
	}
}

func misc() []model.Sample {
	return []model.Sample{
		model.NewSample("Dizzy", "http://html5demos.com/assets/dizzy.mp4", model.StreamTypeOther),
		model.NewSample("Apple AAC 10s", appleBipbop4x3+"gear0/fileSequence0.aac", model.StreamTypeOther),
		model.NewSample("Apple TS 10s", appleBipbop4x3+"gear1/fileSequence0.ts", model.StreamTypeOther),
		model.NewSample("Big Buck Bunny (MP4 Video)",
			"http://redirector.c.youtube.com/videoplayback?id=604ed5ce52eda7ee&itag=22&source=youtube"+
				"&sparams=ip,ipbits,expire,source,id&ip=0.0.0.0&ipbits=0&expire=19000000000"+
				"&signature=513F28C7FDCBEC60A66C86C9A393556C99DC47FB.04C88036EEE12565A1ED864A875A58F15D8B5300&key=ik0",
			model.StreamTypeOther),
	}
}
