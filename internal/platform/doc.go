// Package platform contains OS and external tooling glue: the ffmpeg based
// decoder probe, launching streams in an external player or the OS default
// handler, and importing YouTube playlists via ytdlp.
package platform
