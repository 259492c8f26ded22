// Package playback hands a selected sample to the external player. It turns
// the sample's locator into a URL, tags the hand-off with a request ID for
// log correlation, and returns as soon as the player has been started.
package playback
