// Package web serves the browser UI and its JSON API.
//
// Each browser gets a session id in the onboard_session cookie. The session
// holds the trace log and chat transcript; the API key entered on the page is
// kept per session in server memory and never written to disk.
package web
