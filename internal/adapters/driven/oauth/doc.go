// Package oauth implements driven.ConsentFlow for Google Workspace.
//
// Interactive consent follows the installed-app flow: a loopback callback
// server on 127.0.0.1, PKCE (S256), a random state value and offline access
// so the credential carries a refresh token. The client-secret file is the
// JSON downloaded from the Google Cloud console ("installed" or "web").
package oauth
