// Package dirclient wires configuration, transport, and authentication into
// a concrete dirsvc.Client.
//
// The session is authenticated once at construction: the API key from
// dirsvc.Config is paired with the directory API's fixed basic-auth
// placeholder and reused for every request. Endpoint values are normalized
// (trailing slash trimmed, "https://" assumed when no scheme is given)
// before the client is built.
package dirclient
