// Package dirsvc provides types, interfaces, and helpers for working with a
// credential-authenticated directory-service API.
//
// # Overview
//
// The dirsvc package defines the document model (Document, Record), the
// typed directory objects (User, Role, Group, Event), the error taxonomy,
// and the interfaces for resource-oriented clients (UsersClient,
// RolesClient, ...). A concrete implementation of these clients is provided
// by the dirclient package, which wires configuration, transport, and
// authentication. Most consumers should import dirclient to construct a
// client and then interact with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/identkit-io/dirsvc/pkg/dirclient"
//	  "github.com/identkit-io/dirsvc/pkg/dirsvc"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := dirclient.New(&dirsvc.Config{
//	    APIEndpoint: "https://api.example.com",
//	    APIKey:      "my-api-key",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  users, err := cli.Users().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = users
//	}
//
// # Lookup protocol
//
// List, Filter, and Find read from a cached listing document rather than
// refetching it on every call. List honors an explicit Refresh option;
// Filter and Find only fetch when nothing has been loaded yet. By default
// every matched record triggers a second, per-id detail fetch because the
// bulk listing may carry only partial fields per record; SkipDetail opts out
// of that second phase explicitly.
//
// # Errors
//
// Failures surface as distinct, inspectable conditions: NetworkError (could
// not reach the server, or a non-success status), ParseError (server
// reachable but payload nonsensical), and MissingIdentityError (record
// lacks a usable id). Helpers IsNetworkError, IsParseError, and
// IsMissingIdentity make it easy to branch on them. A Find miss is not an
// error; it is reported as an explicit absent result.
//
// # Response caching
//
// CacheConfig selects an optional backend (memory, NATS KV, or none) for
// per-id detail responses. It is disabled by default so the lookup cost
// model stays untouched unless explicitly enabled.
package dirsvc
