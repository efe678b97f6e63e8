// Package types holds the service, tool and result shapes shared by tool
// providers and their callers.
package types
