package usecasecontract

import "time"

// IConfigProvider exposes the configuration values the usecases depend on.
type IConfigProvider interface {
	// GetSendCredentialsEmail reports whether teacher creation emails the
	// generated credentials.
	GetSendCredentialsEmail() bool
	// GetTeacherPasswordLength is the length of generated teacher passwords.
	GetTeacherPasswordLength() int
	// GetRoleCacheTTL is how long cached role lookups stay valid.
	GetRoleCacheTTL() time.Duration
}
