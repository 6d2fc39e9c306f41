package auth

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/edurecords/portal/core"
)

// Roles
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

var ErrBadCredentials = errors.New("invalid username or password")

type (
	// Identity is the result of a successful authentication.
	// Roll is only set for students; it doubles as their login username.
	Identity struct {
		Role string
		Roll string
	}

	// Authenticator checks a credential pair against a backing store.
	// Implementations must be side-effect free: no lockout, no attempt tracking.
	Authenticator interface {
		Authenticate(username, password string) (Identity, error)
	}
)

// configAuthenticator authenticates against credentials held in config:
// a single admin pair and a student roll -> password map.
// Comparison is exact string equality on the stored values.
type configAuthenticator struct {
	adminUsername string
	adminPassword string
	students      map[string]string
}

var _ Authenticator = (*configAuthenticator)(nil)

func NewConfigAuthenticator(conf *viper.Viper) *configAuthenticator {
	return &configAuthenticator{
		adminUsername: conf.GetString("adminUsername"),
		adminPassword: conf.GetString("adminPassword"),
		students:      conf.GetStringMapString("studentCredentials"),
	}
}

func (a configAuthenticator) Authenticate(username, password string) (Identity, error) {
	username = core.CleanString(username)

	if username == a.adminUsername && password == a.adminPassword {
		return Identity{Role: RoleAdmin}, nil
	}
	if pwd, ok := a.students[username]; ok && pwd == password {
		return Identity{Role: RoleStudent, Roll: username}, nil
	}
	return Identity{}, ErrBadCredentials
}

func (id Identity) IsAdmin() bool   { return id.Role == RoleAdmin }
func (id Identity) IsStudent() bool { return id.Role == RoleStudent }
