package auth

import (
	"testing"

	"github.com/spf13/viper"
)

func newTestConf() *viper.Viper {
	conf := viper.New()
	conf.Set("adminUsername", "admin")
	conf.Set("adminPassword", "sekret")
	conf.Set("studentCredentials", map[string]string{
		"2511039": "18122002",
		"2510361": "27102003",
	})
	return conf
}

func Test_configAuthenticator_Authenticate(t *testing.T) {
	authn := NewConfigAuthenticator(newTestConf())

	tests := []struct {
		name     string
		username string
		password string
		want     Identity
		wantErr  error
	}{
		{name: "admin ok", username: "admin", password: "sekret", want: Identity{Role: RoleAdmin}},
		{name: "admin ok with padding", username: "  admin  ", password: "sekret", want: Identity{Role: RoleAdmin}},
		{name: "admin wrong password", username: "admin", password: "admin", wantErr: ErrBadCredentials},
		{name: "student ok", username: "2511039", password: "18122002", want: Identity{Role: RoleStudent, Roll: "2511039"}},
		{name: "student wrong password", username: "2511039", password: "27102003", wantErr: ErrBadCredentials},
		{name: "password not trimmed", username: "2511039", password: " 18122002", wantErr: ErrBadCredentials},
		{name: "unknown username", username: "lol", password: "lol", wantErr: ErrBadCredentials},
		{name: "empty", wantErr: ErrBadCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := authn.Authenticate(tt.username, tt.password)
			if err != tt.wantErr {
				t.Fatalf("Authenticate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if id != tt.want {
				t.Errorf("Authenticate() = %+v, want %+v", id, tt.want)
			}
		})
	}
}

func TestIdentity_roles(t *testing.T) {
	admin := Identity{Role: RoleAdmin}
	if !admin.IsAdmin() || admin.IsStudent() {
		t.Error("admin identity misclassified")
	}
	std := Identity{Role: RoleStudent, Roll: "2511039"}
	if !std.IsStudent() || std.IsAdmin() {
		t.Error("student identity misclassified")
	}
}
