package database

import (
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Open connects to the configured database. The pool is shared; each request
// checks a connection out for the duration of its queries only.
func Open(conf *viper.Viper) (*sqlx.DB, error) {
	sslMode := "require"
	if conf.GetBool("dbDisableTLS") {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   conf.GetString("dbEngine"),
		User:     url.UserPassword(conf.GetString("dbUser"), conf.GetString("dbPassword")),
		Host:     conf.GetString("dbHost") + ":" + conf.GetString("dbPort"),
		Path:     conf.GetString("dbName"),
		RawQuery: q.Encode(),
	}
	return sqlx.Open(conf.GetString("dbEngine"), u.String())
}

// Ping waits for the database to be ready. Waits 100ms longer between each attempt.
func Ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}
