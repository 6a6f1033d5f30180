package database

import (
	"fmt"
	"net/url"
)

type PostgresSettings struct {
	User       string `envconfig:"DB_USER" default:"admin"`
	Password   string `envconfig:"DB_PASSWORD" default:"password"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	DBName     string `envconfig:"DB_NAME" default:"room_shop_db"`
	SSlEnabled bool   `envconfig:"DB_SSL" default:"false"`
}

func (s PostgresSettings) GetURL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   fmt.Sprintf("%s:%s", s.Host, s.Port),
		Path:   s.DBName,
	}

	if !s.SSlEnabled {
		u.RawQuery = "sslmode=disable"
	}

	return u.String()
}
