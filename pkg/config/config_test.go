package config

import (
	"net/url"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postgresConfig(user, pass string) *Config {
	c := &Config{}
	c.Postgres.Host = "db.internal"
	c.Postgres.Port = 5433
	c.Postgres.User = user
	c.Postgres.Pass = pass
	c.Postgres.Name = "tweets"
	c.Postgres.SslMode = "disable"
	return c
}

func TestGetPoolURLEscapesCredentials(t *testing.T) {
	c := postgresConfig("bot@team", "p@ss/w:rd#1?")

	u, err := url.Parse(c.GetPoolURL())
	require.NoError(t, err)
	assert.Equal(t, "bot@team", u.User.Username())
	pass, _ := u.User.Password()
	assert.Equal(t, "p@ss/w:rd#1?", pass)
	assert.Equal(t, "db.internal:5433", u.Host)
	assert.Equal(t, "/tweets", u.Path)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))

	pc, err := pgxpool.ParseConfig(c.GetPoolURL())
	require.NoError(t, err)
	assert.Equal(t, "bot@team", pc.ConnConfig.User)
	assert.Equal(t, "p@ss/w:rd#1?", pc.ConnConfig.Password)
	assert.Equal(t, "db.internal", pc.ConnConfig.Host)
	assert.Equal(t, uint16(5433), pc.ConnConfig.Port)
	assert.Equal(t, "tweets", pc.ConnConfig.Database)
}

func TestGetDSNQuotesValues(t *testing.T) {
	c := postgresConfig("bot", `it's a \secret`)

	assert.Equal(t,
		`dbname='tweets' user='bot' password='it\'s a \\secret' host='db.internal' port=5433 sslmode='disable'`,
		c.GetDSN(),
	)

	pc, err := pgxpool.ParseConfig(c.GetDSN())
	require.NoError(t, err)
	assert.Equal(t, `it's a \secret`, pc.ConnConfig.Password)
	assert.Equal(t, "tweets", pc.ConnConfig.Database)
}
