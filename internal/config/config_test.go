package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOT_TOKEN", "OPENAI_API_KEY", "ADMIN_IDS",
		"QUESTIONS_PER_PAGE", "BROADCAST_DELAY_MS", "MAX_VOICE_DURATION_SECONDS",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "test-token", cfg.BotToken)
	assert.Empty(t, cfg.OpenAIKey)
	assert.Empty(t, cfg.AdminIDs)
	assert.Equal(t, 5, cfg.QuestionsPerPage)
	assert.Equal(t, 100*time.Millisecond, cfg.BroadcastDelay)
	assert.Equal(t, 180, cfg.MaxVoiceDuration)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "speakify", cfg.Database.Name)
	assert.Equal(t, "speakify", cfg.Database.User)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		dbPass  string
		wantErr string
	}{
		{name: "missing bot token", token: "", dbPass: "secret", wantErr: "BOT_TOKEN"},
		{name: "missing db password", token: "test-token", dbPass: "", wantErr: "DB_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("BOT_TOKEN", tt.token)
			t.Setenv("DB_PASSWORD", tt.dbPass)

			cfg, err := Load()

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("QUESTIONS_PER_PAGE", "10")
	t.Setenv("BROADCAST_DELAY_MS", "250")
	t.Setenv("MAX_VOICE_DURATION_SECONDS", "120")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.OpenAIKey)
	assert.Equal(t, 10, cfg.QuestionsPerPage)
	assert.Equal(t, 250*time.Millisecond, cfg.BroadcastDelay)
	assert.Equal(t, 120, cfg.MaxVoiceDuration)
}

func TestLoad_InvalidInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test-token")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("QUESTIONS_PER_PAGE", "lots")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "QUESTIONS_PER_PAGE")
	assert.Nil(t, cfg)
}

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []int64
		wantErr  bool
	}{
		{name: "empty", raw: "", expected: nil},
		{name: "single id", raw: "12345", expected: []int64{12345}},
		{name: "multiple ids", raw: "1,2,3", expected: []int64{1, 2, 3}},
		{name: "spaces tolerated", raw: " 1 , 2 ", expected: []int64{1, 2}},
		{name: "trailing comma tolerated", raw: "1,2,", expected: []int64{1, 2}},
		{name: "malformed id", raw: "1,abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := parseAdminIDs(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ids)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.example.com",
			Port:     "5433",
			Name:     "speakify",
			User:     "bot",
			Password: "secret",
		},
	}

	expected := "host=db.example.com port=5433 user=bot password=secret dbname=speakify sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
}

func TestConfig_IsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{100, 200}}

	assert.True(t, cfg.IsAdmin(100))
	assert.True(t, cfg.IsAdmin(200))
	assert.False(t, cfg.IsAdmin(300))

	empty := &Config{}
	assert.False(t, empty.IsAdmin(100))
}
