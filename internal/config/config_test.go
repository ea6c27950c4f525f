package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Password: "secret"},
		JWT:      JWTConfig{Secret: "jwt-secret"},
		Attendance: AttendanceConfig{
			ShiftStart:           "09:00",
			GraceMinutes:         10,
			StandardShiftMinutes: 480,
			Timezone:             "Asia/Kolkata",
			WeekendDays:          []time.Weekday{time.Saturday, time.Sunday},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing db password", func(c *Config) { c.Database.Password = "" }},
		{"missing jwt secret", func(c *Config) { c.JWT.Secret = "" }},
		{"shift start not a clock", func(c *Config) { c.Attendance.ShiftStart = "9am" }},
		{"shift start out of range", func(c *Config) { c.Attendance.ShiftStart = "25:00" }},
		{"negative grace", func(c *Config) { c.Attendance.GraceMinutes = -1 }},
		{"zero standard shift", func(c *Config) { c.Attendance.StandardShiftMinutes = 0 }},
		{"bad timezone", func(c *Config) { c.Attendance.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseWeekdays(t *testing.T) {
	t.Parallel()

	days, err := parseWeekdays("Saturday, sunday")
	assert.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Saturday, time.Sunday}, days)

	_, err = parseWeekdays("Saturday,Funday")
	assert.Error(t, err)
}
