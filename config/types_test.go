package config

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
	}{
		{
			name: "valid minimal config",
			cfg: Config{
				Mongo: MongoConfig{URI: "mongodb://localhost:27017"},
				Auth:  AuthConfig{JWTSecret: "s"},
			},
		},
		{
			name:      "missing mongo uri",
			cfg:       Config{Auth: AuthConfig{JWTSecret: "s"}},
			wantField: "mongo.uri",
		},
		{
			name:      "missing jwt secret",
			cfg:       Config{Mongo: MongoConfig{URI: "mongodb://localhost:27017"}},
			wantField: "auth.jwt_secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}

			var missing ErrMissing
			if !errors.As(err, &missing) {
				t.Fatalf("Validate() error = %v, want ErrMissing", err)
			}
			if missing.Field != tt.wantField {
				t.Errorf("missing field = %q, want %q", missing.Field, tt.wantField)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Mongo: MongoConfig{URI: "mongodb://localhost:27017"},
		Auth:  AuthConfig{JWTSecret: "s"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Mongo.Database != "doctorsHouse" {
		t.Errorf("database = %q, want %q", cfg.Mongo.Database, "doctorsHouse")
	}
	if cfg.Auth.TokenTTLHours != 5 {
		t.Errorf("token TTL hours = %d, want 5", cfg.Auth.TokenTTLHours)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("port = %d, want 5000", cfg.Server.Port)
	}
}
