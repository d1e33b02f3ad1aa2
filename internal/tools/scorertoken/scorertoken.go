package scorertoken

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/DhavalSuthar-24/crickscore/pkg/token"
)

// Config holds the claims and signing settings for a scorer token.
type Config struct {
	UserID        uint
	Role          string
	Secret        string
	ExpiryMinutes int
}

// ParseConfig parses flags into a Config. Secret and expiry default to the service config.
func ParseConfig(fs *flag.FlagSet, args []string, defaultSecret string, defaultExpiry int) (Config, error) {
	cfg := Config{Role: token.RoleScorer, Secret: defaultSecret, ExpiryMinutes: defaultExpiry}
	var userID uint64
	fs.Uint64Var(&userID, "user", 0, "user id to put in the token (required)")
	fs.StringVar(&cfg.Role, "role", cfg.Role, "scorer or admin")
	fs.StringVar(&cfg.Secret, "secret", cfg.Secret, "HMAC secret (default: JWT_ACCESS_TOKEN_SECRET)")
	fs.IntVar(&cfg.ExpiryMinutes, "expiry", cfg.ExpiryMinutes, "token lifetime in minutes")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.UserID = uint(userID)
	return cfg, nil
}

// Run mints the token and writes it to out.
func Run(cfg Config, out io.Writer) error {
	if cfg.UserID == 0 {
		return errors.New("user id is required")
	}
	if cfg.Role != token.RoleScorer && cfg.Role != token.RoleAdmin {
		return fmt.Errorf("unknown role %q", cfg.Role)
	}
	if cfg.ExpiryMinutes <= 0 {
		return errors.New("expiry must be greater than zero")
	}
	if out == nil {
		return errors.New("output is required")
	}

	tok, err := token.GenerateJWT(cfg.UserID, cfg.Role, cfg.Secret, cfg.ExpiryMinutes)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	_, err = fmt.Fprintln(out, tok)
	return err
}
