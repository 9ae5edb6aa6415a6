package cli

import (
	"context"
	"errors"
)

type cliKey struct{}

// ErrNoCLI is returned when a command runs without the root's setup
var ErrNoCLI = errors.New("cli context not initialized")

// WithCLI stores the CLI on ctx
func WithCLI(ctx context.Context, c *CLI) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored by the root command
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx == nil {
		return nil, ErrNoCLI
	}
	c, ok := ctx.Value(cliKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
