package ports

import "context"

type ForAsking interface {
	// For asking yes/no questions in a terminal (or always answer no
	// or yes based on other inputs such as dry-run or force flags).
	// Should return false if "no" and true if "yes". ctx should/could
	// hold an slog.Logger set with logger.WithLogger or
	// logger.WithDefaultLogger.
	Ask(ctx context.Context, format string, a ...any) bool
	// Input prompts for a free-form string answer, returning def when
	// the answer is empty or stdin is not a terminal.
	Input(ctx context.Context, message string, def string) string
}
