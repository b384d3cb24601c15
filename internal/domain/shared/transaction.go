package shared

import "context"

// TransactionManager runs a unit of work atomically. Repositories called with
// the context passed to fn take part in the same transaction.
type TransactionManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
