package extsvcmock

import "context"

// ClientDirectory is a function-backed mock for the client existence check.
type ClientDirectory struct {
	ExistsFn func(ctx context.Context, clientID string) (bool, error)
}

func (m *ClientDirectory) Exists(ctx context.Context, clientID string) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, clientID)
	}
	return true, nil
}

// DocumentResolver is a function-backed mock for the signed-document check.
type DocumentResolver struct {
	ResolveFn func(ctx context.Context, documentID string) (bool, error)
}

func (m *DocumentResolver) Resolve(ctx context.Context, documentID string) (bool, error) {
	if m.ResolveFn != nil {
		return m.ResolveFn(ctx, documentID)
	}
	return true, nil
}
